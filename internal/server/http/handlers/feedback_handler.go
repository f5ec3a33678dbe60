package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yappari/coffeebar-admin/internal/server/http/dto"
)

// FeedbackHandler serves the customer feedback view.
type FeedbackHandler struct {
	facade FeedbackFacade
}

// NewFeedbackHandler constructs FeedbackHandler.
func NewFeedbackHandler(facade FeedbackFacade) *FeedbackHandler {
	return &FeedbackHandler{facade: facade}
}

// List handles GET /api/admin/feedback.
func (h *FeedbackHandler) List(c *gin.Context) {
	entries, err := h.facade.Feedback(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}

	response := make([]dto.FeedbackResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, dto.FeedbackResponse{
			FirstName: entry.FirstName,
			LastName:  entry.LastName,
			Email:     entry.Email,
			Message:   entry.Message,
			Score:     entry.Score,
		})
	}
	c.JSON(http.StatusOK, response)
}
