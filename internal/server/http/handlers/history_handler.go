package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yappari/coffeebar-admin/internal/server/http/dto"
)

// HistoryHandler serves the read-only order history view.
type HistoryHandler struct {
	facade HistoryFacade
}

// NewHistoryHandler constructs HistoryHandler.
func NewHistoryHandler(facade HistoryFacade) *HistoryHandler {
	return &HistoryHandler{facade: facade}
}

// List handles GET /api/admin/history.
func (h *HistoryHandler) List(c *gin.Context) {
	orders, err := h.facade.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}
