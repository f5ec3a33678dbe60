package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yappari/coffeebar-admin/internal/server/http/dto"
)

// AnalyticsHandler serves aggregated sales figures.
type AnalyticsHandler struct {
	facade AnalyticsFacade
}

// NewAnalyticsHandler constructs AnalyticsHandler.
func NewAnalyticsHandler(facade AnalyticsFacade) *AnalyticsHandler {
	return &AnalyticsHandler{facade: facade}
}

// Sales handles GET /api/admin/analytics/sales.
func (h *AnalyticsHandler) Sales(c *gin.Context) {
	summary, err := h.facade.SalesSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}

	response := dto.SalesSummaryResponse{
		TotalSales:  summary.TotalSales,
		TotalOrders: summary.TotalOrders,
		Days:        make([]dto.DailySalesResponse, 0, len(summary.Days)),
		TopProducts: make([]dto.ProductSalesResponse, 0, len(summary.TopProducts)),
	}
	for _, day := range summary.Days {
		response.Days = append(response.Days, dto.DailySalesResponse{
			Date:   day.Day.String(),
			Amount: day.Amount,
			Orders: day.Orders,
		})
	}
	for _, product := range summary.TopProducts {
		response.TopProducts = append(response.TopProducts, dto.ProductSalesResponse{
			FoodName: product.FoodName,
			Quantity: product.Quantity,
			Revenue:  product.Revenue,
		})
	}
	c.JSON(http.StatusOK, response)
}
