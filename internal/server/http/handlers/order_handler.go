package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/yappari/coffeebar-admin/internal/domain/errors"
	"github.com/yappari/coffeebar-admin/internal/domain/model"
	"github.com/yappari/coffeebar-admin/internal/server/http/dto"
)

// OrderHandler manages the order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/admin/orders. An optional date query narrows
// the working set to one calendar date.
func (h *OrderHandler) List(c *gin.Context) {
	var day *model.Day
	if raw := c.Query("date"); raw != "" {
		parsed, err := model.ParseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "date must be YYYY-MM-DD"})
			return
		}
		day = &parsed
	}

	orders, _, err := h.facade.ActiveOrders(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}

	response := dto.ListOrdersResponse{
		Orders:   make([]dto.OrderResponse, 0, len(orders)),
		Filtered: day != nil,
	}
	for _, order := range orders {
		response.Orders = append(response.Orders, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

// Status handles GET /api/admin/orders/:id/status.
func (h *OrderHandler) Status(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	status, err := h.facade.OrderStatus(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.OrderStatusResponse{OrderID: orderID, OrderStatus: string(status)})
}

// UpdateStatus handles POST /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}

	result, err := h.facade.SetStatus(c.Request.Context(), orderID, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUnknownStatus):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		case errors.Is(err, domainErrors.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.UpdateStatusResponse{
		OrderID:          orderID,
		Status:           string(result.Status),
		Migrated:         result.Migrated,
		AlreadyCompleted: result.AlreadyCompleted,
		Warning:          result.Warning,
	})
}

// Select handles POST /api/admin/orders/:id/select.
func (h *OrderHandler) Select(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.facade.Select(orderID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		case errors.Is(err, domainErrors.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, dto.SelectionResponse{OrderIDs: h.facade.Selection()})
}

// Deselect handles DELETE /api/admin/orders/:id/select.
func (h *OrderHandler) Deselect(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	h.facade.Deselect(orderID)
	c.JSON(http.StatusOK, dto.SelectionResponse{OrderIDs: h.facade.Selection()})
}

// SelectAll handles POST /api/admin/orders/selection/all.
func (h *OrderHandler) SelectAll(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SelectionResponse{OrderIDs: h.facade.SelectAll()})
}

// ClearSelection handles DELETE /api/admin/orders/selection.
func (h *OrderHandler) ClearSelection(c *gin.Context) {
	h.facade.ClearSelection()
	c.JSON(http.StatusOK, dto.SelectionResponse{OrderIDs: []int64{}})
}

// Selection handles GET /api/admin/orders/selection.
func (h *OrderHandler) Selection(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SelectionResponse{OrderIDs: h.facade.Selection()})
}

// BatchComplete handles POST /api/admin/orders/complete.
func (h *OrderHandler) BatchComplete(c *gin.Context) {
	var req dto.BatchCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}

	report, err := h.facade.BatchComplete(c.Request.Context(), req.Confirmed)
	if err != nil {
		var alreadyCompleted domainErrors.AlreadyCompletedError
		switch {
		case errors.Is(err, domainErrors.ErrEmptySelection):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.As(err, &alreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error(), "order_ids": alreadyCompleted.OrderIDs})
		case errors.Is(err, domainErrors.ErrNotConfirmed):
			c.JSON(http.StatusOK, dto.BatchCompleteResponse{Aborted: true})
		case errors.Is(err, domainErrors.ErrBatchFailed):
			response := toBatchResponse(report)
			response.Message = err.Error()
			c.JSON(http.StatusBadGateway, response)
		default:
			// The batch itself ran; the authoritative re-fetch failed.
			// Succeeded work is still reported.
			if report != nil {
				response := toBatchResponse(report)
				response.Message = err.Error()
				c.JSON(http.StatusBadGateway, response)
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toBatchResponse(report))
}

func orderIDParam(c *gin.Context) (int64, bool) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "order id must be numeric"})
		return 0, false
	}
	return orderID, true
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.LineItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.LineItemResponse{
			FoodName:  item.FoodName,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return dto.OrderResponse{
		OrderID:        order.ID,
		CreatedAt:      order.CreatedAt,
		CustomerName:   order.Customer.Name,
		Address:        order.Customer.Address,
		PhoneNumber:    order.Customer.Phone,
		ShippingMethod: order.ShippingMethod,
		PaymentMethod:  order.PaymentMethod,
		TotalAmount:    order.TotalAmount,
		Status:         string(order.Status),
		Items:          items,
	}
}

func toBatchResponse(report *model.BatchReport) dto.BatchCompleteResponse {
	response := dto.BatchCompleteResponse{
		Successful: len(report.Succeeded),
		Failed:     len(report.Failed),
		Succeeded:  report.Succeeded,
	}
	for _, failure := range report.Failed {
		response.Failures = append(response.Failures, dto.BatchFailureResponse{
			OrderID: failure.OrderID,
			Reason:  failure.Reason,
		})
	}
	return response
}
