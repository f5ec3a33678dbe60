package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse mirrors one order for the admin console.
type OrderResponse struct {
	OrderID        int64              `json:"order_id"`
	CreatedAt      time.Time          `json:"created_at"`
	CustomerName   string             `json:"customer_name"`
	Address        string             `json:"address"`
	PhoneNumber    string             `json:"phone_number"`
	ShippingMethod string             `json:"shipping_method"`
	PaymentMethod  string             `json:"payment_method"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	Status         string             `json:"status"`
	Items          []LineItemResponse `json:"items"`
}

// LineItemResponse is one position of an order.
type LineItemResponse struct {
	FoodName  string          `json:"food_name"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// ListOrdersResponse wraps the working set view.
type ListOrdersResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Filtered bool            `json:"filtered"`
}

// OrderStatusResponse reports one order's authoritative status.
type OrderStatusResponse struct {
	OrderID     int64  `json:"order_id"`
	OrderStatus string `json:"order_status"`
}

// UpdateStatusRequest asks for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatusResponse reports the transition outcome. Warning is set
// when the status update succeeded but the history migration did not;
// AlreadyCompleted when the order had already been migrated before.
type UpdateStatusResponse struct {
	OrderID          int64  `json:"order_id"`
	Status           string `json:"status"`
	Migrated         bool   `json:"migrated"`
	AlreadyCompleted bool   `json:"already_completed,omitempty"`
	Warning          string `json:"warning,omitempty"`
}

// SelectionResponse lists the selected order ids.
type SelectionResponse struct {
	OrderIDs []int64 `json:"order_ids"`
}

// BatchCompleteRequest triggers batch completion of the selection.
// Confirmed false aborts with no side effects.
type BatchCompleteRequest struct {
	Confirmed bool `json:"confirmed"`
}

// BatchFailureResponse names one failed order and the store's reason.
type BatchFailureResponse struct {
	OrderID int64  `json:"order_id"`
	Reason  string `json:"reason"`
}

// BatchCompleteResponse aggregates a batch outcome. Message is set on
// batch-level failures so the per-id report is never lost behind a
// bare error string.
type BatchCompleteResponse struct {
	Successful int                    `json:"successful"`
	Failed     int                    `json:"failed"`
	Succeeded  []int64                `json:"succeeded_ids,omitempty"`
	Failures   []BatchFailureResponse `json:"failures,omitempty"`
	Aborted    bool                   `json:"aborted,omitempty"`
	Message    string                 `json:"message,omitempty"`
}
