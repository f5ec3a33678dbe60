package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the delivery lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusOutForDelivery OrderStatus = "Out For Delivery"
	OrderStatusReadyToPickup  OrderStatus = "Ready to Pickup"
	OrderStatusCompleted      OrderStatus = "Completed"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// Statuses lists the allowed status vocabulary in lifecycle order.
var Statuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusOutForDelivery,
	OrderStatusReadyToPickup,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// Terminal reports whether the status ends an order's active lifecycle.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Valid reports whether the status belongs to the allowed vocabulary.
func (s OrderStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Customer holds contact details owned by the order store.
type Customer struct {
	Name    string
	Address string
	Phone   string
}

// LineItem is a single position of an order.
type LineItem struct {
	FoodName  string
	Size      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Order is the unit of work managed by the lifecycle coordinator.
// CreatedAt is zero when the upstream feed carried an unparsable date.
type Order struct {
	ID             int64
	CreatedAt      time.Time
	Customer       Customer
	ShippingMethod string
	PaymentMethod  string
	TotalAmount    decimal.Decimal
	Items          []LineItem
	Status         OrderStatus
}
