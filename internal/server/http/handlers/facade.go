package handlers

import (
	"context"

	"github.com/yappari/coffeebar-admin/internal/domain/model"
	"github.com/yappari/coffeebar-admin/internal/usecase"
)

// OrderFacade encapsulates lifecycle operations exposed via HTTP.
type OrderFacade interface {
	ActiveOrders(ctx context.Context, day *model.Day) ([]model.Order, bool, error)
	OrderStatus(ctx context.Context, orderID int64) (model.OrderStatus, error)
	SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*usecase.StatusUpdateResult, error)
	Select(orderID int64) error
	Deselect(orderID int64)
	SelectAll() []int64
	ClearSelection()
	Selection() []int64
	BatchComplete(ctx context.Context, confirmed bool) (*model.BatchReport, error)
}

// HistoryFacade provides the order history view.
type HistoryFacade interface {
	History(ctx context.Context) ([]model.Order, error)
}

// FeedbackFacade provides the customer feedback view.
type FeedbackFacade interface {
	Feedback(ctx context.Context) ([]model.Feedback, error)
}

// AnalyticsFacade provides aggregated sales figures.
type AnalyticsFacade interface {
	SalesSummary(ctx context.Context) (*model.SalesSummary, error)
}

// AdminFacade aggregates the full set of operations used across handlers.
type AdminFacade interface {
	OrderFacade
	HistoryFacade
	FeedbackFacade
	AnalyticsFacade
}
