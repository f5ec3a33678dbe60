package app

import (
	"context"

	"github.com/yappari/coffeebar-admin/internal/domain/model"
	"github.com/yappari/coffeebar-admin/internal/usecase"
)

// AdminFacade aggregates the operations the admin console surface
// exposes: the order lifecycle coordinator plus the read-only history,
// feedback and analytics views.
type AdminFacade struct {
	coordinator *usecase.Coordinator
	history     *usecase.HistoryUseCase
	feedback    *usecase.FeedbackUseCase
	analytics   *usecase.AnalyticsUseCase
}

// NewAdminFacade constructs AdminFacade.
func NewAdminFacade(coordinator *usecase.Coordinator, history *usecase.HistoryUseCase, feedback *usecase.FeedbackUseCase, analytics *usecase.AnalyticsUseCase) *AdminFacade {
	return &AdminFacade{
		coordinator: coordinator,
		history:     history,
		feedback:    feedback,
		analytics:   analytics,
	}
}

// Init loads the persisted Completed-Locally set. Called once at startup.
func (f *AdminFacade) Init(ctx context.Context) error {
	return f.coordinator.Start(ctx)
}

// ActiveOrders re-fetches the authoritative order list, applies the
// requested date filter and returns the working set.
func (f *AdminFacade) ActiveOrders(ctx context.Context, day *model.Day) ([]model.Order, bool, error) {
	if err := f.coordinator.Refresh(ctx); err != nil {
		return nil, false, err
	}
	if day != nil {
		f.coordinator.SetDateFilter(*day)
	} else {
		f.coordinator.ClearDateFilter()
	}
	orders, loaded := f.coordinator.WorkingSet()
	return orders, loaded, nil
}

// OrderStatus returns one order's authoritative status.
func (f *AdminFacade) OrderStatus(ctx context.Context, orderID int64) (model.OrderStatus, error) {
	return f.coordinator.OrderStatus(ctx, orderID)
}

// SetStatus transitions one order, migrating it to history when the
// new status is terminal.
func (f *AdminFacade) SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*usecase.StatusUpdateResult, error) {
	return f.coordinator.SetStatus(ctx, orderID, status)
}

// Select adds an order to the batch selection.
func (f *AdminFacade) Select(orderID int64) error {
	return f.coordinator.Select(orderID)
}

// Deselect removes an order from the batch selection.
func (f *AdminFacade) Deselect(orderID int64) {
	f.coordinator.Deselect(orderID)
}

// SelectAll selects every selectable order in the current view.
func (f *AdminFacade) SelectAll() []int64 {
	return f.coordinator.SelectAll()
}

// ClearSelection empties the batch selection.
func (f *AdminFacade) ClearSelection() {
	f.coordinator.ClearSelection()
}

// Selection returns the currently selected order ids.
func (f *AdminFacade) Selection() []int64 {
	return f.coordinator.Selection()
}

// BatchComplete finalizes the selected orders.
func (f *AdminFacade) BatchComplete(ctx context.Context, confirmed bool) (*model.BatchReport, error) {
	return f.coordinator.BatchComplete(ctx, confirmed)
}

// History returns the deduplicated order history.
func (f *AdminFacade) History(ctx context.Context) ([]model.Order, error) {
	return f.history.List(ctx)
}

// Feedback returns customer feedback entries.
func (f *AdminFacade) Feedback(ctx context.Context) ([]model.Feedback, error) {
	return f.feedback.List(ctx)
}

// SalesSummary returns aggregated sales analytics.
func (f *AdminFacade) SalesSummary(ctx context.Context) (*model.SalesSummary, error) {
	return f.analytics.SalesSummary(ctx)
}
