package test

import (
	"context"
	"sync"

	"github.com/yappari/coffeebar-admin/internal/domain/model"
	"github.com/yappari/coffeebar-admin/internal/usecase"
)

// StatusUpdateCall records one UpdateOrderStatus request seen by a stub.
type StatusUpdateCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// HistoryAppendCall records one AppendOrderHistory request seen by a stub.
type HistoryAppendCall struct {
	OrderIDs []int64
	Status   model.OrderStatus
}

// OrderGatewayStub provides controllable order store behaviour for
// coordinator tests. Zero value: every call succeeds against an empty
// store.
type OrderGatewayStub struct {
	FetchFn        func(context.Context) ([]model.Order, error)
	StatusFn       func(context.Context, int64) (model.OrderStatus, error)
	UpdateFn       func(context.Context, int64, model.OrderStatus) error
	AppendFn       func(context.Context, []int64, model.OrderStatus) error
	HistoryFn      func(context.Context) ([]model.Order, error)
	FeedbackFn     func(context.Context) ([]model.Feedback, error)
	mu             sync.Mutex
	Updates        []StatusUpdateCall
	Appends        []HistoryAppendCall
}

// Lock exposes the internal mutex for external synchronization.
func (s *OrderGatewayStub) Lock() { s.mu.Lock() }

// Unlock releases a previously acquired lock.
func (s *OrderGatewayStub) Unlock() { s.mu.Unlock() }

func (s *OrderGatewayStub) FetchActiveOrders(ctx context.Context) ([]model.Order, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx)
	}
	return []model.Order{}, nil
}

func (s *OrderGatewayStub) FetchOrderStatus(ctx context.Context, orderID int64) (model.OrderStatus, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, orderID)
	}
	return model.OrderStatusPending, nil
}

func (s *OrderGatewayStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	var err error
	if s.UpdateFn != nil {
		err = s.UpdateFn(ctx, orderID, status)
	}
	if err == nil {
		s.mu.Lock()
		s.Updates = append(s.Updates, StatusUpdateCall{OrderID: orderID, Status: status})
		s.mu.Unlock()
	}
	return err
}

func (s *OrderGatewayStub) AppendOrderHistory(ctx context.Context, orderIDs []int64, status model.OrderStatus) error {
	var err error
	if s.AppendFn != nil {
		err = s.AppendFn(ctx, orderIDs, status)
	}
	if err == nil {
		s.mu.Lock()
		s.Appends = append(s.Appends, HistoryAppendCall{OrderIDs: append([]int64(nil), orderIDs...), Status: status})
		s.mu.Unlock()
	}
	return err
}

func (s *OrderGatewayStub) FetchOrderHistory(ctx context.Context) ([]model.Order, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx)
	}
	return []model.Order{}, nil
}

func (s *OrderGatewayStub) FetchFeedback(ctx context.Context) ([]model.Feedback, error) {
	if s.FeedbackFn != nil {
		return s.FeedbackFn(ctx)
	}
	return []model.Feedback{}, nil
}

// AdminFacadeStub provides controllable behaviour for handler tests.
type AdminFacadeStub struct {
	ActiveOrdersFn  func(context.Context, *model.Day) ([]model.Order, bool, error)
	OrderStatusFn   func(context.Context, int64) (model.OrderStatus, error)
	SetStatusFn     func(context.Context, int64, model.OrderStatus) (*usecase.StatusUpdateResult, error)
	SelectFn        func(int64) error
	SelectionIDs    []int64
	BatchCompleteFn func(context.Context, bool) (*model.BatchReport, error)
	HistoryFn       func(context.Context) ([]model.Order, error)
	FeedbackFn      func(context.Context) ([]model.Feedback, error)
	SalesSummaryFn  func(context.Context) (*model.SalesSummary, error)
}

func (s AdminFacadeStub) ActiveOrders(ctx context.Context, day *model.Day) ([]model.Order, bool, error) {
	if s.ActiveOrdersFn != nil {
		return s.ActiveOrdersFn(ctx, day)
	}
	return []model.Order{}, true, nil
}

func (s AdminFacadeStub) OrderStatus(ctx context.Context, orderID int64) (model.OrderStatus, error) {
	if s.OrderStatusFn != nil {
		return s.OrderStatusFn(ctx, orderID)
	}
	return model.OrderStatusPending, nil
}

func (s AdminFacadeStub) SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*usecase.StatusUpdateResult, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, orderID, status)
	}
	return &usecase.StatusUpdateResult{Status: status}, nil
}

func (s AdminFacadeStub) Select(orderID int64) error {
	if s.SelectFn != nil {
		return s.SelectFn(orderID)
	}
	return nil
}

func (s AdminFacadeStub) Deselect(int64) {}

func (s AdminFacadeStub) SelectAll() []int64 {
	return s.SelectionIDs
}

func (s AdminFacadeStub) ClearSelection() {}

func (s AdminFacadeStub) Selection() []int64 {
	return s.SelectionIDs
}

func (s AdminFacadeStub) BatchComplete(ctx context.Context, confirmed bool) (*model.BatchReport, error) {
	if s.BatchCompleteFn != nil {
		return s.BatchCompleteFn(ctx, confirmed)
	}
	return &model.BatchReport{}, nil
}

func (s AdminFacadeStub) History(ctx context.Context) ([]model.Order, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx)
	}
	return []model.Order{}, nil
}

func (s AdminFacadeStub) Feedback(ctx context.Context) ([]model.Feedback, error) {
	if s.FeedbackFn != nil {
		return s.FeedbackFn(ctx)
	}
	return []model.Feedback{}, nil
}

func (s AdminFacadeStub) SalesSummary(ctx context.Context) (*model.SalesSummary, error) {
	if s.SalesSummaryFn != nil {
		return s.SalesSummaryFn(ctx)
	}
	return &model.SalesSummary{}, nil
}
