package usecase

import (
	"context"
	"sort"

	"github.com/yappari/coffeebar-admin/internal/domain/model"
)

// HistoryGateway describes the order store's history feed.
type HistoryGateway interface {
	FetchOrderHistory(ctx context.Context) ([]model.Order, error)
}

// HistoryUseCase serves the read-only order history view.
type HistoryUseCase struct {
	gateway HistoryGateway
}

// NewHistoryUseCase constructs HistoryUseCase.
func NewHistoryUseCase(gateway HistoryGateway) *HistoryUseCase {
	return &HistoryUseCase{gateway: gateway}
}

// List returns historical orders deduplicated and sorted newest first.
func (u *HistoryUseCase) List(ctx context.Context) ([]model.Order, error) {
	orders, err := u.gateway.FetchOrderHistory(ctx)
	if err != nil {
		return nil, err
	}
	orders = DedupeByID(orders)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
