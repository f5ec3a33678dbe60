package usecase

import "github.com/yappari/coffeebar-admin/internal/domain/model"

// FilterByDate projects the order list onto one local calendar date,
// comparing year, month and day of created_at without shifting across
// a timezone boundary. A nil day returns the input unfiltered. The
// input is never mutated.
func FilterByDate(orders []model.Order, day *model.Day) []model.Order {
	if day == nil {
		return orders
	}
	filtered := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		if day.Matches(order.CreatedAt) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}
