package usecase

import "github.com/yappari/coffeebar-admin/internal/domain/model"

// DedupeByID collapses repeated order ids, as seen in upstream feeds
// that return overlapping pages. The entry with the latest creation
// time wins; equal or unparsable dates keep the last-seen entry. The
// result preserves first-occurrence order.
func DedupeByID(orders []model.Order) []model.Order {
	index := make(map[int64]int, len(orders))
	result := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		pos, seen := index[order.ID]
		if !seen {
			index[order.ID] = len(result)
			result = append(result, order)
			continue
		}
		if !order.CreatedAt.Before(result[pos].CreatedAt) {
			result[pos] = order
		}
	}
	return result
}
