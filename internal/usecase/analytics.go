package usecase

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yappari/coffeebar-admin/internal/domain/model"
)

const topProductsLimit = 10

// AnalyticsUseCase aggregates sales figures from the order history
// feed. Cancelled orders are excluded from every figure.
type AnalyticsUseCase struct {
	gateway HistoryGateway
}

// NewAnalyticsUseCase constructs AnalyticsUseCase.
func NewAnalyticsUseCase(gateway HistoryGateway) *AnalyticsUseCase {
	return &AnalyticsUseCase{gateway: gateway}
}

// SalesSummary computes total revenue, order counts, per-day buckets
// and the best-selling products.
func (u *AnalyticsUseCase) SalesSummary(ctx context.Context) (*model.SalesSummary, error) {
	orders, err := u.gateway.FetchOrderHistory(ctx)
	if err != nil {
		return nil, err
	}
	orders = DedupeByID(orders)

	summary := &model.SalesSummary{TotalSales: decimal.Zero}
	days := make(map[model.Day]*model.DailySales)
	products := make(map[string]*model.ProductSales)

	for _, order := range orders {
		if order.Status == model.OrderStatusCancelled {
			continue
		}
		summary.TotalOrders++
		summary.TotalSales = summary.TotalSales.Add(order.TotalAmount)

		day := model.DayOf(order.CreatedAt)
		bucket, ok := days[day]
		if !ok {
			bucket = &model.DailySales{Day: day, Amount: decimal.Zero}
			days[day] = bucket
		}
		bucket.Orders++
		bucket.Amount = bucket.Amount.Add(order.TotalAmount)

		for _, item := range order.Items {
			product, ok := products[item.FoodName]
			if !ok {
				product = &model.ProductSales{FoodName: item.FoodName, Revenue: decimal.Zero}
				products[item.FoodName] = product
			}
			product.Quantity += item.Quantity
			product.Revenue = product.Revenue.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	summary.Days = make([]model.DailySales, 0, len(days))
	for _, bucket := range days {
		summary.Days = append(summary.Days, *bucket)
	}
	sort.Slice(summary.Days, func(i, j int) bool {
		return summary.Days[i].Day.String() < summary.Days[j].Day.String()
	})

	summary.TopProducts = make([]model.ProductSales, 0, len(products))
	for _, product := range products {
		summary.TopProducts = append(summary.TopProducts, *product)
	}
	sort.Slice(summary.TopProducts, func(i, j int) bool {
		if !summary.TopProducts[i].Revenue.Equal(summary.TopProducts[j].Revenue) {
			return summary.TopProducts[i].Revenue.GreaterThan(summary.TopProducts[j].Revenue)
		}
		return summary.TopProducts[i].FoodName < summary.TopProducts[j].FoodName
	})
	if len(summary.TopProducts) > topProductsLimit {
		summary.TopProducts = summary.TopProducts[:topProductsLimit]
	}

	return summary, nil
}
