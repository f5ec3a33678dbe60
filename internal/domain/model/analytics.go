package model

import "github.com/shopspring/decimal"

// DailySales buckets revenue and order counts by calendar date.
type DailySales struct {
	Day    Day
	Amount decimal.Decimal
	Orders int
}

// ProductSales ranks one menu item by historical sales.
type ProductSales struct {
	FoodName string
	Quantity int
	Revenue  decimal.Decimal
}

// SalesSummary is the aggregate computed from the order history feed.
// Cancelled orders count toward nothing.
type SalesSummary struct {
	TotalSales  decimal.Decimal
	TotalOrders int
	Days        []DailySales
	TopProducts []ProductSales
}
