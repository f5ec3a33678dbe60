package dto

import "github.com/shopspring/decimal"

// DailySalesResponse buckets revenue by calendar date.
type DailySalesResponse struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Orders int             `json:"orders"`
}

// ProductSalesResponse ranks one menu item by sales.
type ProductSalesResponse struct {
	FoodName string          `json:"food_name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SalesSummaryResponse is the analytics aggregate.
type SalesSummaryResponse struct {
	TotalSales  decimal.Decimal        `json:"total_sales"`
	TotalOrders int                    `json:"total_orders"`
	Days        []DailySalesResponse   `json:"days"`
	TopProducts []ProductSalesResponse `json:"top_products"`
}
