package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yappari/coffeebar-admin/internal/domain/model"
	testhelpers "github.com/yappari/coffeebar-admin/internal/test"
	"github.com/yappari/coffeebar-admin/internal/usecase"
)

func TestSalesSummaryAggregates(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	jan2 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)
	gateway := &testhelpers.OrderGatewayStub{HistoryFn: func(context.Context) ([]model.Order, error) {
		return []model.Order{
			{
				ID: 1, CreatedAt: jan1, Status: model.OrderStatusCompleted,
				TotalAmount: decimal.RequireFromString("12.50"),
				Items: []model.LineItem{
					{FoodName: "Latte", Quantity: 2, UnitPrice: decimal.RequireFromString("4.50")},
					{FoodName: "Croissant", Quantity: 1, UnitPrice: decimal.RequireFromString("3.50")},
				},
			},
			{
				ID: 2, CreatedAt: jan1, Status: model.OrderStatusCompleted,
				TotalAmount: decimal.RequireFromString("4.50"),
				Items: []model.LineItem{
					{FoodName: "Latte", Quantity: 1, UnitPrice: decimal.RequireFromString("4.50")},
				},
			},
			{
				ID: 3, CreatedAt: jan2, Status: model.OrderStatusCancelled,
				TotalAmount: decimal.RequireFromString("99.00"),
				Items: []model.LineItem{
					{FoodName: "Espresso", Quantity: 9, UnitPrice: decimal.RequireFromString("11.00")},
				},
			},
		}, nil
	}}
	u := usecase.NewAnalyticsUseCase(gateway)

	summary, err := u.SalesSummary(context.Background())
	if err != nil {
		t.Fatalf("sales summary failed: %v", err)
	}
	if summary.TotalOrders != 2 {
		t.Fatalf("expected 2 orders counted, got %d", summary.TotalOrders)
	}
	if !summary.TotalSales.Equal(decimal.RequireFromString("17.00")) {
		t.Fatalf("expected total 17.00, got %s", summary.TotalSales)
	}
	if len(summary.Days) != 1 || summary.Days[0].Orders != 2 {
		t.Fatalf("expected single day bucket with 2 orders, got %+v", summary.Days)
	}
	if len(summary.TopProducts) != 2 {
		t.Fatalf("expected 2 products, got %+v", summary.TopProducts)
	}
	if summary.TopProducts[0].FoodName != "Latte" || summary.TopProducts[0].Quantity != 3 {
		t.Fatalf("expected Latte ranked first with quantity 3, got %+v", summary.TopProducts[0])
	}
	if !summary.TopProducts[0].Revenue.Equal(decimal.RequireFromString("13.50")) {
		t.Fatalf("expected Latte revenue 13.50, got %s", summary.TopProducts[0].Revenue)
	}
}

func TestSalesSummaryRevenueTieBreaksByName(t *testing.T) {
	when := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)
	gateway := &testhelpers.OrderGatewayStub{HistoryFn: func(context.Context) ([]model.Order, error) {
		return []model.Order{
			{
				ID: 1, CreatedAt: when, Status: model.OrderStatusCompleted,
				TotalAmount: decimal.RequireFromString("10.00"),
				Items: []model.LineItem{
					{FoodName: "Mocha", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
					{FoodName: "Americano", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
				},
			},
		}, nil
	}}
	u := usecase.NewAnalyticsUseCase(gateway)

	summary, err := u.SalesSummary(context.Background())
	if err != nil {
		t.Fatalf("sales summary failed: %v", err)
	}
	if summary.TopProducts[0].FoodName != "Americano" {
		t.Fatalf("expected alphabetical tie break, got %+v", summary.TopProducts)
	}
}

func TestSalesSummaryPropagatesError(t *testing.T) {
	wantErr := errors.New("store unavailable")
	gateway := &testhelpers.OrderGatewayStub{HistoryFn: func(context.Context) ([]model.Order, error) {
		return nil, wantErr
	}}
	u := usecase.NewAnalyticsUseCase(gateway)

	if _, err := u.SalesSummary(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
