package orderstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/yappari/coffeebar-admin/internal/domain/errors"
	"github.com/yappari/coffeebar-admin/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewHTTPClient(server.URL, time.Second, testLogger())
	if err != nil {
		t.Fatalf("client construction failed: %v", err)
	}
	return client, server
}

func TestNewHTTPClientRejectsRelativeURL(t *testing.T) {
	if _, err := NewHTTPClient("localhost:8080", time.Second, testLogger()); err == nil {
		t.Fatal("expected error for non-absolute url")
	}
	if _, err := NewHTTPClient("://bad", time.Second, testLogger()); err == nil {
		t.Fatal("expected error for malformed url")
	}
	if _, err := NewHTTPClient("http://store.local", 0, testLogger()); err != nil {
		t.Fatalf("zero timeout must fall back to a default: %v", err)
	}
}

func TestFetchActiveOrdersDecodesPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/fetchOrderAdmin.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"success": true,
			"orders": [{
				"orders_id": "41",
				"created_at": "2024-01-02 15:04:05",
				"customer_name": "Mina Park",
				"address": "12 Bean St",
				"phone_number": "555-0101",
				"shipping_method": "pickup",
				"payment_method": "cash",
				"total_amount": "12.50",
				"status": "Pending",
				"items": [{"food_name": "Latte", "size": "L", "quantity": "2", "price": "4.50"}]
			}]
		}`))
	}))

	orders, err := client.FetchActiveOrders(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	order := orders[0]
	if order.ID != 41 || order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.Customer.Name != "Mina Park" || order.Customer.Phone != "555-0101" {
		t.Fatalf("unexpected customer %+v", order.Customer)
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("unexpected total %s", order.TotalAmount)
	}
	want := time.Date(2024, 1, 2, 15, 4, 5, 0, time.Local)
	if !order.CreatedAt.Equal(want) {
		t.Fatalf("unexpected created_at %s", order.CreatedAt)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 || !order.Items[0].UnitPrice.Equal(decimal.RequireFromString("4.50")) {
		t.Fatalf("unexpected items %+v", order.Items)
	}
}

func TestFetchActiveOrdersCoercesNonArrayOrders(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "orders": {"unexpected": "shape"}}`))
	}))

	orders, err := client.FetchActiveOrders(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty list, got %+v", orders)
	}
}

func TestFetchActiveOrdersSkipsMalformedIDs(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "orders": [
			{"orders_id": "not-a-number", "status": "Pending"},
			{"orders_id": 7, "status": "Pending"}
		]}`))
	}))

	orders, err := client.FetchActiveOrders(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 7 {
		t.Fatalf("expected only the valid order, got %+v", orders)
	}
}

func TestFetchActiveOrdersUnparsableDateDegradesToZero(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "orders": [{"orders_id": 1, "created_at": "yesterday"}]}`))
	}))

	orders, err := client.FetchActiveOrders(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if !orders[0].CreatedAt.IsZero() {
		t.Fatalf("expected zero time, got %s", orders[0].CreatedAt)
	}
}

func TestFetchActiveOrdersStoreFailureKeepsMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "database connection lost"}`))
	}))

	_, err := client.FetchActiveOrders(context.Background())
	var storeErr domainErrors.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if storeErr.Message != "database connection lost" {
		t.Fatalf("expected verbatim store message, got %q", storeErr.Message)
	}
}

func TestFetchOrderStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		if got := r.URL.Query().Get("order_id"); got != "15" {
			t.Errorf("unexpected order_id %q", got)
		}
		w.Write([]byte(`{"success": true, "order_status": "Processing"}`))
	}))

	status, err := client.FetchOrderStatus(context.Background(), 15)
	if err != nil {
		t.Fatalf("fetch status failed: %v", err)
	}
	if status != model.OrderStatusProcessing {
		t.Fatalf("unexpected status %s", status)
	}
}

func TestUpdateOrderStatusPostsPayload(t *testing.T) {
	var captured map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"success": true}`))
	}))

	if err := client.UpdateOrderStatus(context.Background(), 15, model.OrderStatusReadyToPickup); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if captured["order_id"] != float64(15) || captured["status"] != string(model.OrderStatusReadyToPickup) {
		t.Fatalf("unexpected payload %+v", captured)
	}
}

func TestAppendOrderHistoryPostsIDList(t *testing.T) {
	var captured map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/saveOrderHistory.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"success": true}`))
	}))

	if err := client.AppendOrderHistory(context.Background(), []int64{3, 4}, model.OrderStatusCompleted); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	ids, ok := captured["order_ids"].([]any)
	if !ok || len(ids) != 2 {
		t.Fatalf("unexpected order_ids %+v", captured["order_ids"])
	}
}

func TestFetchFeedbackDecodesEntries(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/get_feedback.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"success": true, "feedback": [
			{"f_name": "Mina", "l_name": "Park", "email": "mina@example.com", "order_feedback": "great latte", "feedback_score": "5"}
		]}`))
	}))

	entries, err := client.FetchFeedback(context.Background())
	if err != nil {
		t.Fatalf("fetch feedback failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].FirstName != "Mina" || entries[0].Score != 5 || entries[0].Message != "great latte" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestNonOKStatusFailsRequest(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	if _, err := client.FetchActiveOrders(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
