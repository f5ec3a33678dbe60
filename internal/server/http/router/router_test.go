package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yappari/coffeebar-admin/internal/domain/model"
	"github.com/yappari/coffeebar-admin/internal/server/http/handlers"
	testhelpers "github.com/yappari/coffeebar-admin/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.AdminFacadeStub{
		ActiveOrdersFn: func(context.Context, *model.Day) ([]model.Order, bool, error) {
			return []model.Order{{ID: 1, CreatedAt: time.Unix(0, 0), Status: model.OrderStatusPending}}, true, nil
		},
		SelectionIDs: []int64{1},
	}
	engine := Setup(facade, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}
	if got := resp.Header().Get("X-Request-Id"); got == "" {
		t.Fatal("expected request id header")
	}

	body, _ := json.Marshal(map[string]bool{"confirmed": true})
	req = httptest.NewRequest(http.MethodPost, "/api/admin/orders/complete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for batch complete, got %d", resp.Code)
	}

	for _, path := range []string{
		"/api/admin/orders/selection",
		"/api/admin/history",
		"/api/admin/feedback",
		"/api/admin/analytics/sales",
	} {
		req = httptest.NewRequest(http.MethodGet, path, nil)
		resp = httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, resp.Code)
		}
	}
}

var _ handlers.AdminFacade = testhelpers.AdminFacadeStub{}
