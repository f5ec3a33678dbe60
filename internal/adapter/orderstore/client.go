package orderstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/yappari/coffeebar-admin/internal/domain/errors"
	"github.com/yappari/coffeebar-admin/internal/domain/model"
)

// Client exposes the order store operations consumed by the admin
// service. The store is the sole source of truth; every call is
// fallible and never retried automatically.
type Client interface {
	FetchActiveOrders(ctx context.Context) ([]model.Order, error)
	FetchOrderStatus(ctx context.Context, orderID int64) (model.OrderStatus, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	AppendOrderHistory(ctx context.Context, orderIDs []int64, status model.OrderStatus) error
	FetchOrderHistory(ctx context.Context) ([]model.Order, error)
	FetchFeedback(ctx context.Context) ([]model.Feedback, error)
}

// HTTPClient implements Client against the legacy PHP order store.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// envelope mirrors the store's common response shape. Orders and
// Feedback stay raw so malformed payloads can be coerced instead of
// failing the whole call.
type envelope struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	OrderStatus string          `json:"order_status"`
	Orders      json.RawMessage `json:"orders"`
	Feedback    json.RawMessage `json:"feedback"`
}

type orderPayload struct {
	OrdersID       json.Number       `json:"orders_id"`
	CreatedAt      string            `json:"created_at"`
	CustomerName   string            `json:"customer_name"`
	Address        string            `json:"address"`
	PhoneNumber    string            `json:"phone_number"`
	ShippingMethod string            `json:"shipping_method"`
	PaymentMethod  string            `json:"payment_method"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	Status         string            `json:"status"`
	Items          []lineItemPayload `json:"items"`
}

type lineItemPayload struct {
	FoodName string          `json:"food_name"`
	Size     string          `json:"size"`
	Quantity json.Number     `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type feedbackPayload struct {
	FirstName string      `json:"f_name"`
	LastName  string      `json:"l_name"`
	Email     string      `json:"email"`
	Message   string      `json:"order_feedback"`
	Score     json.Number `json:"feedback_score"`
}

// createdAtLayouts covers the date shapes observed in the store's
// feeds. Unparsable dates degrade to the zero time.
var createdAtLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// NewHTTPClient creates an order store client with the given request
// timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse order store url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("order store url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// FetchActiveOrders returns the authoritative active order list.
func (c *HTTPClient) FetchActiveOrders(ctx context.Context) ([]model.Order, error) {
	env, err := c.get(ctx, "fetchOrderAdmin.php", nil)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, domainErrors.StoreError{Op: "fetch orders", Message: env.Message}
	}
	return c.decodeOrders(env.Orders), nil
}

// FetchOrderStatus queries the store for a single order's status.
func (c *HTTPClient) FetchOrderStatus(ctx context.Context, orderID int64) (model.OrderStatus, error) {
	query := url.Values{"order_id": {strconv.FormatInt(orderID, 10)}}
	env, err := c.get(ctx, "updateOrderStatus.php", query)
	if err != nil {
		return "", err
	}
	if !env.Success {
		return "", domainErrors.StoreError{Op: "fetch order status", Message: env.Message}
	}
	return model.OrderStatus(env.OrderStatus), nil
}

// UpdateOrderStatus asks the store to transition one order.
func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	payload := map[string]any{"order_id": orderID, "status": status}
	env, err := c.post(ctx, "updateOrderStatus.php", payload)
	if err != nil {
		return err
	}
	if !env.Success {
		return domainErrors.StoreError{Op: "update order status", Message: env.Message}
	}
	return nil
}

// AppendOrderHistory records finalized orders in the store's history.
func (c *HTTPClient) AppendOrderHistory(ctx context.Context, orderIDs []int64, status model.OrderStatus) error {
	payload := map[string]any{"order_ids": orderIDs, "status": status}
	env, err := c.post(ctx, "saveOrderHistory.php", payload)
	if err != nil {
		return err
	}
	if !env.Success {
		return domainErrors.StoreError{Op: "append order history", Message: env.Message}
	}
	return nil
}

// FetchOrderHistory returns historical orders for display.
func (c *HTTPClient) FetchOrderHistory(ctx context.Context) ([]model.Order, error) {
	env, err := c.get(ctx, "fetchOrderHistory.php", nil)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, domainErrors.StoreError{Op: "fetch order history", Message: env.Message}
	}
	return c.decodeOrders(env.Orders), nil
}

// FetchFeedback returns customer feedback entries.
func (c *HTTPClient) FetchFeedback(ctx context.Context) ([]model.Feedback, error) {
	env, err := c.get(ctx, "get_feedback.php", nil)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, domainErrors.StoreError{Op: "fetch feedback", Message: env.Message}
	}

	var payloads []feedbackPayload
	if len(env.Feedback) > 0 {
		if err := json.Unmarshal(env.Feedback, &payloads); err != nil {
			c.logger.Warn("feedback payload is not a list, coercing to empty", slog.String("error", err.Error()))
			return []model.Feedback{}, nil
		}
	}
	result := make([]model.Feedback, 0, len(payloads))
	for _, p := range payloads {
		score, _ := p.Score.Int64()
		result = append(result, model.Feedback{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Message:   p.Message,
			Score:     int(score),
		})
	}
	return result, nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string, query url.Values) (*envelope, error) {
	target := c.endpoint(endpoint)
	if query != nil {
		target.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, endpoint)
}

func (c *HTTPClient) post(ctx context.Context, endpoint string, payload any) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	target := c.endpoint(endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req, endpoint)
}

func (c *HTTPClient) endpoint(name string) url.URL {
	target := *c.baseURL
	target.Path = path.Join(target.Path, "/api/", name)
	return target
}

func (c *HTTPClient) do(req *http.Request, endpoint string) (*envelope, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("order store request failed",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, fmt.Errorf("order store error: %s", resp.Status)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode order store response: %w", err)
	}
	return &env, nil
}

// decodeOrders converts the raw orders field, coercing malformed
// payloads to an empty list instead of failing the view.
func (c *HTTPClient) decodeOrders(raw json.RawMessage) []model.Order {
	if len(raw) == 0 {
		return []model.Order{}
	}
	var payloads []orderPayload
	if err := json.Unmarshal(raw, &payloads); err != nil {
		c.logger.Warn("orders payload is not a list, coercing to empty", slog.String("error", err.Error()))
		return []model.Order{}
	}

	result := make([]model.Order, 0, len(payloads))
	for _, p := range payloads {
		id, err := p.OrdersID.Int64()
		if err != nil {
			c.logger.Warn("skipping order with malformed id", slog.String("orders_id", p.OrdersID.String()))
			continue
		}
		items := make([]model.LineItem, 0, len(p.Items))
		for _, item := range p.Items {
			qty, _ := item.Quantity.Int64()
			items = append(items, model.LineItem{
				FoodName:  item.FoodName,
				Size:      item.Size,
				Quantity:  int(qty),
				UnitPrice: item.Price,
			})
		}
		result = append(result, model.Order{
			ID:        id,
			CreatedAt: parseCreatedAt(p.CreatedAt),
			Customer: model.Customer{
				Name:    p.CustomerName,
				Address: p.Address,
				Phone:   p.PhoneNumber,
			},
			ShippingMethod: p.ShippingMethod,
			PaymentMethod:  p.PaymentMethod,
			TotalAmount:    p.TotalAmount,
			Items:          items,
			Status:         model.OrderStatus(p.Status),
		})
	}
	return result
}

func parseCreatedAt(value string) time.Time {
	for _, layout := range createdAtLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
