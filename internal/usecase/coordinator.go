package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	domainErrors "github.com/yappari/coffeebar-admin/internal/domain/errors"
	"github.com/yappari/coffeebar-admin/internal/domain/model"
	"github.com/yappari/coffeebar-admin/internal/domain/repository"
	"github.com/yappari/coffeebar-admin/internal/worker"
)

// OrderGateway describes the order store operations the coordinator
// issues. The store is authoritative; the coordinator's working set is
// a mirror that is re-fetched after every batch mutation.
type OrderGateway interface {
	FetchActiveOrders(ctx context.Context) ([]model.Order, error)
	FetchOrderStatus(ctx context.Context, orderID int64) (model.OrderStatus, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	AppendOrderHistory(ctx context.Context, orderIDs []int64, status model.OrderStatus) error
}

// StatusUpdateResult reports the outcome of a single status transition.
// Warning carries a history-append failure that followed a successful
// status update; the order then stays in the working set.
// AlreadyCompleted marks a terminal transition whose history migration
// had already happened, so no second append was issued.
type StatusUpdateResult struct {
	Status           model.OrderStatus
	Migrated         bool
	AlreadyCompleted bool
	Warning          string
}

// Coordinator owns the in-memory working set of active orders, the
// operator's selection set, the optional date filter, and the
// Completed-Locally guard. All mutations go through its own operations.
type Coordinator struct {
	gateway   OrderGateway
	completed repository.CompletedOrderRepository
	runner    *worker.Runner
	logger    *slog.Logger

	mu        sync.Mutex
	active    []model.Order
	selection map[int64]struct{}
	finalized map[int64]struct{}
	filter    *model.Day
	loaded    bool
}

// NewCoordinator constructs the order lifecycle coordinator.
func NewCoordinator(gateway OrderGateway, completed repository.CompletedOrderRepository, runner *worker.Runner, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		gateway:   gateway,
		completed: completed,
		runner:    runner,
		logger:    logger,
		selection: make(map[int64]struct{}),
		finalized: make(map[int64]struct{}),
	}
}

// Start loads the persisted Completed-Locally set. Called once before
// the coordinator serves requests.
func (c *Coordinator) Start(ctx context.Context) error {
	ids, err := c.completed.Load(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		c.finalized[id] = struct{}{}
	}
	return nil
}

// Refresh replaces the working set with the store's authoritative
// active order list, deduplicated by id. Selection entries for orders
// no longer active are dropped.
func (c *Coordinator) Refresh(ctx context.Context) error {
	orders, err := c.gateway.FetchActiveOrders(ctx)
	if err != nil {
		return err
	}
	orders = DedupeByID(orders)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = orders
	c.loaded = true

	present := make(map[int64]struct{}, len(orders))
	for _, order := range orders {
		present[order.ID] = struct{}{}
	}
	for id := range c.selection {
		if _, ok := present[id]; !ok {
			delete(c.selection, id)
		}
	}
	return nil
}

// WorkingSet returns the active orders under the current date filter.
// loaded is false until the first successful refresh, distinguishing
// "nothing fetched yet" from a legitimately empty result.
func (c *Coordinator) WorkingSet() (orders []model.Order, loaded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	filtered := FilterByDate(c.active, c.filter)
	out := make([]model.Order, len(filtered))
	copy(out, filtered)
	return out, c.loaded
}

// SetDateFilter narrows the displayed working set to one calendar
// date. Switching to a different date clears the selection, since the
// new view may hide selected orders; re-applying the active date is a
// no-op and keeps it.
func (c *Coordinator) SetDateFilter(day model.Day) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filter != nil && *c.filter == day {
		return
	}
	c.filter = &day
	c.selection = make(map[int64]struct{})
}

// ClearDateFilter removes the date filter. The selection survives:
// widening the view never hides a selected order.
func (c *Coordinator) ClearDateFilter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = nil
}

// Filtered reports whether a date filter is active.
func (c *Coordinator) Filtered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter != nil
}

// Select adds an order to the selection set. Orders already finalized,
// locally or by mirrored terminal status, are rejected.
func (c *Coordinator) Select(orderID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, done := c.finalized[orderID]; done {
		return domainErrors.AlreadyCompletedError{OrderIDs: []int64{orderID}}
	}
	order := c.findLocked(orderID)
	if order == nil {
		return domainErrors.ErrOrderNotFound
	}
	if order.Status.Terminal() {
		return domainErrors.AlreadyCompletedError{OrderIDs: []int64{orderID}}
	}
	c.selection[orderID] = struct{}{}
	return nil
}

// Deselect removes an order from the selection set.
func (c *Coordinator) Deselect(orderID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.selection, orderID)
}

// SelectAll selects every selectable order in the current filtered
// view, skipping finalized ones.
func (c *Coordinator) SelectAll() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, order := range FilterByDate(c.active, c.filter) {
		if _, done := c.finalized[order.ID]; done {
			continue
		}
		if order.Status.Terminal() {
			continue
		}
		c.selection[order.ID] = struct{}{}
	}
	return c.selectionLocked()
}

// ClearSelection empties the selection set.
func (c *Coordinator) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection = make(map[int64]struct{})
}

// Selection returns the selected order ids in ascending order.
func (c *Coordinator) Selection() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectionLocked()
}

// OrderStatus queries the store for one order's authoritative status
// and refreshes the mirror on success.
func (c *Coordinator) OrderStatus(ctx context.Context, orderID int64) (model.OrderStatus, error) {
	status, err := c.gateway.FetchOrderStatus(ctx, orderID)
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	if order := c.findLocked(orderID); order != nil {
		order.Status = status
	}
	c.mu.Unlock()
	return status, nil
}

// SetStatus issues a status update to the order store. On success the
// local mirror follows; a terminal status additionally migrates the
// order to history. A failed update leaves the mirror untouched and
// surfaces a retryable error; no automatic retry is performed.
func (c *Coordinator) SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*StatusUpdateResult, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrUnknownStatus
	}

	c.mu.Lock()
	if c.findLocked(orderID) == nil {
		c.mu.Unlock()
		return nil, domainErrors.ErrOrderNotFound
	}
	c.mu.Unlock()

	if err := c.gateway.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if order := c.findLocked(orderID); order != nil {
		order.Status = status
	}
	c.mu.Unlock()

	result := &StatusUpdateResult{Status: status}
	if !status.Terminal() {
		return result, nil
	}

	if err := c.MigrateToHistory(ctx, orderID, status); err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyCompleted) {
			result.AlreadyCompleted = true
			return result, nil
		}
		// Status update went through but the history append did not;
		// the order stays active with its updated mirror.
		result.Warning = err.Error()
		c.logger.Warn("history migration failed after status update",
			slog.Int64("order_id", orderID),
			slog.String("error", err.Error()),
		)
		return result, nil
	}
	result.Migrated = true
	return result, nil
}

// MigrateToHistory appends a finalized order to the store's history and
// removes it from the working set. Repeating the call for an order
// already in Completed-Locally is a no-op reported as ErrAlreadyCompleted.
func (c *Coordinator) MigrateToHistory(ctx context.Context, orderID int64, status model.OrderStatus) error {
	c.mu.Lock()
	if _, done := c.finalized[orderID]; done {
		c.mu.Unlock()
		return domainErrors.ErrAlreadyCompleted
	}
	c.mu.Unlock()

	if err := c.gateway.AppendOrderHistory(ctx, []int64{orderID}, status); err != nil {
		return err
	}

	c.mu.Lock()
	c.removeActiveLocked(orderID)
	delete(c.selection, orderID)
	c.finalized[orderID] = struct{}{}
	c.mu.Unlock()

	// The persisted cache is best effort; losing a write only weakens
	// the double-submission guard until the next successful one.
	if err := c.completed.Add(ctx, string(status), orderID); err != nil {
		c.logger.Warn("persisting completed order failed",
			slog.Int64("order_id", orderID),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// BatchComplete finalizes every selected order: each order gets a
// status update (Cancelled stays Cancelled, everything else becomes
// Completed) followed by a history migration, independently of the
// others. Succeeded ids leave the selection; failed ids stay selected
// for retry. The authoritative order list is re-fetched afterwards.
//
// confirmed must be true for any side effect to happen; the
// empty-selection and already-finalized validations run first so a
// declined confirmation still reports caller misuse.
func (c *Coordinator) BatchComplete(ctx context.Context, confirmed bool) (*model.BatchReport, error) {
	c.mu.Lock()
	if len(c.selection) == 0 {
		c.mu.Unlock()
		return nil, domainErrors.ErrEmptySelection
	}

	var offenders []int64
	for id := range c.selection {
		if _, done := c.finalized[id]; done {
			offenders = append(offenders, id)
		}
	}
	if len(offenders) > 0 {
		// Prune the finalized ids so the operator can retry with the rest.
		for _, id := range offenders {
			delete(c.selection, id)
		}
		c.mu.Unlock()
		sort.Slice(offenders, func(i, j int) bool { return offenders[i] < offenders[j] })
		return nil, domainErrors.AlreadyCompletedError{OrderIDs: offenders}
	}

	if !confirmed {
		c.mu.Unlock()
		return nil, domainErrors.ErrNotConfirmed
	}

	ids := c.selectionLocked()
	statuses := make(map[int64]model.OrderStatus, len(ids))
	for _, id := range ids {
		if order := c.findLocked(id); order != nil {
			statuses[id] = order.Status
		}
	}
	c.mu.Unlock()

	results := c.runner.Run(ctx, ids, func(ctx context.Context, id int64) error {
		finalStatus := model.OrderStatusCompleted
		if statuses[id] == model.OrderStatusCancelled {
			finalStatus = model.OrderStatusCancelled
		}

		if err := c.gateway.UpdateOrderStatus(ctx, id, finalStatus); err != nil {
			return err
		}
		c.mu.Lock()
		if order := c.findLocked(id); order != nil {
			order.Status = finalStatus
		}
		c.mu.Unlock()

		return c.MigrateToHistory(ctx, id, finalStatus)
	})

	report := &model.BatchReport{}
	for _, res := range results {
		if res.Err != nil {
			report.Failed = append(report.Failed, model.BatchFailure{OrderID: res.OrderID, Reason: res.Err.Error()})
			continue
		}
		report.Succeeded = append(report.Succeeded, res.OrderID)
	}

	if report.AllFailed() {
		return report, domainErrors.ErrBatchFailed
	}

	// The mirror is not trusted after a batch mutation.
	if err := c.Refresh(ctx); err != nil {
		return report, err
	}
	return report, nil
}

func (c *Coordinator) findLocked(orderID int64) *model.Order {
	for i := range c.active {
		if c.active[i].ID == orderID {
			return &c.active[i]
		}
	}
	return nil
}

func (c *Coordinator) removeActiveLocked(orderID int64) {
	for i := range c.active {
		if c.active[i].ID == orderID {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return
		}
	}
}

func (c *Coordinator) selectionLocked() []int64 {
	ids := make([]int64, 0, len(c.selection))
	for id := range c.selection {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
