package worker

import (
	"context"
	"log/slog"
	"sort"
	"sync"
)

// Result reports the outcome of one order's completion steps.
type Result struct {
	OrderID int64
	Err     error
}

// Runner executes per-order jobs over a bounded worker pool. Jobs are
// independent; one order's failure never blocks or rolls back another's
// success.
type Runner struct {
	workers int
	logger  *slog.Logger
}

// NewRunner constructs a batch runner with the given pool size.
func NewRunner(workers int, logger *slog.Logger) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{workers: workers, logger: logger}
}

// Run applies fn to every order id and collects per-id results, ordered
// by id for deterministic reporting. A cancelled context fails the
// remaining jobs with the context's error.
func (r *Runner) Run(ctx context.Context, orderIDs []int64, fn func(context.Context, int64) error) []Result {
	if len(orderIDs) == 0 {
		return nil
	}

	workers := r.workers
	if workers > len(orderIDs) {
		workers = len(orderIDs)
	}

	jobs := make(chan int64, len(orderIDs))
	results := make(chan Result, len(orderIDs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				if err := ctx.Err(); err != nil {
					results <- Result{OrderID: id, Err: err}
					continue
				}
				err := fn(ctx, id)
				if err != nil {
					r.logger.Warn("batch job failed",
						slog.Int64("order_id", id),
						slog.String("error", err.Error()),
					)
				}
				results <- Result{OrderID: id, Err: err}
			}
		}()
	}

	for _, id := range orderIDs {
		jobs <- id
	}
	close(jobs)
	wg.Wait()
	close(results)

	collected := make([]Result, 0, len(orderIDs))
	for res := range results {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].OrderID < collected[j].OrderID })
	return collected
}
