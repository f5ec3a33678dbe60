package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewRunnerNormalizesPoolSize(t *testing.T) {
	if r := NewRunner(0, discardLogger()); r.workers != 1 {
		t.Fatalf("expected pool of 1, got %d", r.workers)
	}
	if r := NewRunner(-3, discardLogger()); r.workers != 1 {
		t.Fatalf("expected pool of 1, got %d", r.workers)
	}
	if r := NewRunner(8, discardLogger()); r.workers != 8 {
		t.Fatalf("expected pool of 8, got %d", r.workers)
	}
}

func TestRunEmptyInput(t *testing.T) {
	r := NewRunner(2, discardLogger())
	results := r.Run(context.Background(), nil, func(context.Context, int64) error {
		t.Fatal("fn must not be called for empty input")
		return nil
	})
	if len(results) != 0 {
		t.Fatalf("expected no results, got %+v", results)
	}
}

func TestRunProcessesEveryID(t *testing.T) {
	r := NewRunner(3, discardLogger())
	var mu sync.Mutex
	seen := make(map[int64]int)

	ids := []int64{5, 1, 9, 3, 7}
	results := r.Run(context.Background(), ids, func(_ context.Context, id int64) error {
		mu.Lock()
		seen[id]++
		mu.Unlock()
		return nil
	})

	if len(results) != len(ids) {
		t.Fatalf("expected %d results, got %d", len(ids), len(results))
	}
	for _, id := range ids {
		if seen[id] != 1 {
			t.Fatalf("expected id %d processed exactly once, got %d", id, seen[id])
		}
	}
}

func TestRunResultsSortedByOrderID(t *testing.T) {
	r := NewRunner(4, discardLogger())
	results := r.Run(context.Background(), []int64{30, 10, 20}, func(context.Context, int64) error {
		return nil
	})

	want := []int64{10, 20, 30}
	for i, id := range want {
		if results[i].OrderID != id {
			t.Fatalf("expected id %d at position %d, got %d", id, i, results[i].OrderID)
		}
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	r := NewRunner(2, discardLogger())
	wantErr := errors.New("update rejected")

	results := r.Run(context.Background(), []int64{1, 2, 3}, func(_ context.Context, id int64) error {
		if id == 2 {
			return wantErr
		}
		return nil
	})

	for _, res := range results {
		if res.OrderID == 2 {
			if !errors.Is(res.Err, wantErr) {
				t.Fatalf("expected failure for id 2, got %v", res.Err)
			}
			continue
		}
		if res.Err != nil {
			t.Fatalf("expected id %d to succeed, got %v", res.OrderID, res.Err)
		}
	}
}

func TestRunCancelledContextFailsRemainingJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(1, discardLogger())
	results := r.Run(ctx, []int64{1, 2}, func(context.Context, int64) error {
		t.Fatal("fn must not run after cancellation")
		return nil
	})

	for _, res := range results {
		if !errors.Is(res.Err, context.Canceled) {
			t.Fatalf("expected context error for id %d, got %v", res.OrderID, res.Err)
		}
	}
}
