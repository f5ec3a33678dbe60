package test

import (
	"context"
	"sync"
)

// CompletedRepoStub is an in-memory CompletedOrderRepository.
type CompletedRepoStub struct {
	LoadFn func(context.Context) ([]int64, error)
	AddFn  func(context.Context, string, ...int64) error

	mu    sync.Mutex
	Added []int64
}

// Load returns the configured ids or nothing.
func (s *CompletedRepoStub) Load(ctx context.Context) ([]int64, error) {
	if s.LoadFn != nil {
		return s.LoadFn(ctx)
	}
	return nil, nil
}

// Add records ids unless an override is configured.
func (s *CompletedRepoStub) Add(ctx context.Context, status string, orderIDs ...int64) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, status, orderIDs...)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Added = append(s.Added, orderIDs...)
	return nil
}

// AddedIDs returns a copy of the recorded ids.
func (s *CompletedRepoStub) AddedIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.Added...)
}
