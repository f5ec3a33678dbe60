package errors

import (
	"errors"
	"testing"
)

func TestAlreadyCompletedErrorUnwrapsToSentinel(t *testing.T) {
	err := AlreadyCompletedError{OrderIDs: []int64{4, 9}}
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatal("expected errors.Is to match the sentinel")
	}
	if got := err.Error(); got != "orders already completed: 4, 9" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestStoreErrorMessage(t *testing.T) {
	err := StoreError{Op: "fetch orders", Message: "database connection lost"}
	if got := err.Error(); got != "fetch orders: database connection lost" {
		t.Fatalf("unexpected message %q", got)
	}
}
