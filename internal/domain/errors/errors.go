package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptySelection   = errors.New("selection is empty")
	ErrAlreadyCompleted = errors.New("order already completed")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUnknownStatus    = errors.New("unknown order status")
	ErrNotConfirmed     = errors.New("batch completion not confirmed")
	ErrBatchFailed      = errors.New("no orders in batch completed")
)

// AlreadyCompletedError rejects a batch whose selection contains
// already-finalized orders, naming the offending ids.
type AlreadyCompletedError struct {
	OrderIDs []int64
}

func (e AlreadyCompletedError) Error() string {
	ids := make([]string, 0, len(e.OrderIDs))
	for _, id := range e.OrderIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	return fmt.Sprintf("orders already completed: %s", strings.Join(ids, ", "))
}

func (e AlreadyCompletedError) Unwrap() error {
	return ErrAlreadyCompleted
}

// StoreError reports a failed order store call. The message is the
// store's own, passed verbatim; the caller may reissue the request.
type StoreError struct {
	Op      string
	Message string
}

func (e StoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
