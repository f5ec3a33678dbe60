package model

// BatchFailure names one order that failed inside a batch completion
// and the order store's reason, passed verbatim.
type BatchFailure struct {
	OrderID int64
	Reason  string
}

// BatchReport aggregates the outcome of one batch completion. Partial
// success is expected; succeeded work is never discounted by failures.
type BatchReport struct {
	Succeeded []int64
	Failed    []BatchFailure
}

// AllFailed reports whether no order in the batch went through.
func (r *BatchReport) AllFailed() bool {
	return len(r.Succeeded) == 0 && len(r.Failed) > 0
}
