package usecase

import (
	"context"

	"github.com/yappari/coffeebar-admin/internal/domain/model"
)

// FeedbackGateway describes the order store's feedback feed.
type FeedbackGateway interface {
	FetchFeedback(ctx context.Context) ([]model.Feedback, error)
}

// FeedbackUseCase serves the read-only customer feedback view.
type FeedbackUseCase struct {
	gateway FeedbackGateway
}

// NewFeedbackUseCase constructs FeedbackUseCase.
func NewFeedbackUseCase(gateway FeedbackGateway) *FeedbackUseCase {
	return &FeedbackUseCase{gateway: gateway}
}

// List returns customer feedback entries.
func (u *FeedbackUseCase) List(ctx context.Context) ([]model.Feedback, error) {
	return u.gateway.FetchFeedback(ctx)
}
