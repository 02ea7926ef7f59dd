package usecases

import (
	"context"

	"revu/internal/application/review/dto"
)

// TransactionRunner runs a function inside a database transaction.
// Implemented by the shared db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateReviewExecutor interface {
	Execute(ctx context.Context, cmd CreateReviewCommand) (*CreateReviewResult, error)
}

type UpdateReviewExecutor interface {
	Execute(ctx context.Context, cmd UpdateReviewCommand) (*UpdateReviewResult, error)
}

type DeleteReviewExecutor interface {
	Execute(ctx context.Context, cmd DeleteReviewCommand) (*DeleteReviewResult, error)
}

type GetReviewExecutor interface {
	Execute(ctx context.Context, query GetReviewQuery) (*dto.ReviewDTO, error)
}

type CreateTicketWithReviewExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketWithReviewCommand) (*CreateTicketWithReviewResult, error)
}
