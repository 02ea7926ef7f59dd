package usecases

import (
	"context"

	"revu/internal/application/review/dto"
	"revu/internal/domain/review"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type GetReviewQuery struct {
	ReviewID uint
	ActorID  uint
}

// GetReviewUseCase fetches a review owned by the actor, used to prefill
// the edit form.
type GetReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewGetReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *GetReviewUseCase {
	return &GetReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *GetReviewUseCase) Execute(ctx context.Context, query GetReviewQuery) (*dto.ReviewDTO, error) {
	if query.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	r, err := uc.reviewRepo.FindByIDAndOwner(ctx, query.ReviewID, query.ActorID)
	if err != nil {
		return nil, err
	}

	return dto.FromDomain(r), nil
}
