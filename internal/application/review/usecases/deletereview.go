package usecases

import (
	"context"

	"revu/internal/domain/review"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type DeleteReviewCommand struct {
	ReviewID uint
	ActorID  uint
}

type DeleteReviewResult struct {
	ReviewID uint
}

type DeleteReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewDeleteReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *DeleteReviewUseCase) Execute(ctx context.Context, cmd DeleteReviewCommand) (*DeleteReviewResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	if err := uc.reviewRepo.DeleteByIDAndOwner(ctx, cmd.ReviewID, cmd.ActorID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete review", "error", err, "review_id", cmd.ReviewID)
		}
		return nil, err
	}

	uc.logger.Infow("review deleted", "review_id", cmd.ReviewID, "owner_id", cmd.ActorID)

	return &DeleteReviewResult{ReviewID: cmd.ReviewID}, nil
}
