package usecases

import (
	"context"
	"time"

	"revu/internal/domain/review"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type UpdateReviewCommand struct {
	ReviewID uint
	ActorID  uint
	Rating   int
	Headline string
	Body     string
}

type UpdateReviewResult struct {
	ReviewID  uint
	Rating    int
	UpdatedAt time.Time
}

// UpdateReviewUseCase edits a review owned by the actor. The lookup is
// owner-scoped, so editing someone else's review fails the same way as
// editing a nonexistent one.
type UpdateReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewUpdateReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *UpdateReviewUseCase) Execute(ctx context.Context, cmd UpdateReviewCommand) (*UpdateReviewResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	r, err := uc.reviewRepo.FindByIDAndOwner(ctx, cmd.ReviewID, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	if err := r.UpdateDetails(cmd.Rating, cmd.Headline, cmd.Body); err != nil {
		uc.logger.Warnw("invalid review fields", "error", err, "review_id", cmd.ReviewID)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update review", "error", err, "review_id", cmd.ReviewID)
		return nil, err
	}

	uc.logger.Infow("review updated", "review_id", r.ID(), "owner_id", cmd.ActorID)

	return &UpdateReviewResult{
		ReviewID:  r.ID(),
		Rating:    r.Rating(),
		UpdatedAt: r.UpdatedAt(),
	}, nil
}
