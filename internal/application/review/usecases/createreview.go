package usecases

import (
	"context"
	"time"

	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type CreateReviewCommand struct {
	TicketID uint
	Rating   int
	Headline string
	Body     string
	ActorID  uint
}

type CreateReviewResult struct {
	ReviewID  uint
	TicketID  uint
	Rating    int
	CreatedAt time.Time
}

// CreateReviewUseCase creates a review against an existing ticket. A user
// may review each ticket at most once; the pre-check produces the friendly
// duplicate error and the unique index on (ticket_id, owner_id) closes the
// window between check and insert.
type CreateReviewUseCase struct {
	reviewRepo review.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateReviewUseCase(
	reviewRepo review.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo: reviewRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateReviewUseCase) Execute(ctx context.Context, cmd CreateReviewCommand) (*CreateReviewResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	if _, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	exists, err := uc.reviewRepo.ExistsByTicketAndOwner(ctx, cmd.TicketID, cmd.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to check for existing review", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if exists {
		return nil, errors.NewDuplicateError("you have already reviewed this ticket")
	}

	newReview, err := review.NewReview(cmd.TicketID, cmd.Rating, cmd.Headline, cmd.Body, cmd.ActorID)
	if err != nil {
		uc.logger.Warnw("invalid review fields", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Save(ctx, newReview); err != nil {
		if errors.IsDuplicateKeyError(err) {
			return nil, errors.NewDuplicateError("you have already reviewed this ticket")
		}
		uc.logger.Errorw("failed to save review", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("review created", "review_id", newReview.ID(), "ticket_id", cmd.TicketID, "owner_id", cmd.ActorID)

	return &CreateReviewResult{
		ReviewID:  newReview.ID(),
		TicketID:  newReview.TicketID(),
		Rating:    newReview.Rating(),
		CreatedAt: newReview.CreatedAt(),
	}, nil
}
