package usecases

import (
	"context"
	"time"

	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type CreateTicketWithReviewCommand struct {
	TicketTitle       string
	TicketDescription string
	TicketImage       string
	Rating            int
	Headline          string
	Body              string
	ActorID           uint
}

type CreateTicketWithReviewResult struct {
	TicketID  uint
	ReviewID  uint
	CreatedAt time.Time
}

// CreateTicketWithReviewUseCase creates a ticket and its first review in a
// single transaction. If either part fails nothing is persisted, so a bad
// review never leaves an orphan ticket behind.
type CreateTicketWithReviewUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewCreateTicketWithReviewUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *CreateTicketWithReviewUseCase {
	return &CreateTicketWithReviewUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		txRunner:   txRunner,
		logger:     logger,
	}
}

func (uc *CreateTicketWithReviewUseCase) Execute(ctx context.Context, cmd CreateTicketWithReviewCommand) (*CreateTicketWithReviewResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	newTicket, err := ticket.NewTicket(cmd.TicketTitle, cmd.TicketDescription, cmd.TicketImage, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Validate the review fields up front with a placeholder ticket ID so
	// we never open a transaction for input that cannot succeed.
	if _, err := review.NewReview(1, cmd.Rating, cmd.Headline, cmd.Body, cmd.ActorID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var newReview *review.Review
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		newReview, err = review.NewReview(newTicket.ID(), cmd.Rating, cmd.Headline, cmd.Body, cmd.ActorID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.reviewRepo.Save(txCtx, newReview)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to create ticket with review", "error", err, "actor_id", cmd.ActorID)
		}
		return nil, err
	}

	uc.logger.Infow("ticket and review created",
		"ticket_id", newTicket.ID(),
		"review_id", newReview.ID(),
		"owner_id", cmd.ActorID,
	)

	return &CreateTicketWithReviewResult{
		TicketID:  newTicket.ID(),
		ReviewID:  newReview.ID(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
