package usecases

import (
	"context"

	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	ActorID  uint
}

type DeleteTicketResult struct {
	TicketID uint
}

// DeleteTicketUseCase removes a ticket owned by the actor together with
// every review referencing it, in one transaction.
type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		txRunner:   txRunner,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		// The owner-scoped delete doubles as the ownership check.
		if err := uc.ticketRepo.DeleteByIDAndOwner(txCtx, cmd.TicketID, cmd.ActorID); err != nil {
			return err
		}
		return uc.reviewRepo.DeleteByTicketID(txCtx, cmd.TicketID)
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		}
		return nil, err
	}

	uc.logger.Infow("ticket deleted with its reviews", "ticket_id", cmd.TicketID, "owner_id", cmd.ActorID)

	return &DeleteTicketResult{TicketID: cmd.TicketID}, nil
}
