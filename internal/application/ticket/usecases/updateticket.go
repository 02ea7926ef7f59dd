package usecases

import (
	"context"
	"time"

	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	ActorID     uint
	Title       string
	Description string
	Image       string
}

type UpdateTicketResult struct {
	TicketID  uint
	Title     string
	UpdatedAt time.Time
}

// UpdateTicketUseCase edits a ticket owned by the actor. The lookup is
// owner-scoped, so editing someone else's ticket fails the same way as
// editing a nonexistent one.
type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	t, err := uc.ticketRepo.FindByIDAndOwner(ctx, cmd.TicketID, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	if err := t.UpdateDetails(cmd.Title, cmd.Description, cmd.Image); err != nil {
		uc.logger.Warnw("invalid ticket fields", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "owner_id", cmd.ActorID)

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		Title:     t.Title(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
