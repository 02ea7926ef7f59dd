package usecases

import (
	"context"
	"time"

	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Image       string
	ActorID     uint
}

type CreateTicketResult struct {
	TicketID  uint
	Title     string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.Image, cmd.ActorID)
	if err != nil {
		uc.logger.Warnw("invalid ticket fields", "error", err, "actor_id", cmd.ActorID)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "owner_id", cmd.ActorID)

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Title:     newTicket.Title(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
