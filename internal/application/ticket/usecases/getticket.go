package usecases

import (
	"context"

	"revu/internal/application/ticket/dto"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	ActorID  uint
}

// GetTicketUseCase returns a ticket owned by the actor, used to prefill
// the edit form.
type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	t, err := uc.ticketRepo.FindByIDAndOwner(ctx, query.TicketID, query.ActorID)
	if err != nil {
		return nil, err
	}

	return dto.FromDomain(t), nil
}
