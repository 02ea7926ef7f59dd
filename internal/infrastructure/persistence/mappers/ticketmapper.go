package mappers

import (
	"time"

	"revu/internal/domain/ticket"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/mapper"
)

// TicketMapper handles the conversion between domain entities and persistence models.
type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		model.Image,
		model.OwnerID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}

	return &models.TicketModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Image:       entity.Image(),
		OwnerID:     entity.OwnerID(),
		CreatedAt:   entity.CreatedAt().UnixMilli(),
		UpdatedAt:   entity.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToEntities(ms []*models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSlicePtrWithID(ms, m.ToEntity,
		func(model *models.TicketModel) uint { return model.ID })
}
