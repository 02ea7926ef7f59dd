package mappers

import (
	"time"

	"revu/internal/domain/review"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/mapper"
)

// ReviewMapper handles the conversion between domain entities and persistence models.
type ReviewMapper interface {
	ToEntity(model *models.ReviewModel) (*review.Review, error)
	ToModel(entity *review.Review) *models.ReviewModel
	ToEntities(models []*models.ReviewModel) ([]*review.Review, error)
}

type ReviewMapperImpl struct{}

func NewReviewMapper() ReviewMapper {
	return &ReviewMapperImpl{}
}

func (m *ReviewMapperImpl) ToEntity(model *models.ReviewModel) (*review.Review, error) {
	if model == nil {
		return nil, nil
	}

	return review.ReconstructReview(
		model.ID,
		model.TicketID,
		model.Rating,
		model.Headline,
		model.Body,
		model.OwnerID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *ReviewMapperImpl) ToModel(entity *review.Review) *models.ReviewModel {
	if entity == nil {
		return nil
	}

	return &models.ReviewModel{
		ID:        entity.ID(),
		TicketID:  entity.TicketID(),
		Rating:    entity.Rating(),
		Headline:  entity.Headline(),
		Body:      entity.Body(),
		OwnerID:   entity.OwnerID(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}
}

func (m *ReviewMapperImpl) ToEntities(ms []*models.ReviewModel) ([]*review.Review, error) {
	return mapper.MapSlicePtrWithID(ms, m.ToEntity,
		func(model *models.ReviewModel) uint { return model.ID })
}
