package mappers

import (
	"time"

	"revu/internal/domain/follow"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/mapper"
)

// FollowMapper handles the conversion between domain entities and persistence models.
type FollowMapper interface {
	ToEntity(model *models.UserFollowModel) (*follow.Edge, error)
	ToModel(entity *follow.Edge) *models.UserFollowModel
	ToEntities(models []*models.UserFollowModel) ([]*follow.Edge, error)
}

type FollowMapperImpl struct{}

func NewFollowMapper() FollowMapper {
	return &FollowMapperImpl{}
}

func (m *FollowMapperImpl) ToEntity(model *models.UserFollowModel) (*follow.Edge, error) {
	if model == nil {
		return nil, nil
	}

	return follow.ReconstructEdge(
		model.ID,
		model.FollowerID,
		model.FolloweeID,
		time.UnixMilli(model.CreatedAt),
	)
}

func (m *FollowMapperImpl) ToModel(entity *follow.Edge) *models.UserFollowModel {
	if entity == nil {
		return nil
	}

	return &models.UserFollowModel{
		ID:         entity.ID(),
		FollowerID: entity.FollowerID(),
		FolloweeID: entity.FolloweeID(),
		CreatedAt:  entity.CreatedAt().UnixMilli(),
	}
}

func (m *FollowMapperImpl) ToEntities(ms []*models.UserFollowModel) ([]*follow.Edge, error) {
	return mapper.MapSlicePtrWithID(ms, m.ToEntity,
		func(model *models.UserFollowModel) uint { return model.ID })
}
