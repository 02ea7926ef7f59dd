package mappers

import (
	"time"

	"revu/internal/domain/user"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/mapper"
)

// UserMapper handles the conversion between domain entities and persistence models.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.Email,
		model.PasswordHash,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		CreatedAt:    entity.CreatedAt().UnixMilli(),
		UpdatedAt:    entity.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToEntities(ms []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSlicePtrWithID(ms, m.ToEntity,
		func(model *models.UserModel) uint { return model.ID })
}
