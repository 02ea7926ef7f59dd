package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"revu/internal/domain/follow"
	"revu/internal/infrastructure/persistence/mappers"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/db"
	"revu/internal/shared/errors"
)

type FollowRepository struct {
	db     *gorm.DB
	mapper mappers.FollowMapper
}

func NewFollowRepository(gdb *gorm.DB) *FollowRepository {
	return &FollowRepository{
		db:     gdb,
		mapper: mappers.NewFollowMapper(),
	}
}

func (r *FollowRepository) Save(ctx context.Context, e *follow.Edge) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save follow: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserFollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count follows: %w", err)
	}

	return count > 0, nil
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followeeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.UserFollowModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete follow: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("follow not found")
	}

	return nil
}

func (r *FollowRepository) FindByFollower(ctx context.Context, followerID uint) ([]*follow.Edge, error) {
	var ms []*models.UserFollowModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to find follows: %w", err)
	}

	return r.mapper.ToEntities(ms)
}

func (r *FollowRepository) FindByFollowee(ctx context.Context, followeeID uint) ([]*follow.Edge, error) {
	var ms []*models.UserFollowModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("followee_id = ?", followeeID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to find follows: %w", err)
	}

	return r.mapper.ToEntities(ms)
}

func (r *FollowRepository) FolloweeIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserFollowModel{}).
		Where("follower_id = ?", followerID).
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list followees: %w", err)
	}

	return ids, nil
}
