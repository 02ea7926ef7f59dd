package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"revu/internal/domain/review"
	"revu/internal/infrastructure/persistence/mappers"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/db"
	"revu/internal/shared/errors"
)

type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
}

func NewReviewRepository(gdb *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		db:     gdb,
		mapper: mappers.NewReviewMapper(),
	}
}

func (r *ReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}

	return rv.SetID(model.ID)
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"rating":   model.Rating,
			"headline": model.Headline,
			"body":     model.Body,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}

	return nil
}

// FindByIDAndOwner returns NotFound both for a missing review and for a
// review owned by someone else.
func (r *ReviewRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*review.Review, error) {
	var model models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ReviewRepository) FindByOwnerIDs(ctx context.Context, ownerIDs []uint) ([]*review.Review, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}

	var ms []*models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id IN ?", ownerIDs).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	return r.mapper.ToEntities(ms)
}

func (r *ReviewRepository) ExistsByTicketAndOwner(ctx context.Context, ticketID, ownerID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ReviewModel{}).
		Where("ticket_id = ? AND owner_id = ?", ticketID, ownerID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count reviews: %w", err)
	}

	return count > 0, nil
}

func (r *ReviewRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.ReviewModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("review not found")
	}

	return nil
}

// DeleteByTicketID removes every review of a ticket. Zero rows is fine;
// the ticket may simply have no reviews yet.
func (r *ReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.ReviewModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}

	return nil
}
