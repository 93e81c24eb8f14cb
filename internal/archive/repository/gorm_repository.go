package repository

import (
	"context"
	"errors"
	"time"

	"growth-archive-backend/internal/archive/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormArchiveRepository implements ArchiveRepository using GORM
type gormArchiveRepository struct {
	db *gorm.DB
}

// NewGormArchiveRepository creates a new GORM-based ArchiveRepository
func NewGormArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &gormArchiveRepository{db: db}
}

func (r *gormArchiveRepository) Create(ctx context.Context, archive *domain.Archive) error {
	if archive.ID == "" {
		archive.ID = uuid.New().String()
	}
	archive.CreatedAt = time.Now()
	archive.UpdatedAt = archive.CreatedAt
	return r.db.WithContext(ctx).Create(archive).Error
}

func (r *gormArchiveRepository) FindByID(ctx context.Context, userID, id string) (*domain.Archive, error) {
	var archive domain.Archive
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&archive).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &archive, nil
}

func (r *gormArchiveRepository) FindByUserID(ctx context.Context, userID, category string) ([]*domain.Archive, error) {
	archives := []*domain.Archive{}

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Order("created_at DESC").Find(&archives).Error; err != nil {
		return nil, err
	}
	return archives, nil
}

func (r *gormArchiveRepository) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (int64, error) {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&domain.Archive{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *gormArchiveRepository) Delete(ctx context.Context, userID, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Archive{})
	return result.RowsAffected, result.Error
}

func (r *gormArchiveRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Archive{}).Error
}
