package repository

import (
	"context"
	"time"

	"growth-archive-backend/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceTokenRepository implements DeviceTokenRepository interface
type deviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository creates a new instance of deviceTokenRepository
func NewDeviceTokenRepository(db *gorm.DB) DeviceTokenRepository {
	return &deviceTokenRepository{
		db: db,
	}
}

// Save saves or updates an FCM token for a user (atomic upsert)
func (r *deviceTokenRepository) Save(ctx context.Context, userID, token, deviceInfo string) error {
	deviceToken := &domain.DeviceToken{
		ID:         uuid.New().String(),
		UserID:     userID,
		Token:      token,
		DeviceInfo: deviceInfo,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	// INSERT ... ON CONFLICT (token) DO UPDATE: a device that changes hands
	// follows its latest owner.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "device_info", "updated_at"}),
	}).Create(deviceToken).Error
}

// FindByUserID returns all FCM tokens for a user
func (r *deviceTokenRepository) FindByUserID(ctx context.Context, userID string) ([]domain.DeviceToken, error) {
	var tokens []domain.DeviceToken
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *deviceTokenRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&domain.DeviceToken{}).Error
}

func (r *deviceTokenRepository) DeleteForUser(ctx context.Context, userID, token string) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ? AND token = ?", userID, token).Delete(&domain.DeviceToken{})
	return result.RowsAffected, result.Error
}

// DeleteByUserID removes all FCM tokens for a user
func (r *deviceTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.DeviceToken{}).Error
}
