package repository

import (
	"context"
	"time"

	"growth-archive-backend/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *gormNotificationRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Notification, error) {
	notifications := []*domain.Notification{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *gormNotificationRepository) MarkRead(ctx context.Context, userID, id string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	return result.RowsAffected, result.Error
}

func (r *gormNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("user_id = ?", userID).
		Update("read", true)
	return result.RowsAffected, result.Error
}

func (r *gormNotificationRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Notification{}).Error
}
