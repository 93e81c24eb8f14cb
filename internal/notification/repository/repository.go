package repository

import (
	"context"

	"growth-archive-backend/internal/notification/domain"
)

// NotificationRepository defines data access for the notification inbox.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	FindByUserID(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, userID, id string) (int64, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

// DeviceTokenRepository defines the interface for FCM token operations
type DeviceTokenRepository interface {
	Save(ctx context.Context, userID, token, deviceInfo string) error
	FindByUserID(ctx context.Context, userID string) ([]domain.DeviceToken, error)
	// Delete removes a token regardless of owner; used to drop tokens FCM rejected.
	Delete(ctx context.Context, token string) error
	DeleteForUser(ctx context.Context, userID, token string) (int64, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
