package usecase

import (
	"context"

	"growth-archive-backend/internal/notification/domain"
	"growth-archive-backend/internal/store"
	"growth-archive-backend/pkg/apperror"
	"growth-archive-backend/pkg/fcm"
)

var ErrNotificationNotFound = apperror.NotFound("notification not found")

// Pusher sends a push message to device tokens and reports the tokens the
// provider rejected. *fcm.Client satisfies it.
type Pusher interface {
	SendToDevices(ctx context.Context, tokens []string, notification fcm.NotificationData) ([]string, error)
}

// NotificationUsecase defines the interface for notification business logic
type NotificationUsecase interface {
	List(ctx context.Context, userID string) ([]*domain.Notification, error)

	// Notify writes an unread notification through tx, so it commits or
	// rolls back with the caller's other writes.
	Notify(ctx context.Context, tx store.Manager, userID string, t domain.Type, title, description string) (*domain.Notification, error)

	// Push sends device copies of already committed notifications. Failures
	// are logged, never returned.
	Push(ctx context.Context, notifications ...*domain.Notification)

	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	RegisterDevice(ctx context.Context, userID, token, deviceInfo string) error
	UnregisterDevice(ctx context.Context, userID, token string) error
}
