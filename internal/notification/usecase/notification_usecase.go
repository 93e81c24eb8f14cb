package usecase

import (
	"context"
	"fmt"
	"time"

	"growth-archive-backend/internal/notification/domain"
	"growth-archive-backend/internal/store"
	"growth-archive-backend/pkg/apperror"
	"growth-archive-backend/pkg/fcm"
	"growth-archive-backend/pkg/logging"
	"growth-archive-backend/pkg/metrics"
)

const pushTimeout = 5 * time.Second

type notificationUsecase struct {
	store  store.Manager
	pusher Pusher
	logger logging.Logger
}

// NewNotificationUsecase wires the inbox. pusher may be nil, in which case
// notifications are only stored.
func NewNotificationUsecase(m store.Manager, pusher Pusher, logger logging.Logger) NotificationUsecase {
	return &notificationUsecase{
		store:  m,
		pusher: pusher,
		logger: logger.With("component", "notification"),
	}
}

func (u *notificationUsecase) List(ctx context.Context, userID string) ([]*domain.Notification, error) {
	notifications, err := u.store.Notifications().FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("list notifications", err)
	}
	return notifications, nil
}

func (u *notificationUsecase) Notify(ctx context.Context, tx store.Manager, userID string, t domain.Type, title, description string) (*domain.Notification, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown notification type %q", t)
	}
	n := &domain.Notification{
		UserID:      userID,
		Type:        t,
		Title:       title,
		Description: description,
		Read:        false,
	}
	if err := tx.Notifications().Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (u *notificationUsecase) Push(ctx context.Context, notifications ...*domain.Notification) {
	for _, n := range notifications {
		metrics.NotificationsDispatched.WithLabelValues(string(n.Type)).Inc()
	}
	if u.pusher == nil {
		return
	}

	tokensByUser := map[string][]string{}
	for _, n := range notifications {
		if _, seen := tokensByUser[n.UserID]; seen {
			continue
		}
		devices, err := u.store.DeviceTokens().FindByUserID(ctx, n.UserID)
		if err != nil {
			u.logger.Warn(ctx, "load device tokens failed", "user_id", n.UserID, "error", err)
			devices = nil
		}
		tokens := make([]string, 0, len(devices))
		for _, d := range devices {
			tokens = append(tokens, d.Token)
		}
		tokensByUser[n.UserID] = tokens
	}

	for _, n := range notifications {
		tokens := tokensByUser[n.UserID]
		if len(tokens) == 0 {
			continue
		}
		u.send(ctx, n, tokens)
	}
}

func (u *notificationUsecase) send(ctx context.Context, n *domain.Notification, tokens []string) {
	ctx, cancel := context.WithTimeout(ctx, pushTimeout)
	defer cancel()

	failed, err := u.pusher.SendToDevices(ctx, tokens, fcm.NotificationData{
		Title: n.Title,
		Body:  n.Description,
		Data: map[string]string{
			"notification_id": n.ID,
			"type":            string(n.Type),
		},
	})
	if err != nil {
		u.logger.Warn(ctx, "push failed", "user_id", n.UserID, "notification_id", n.ID, "error", err)
		return
	}

	// Tokens FCM rejected are stale; forget them.
	for _, token := range failed {
		if err := u.store.DeviceTokens().Delete(ctx, token); err != nil {
			u.logger.Warn(ctx, "remove stale device token failed", "user_id", n.UserID, "error", err)
		}
	}
}

func (u *notificationUsecase) MarkRead(ctx context.Context, userID, id string) error {
	n, err := u.store.Notifications().MarkRead(ctx, userID, id)
	if err != nil {
		return apperror.Internal("mark notification read", err)
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	n, err := u.store.Notifications().MarkAllRead(ctx, userID)
	if err != nil {
		return 0, apperror.Internal("mark all notifications read", err)
	}
	return n, nil
}

func (u *notificationUsecase) RegisterDevice(ctx context.Context, userID, token, deviceInfo string) error {
	if err := u.store.DeviceTokens().Save(ctx, userID, token, deviceInfo); err != nil {
		return apperror.Internal("save device token", err)
	}
	u.logger.Info(ctx, "device registered", "user_id", userID)
	return nil
}

func (u *notificationUsecase) UnregisterDevice(ctx context.Context, userID, token string) error {
	if _, err := u.store.DeviceTokens().DeleteForUser(ctx, userID, token); err != nil {
		return apperror.Internal("delete device token", err)
	}
	return nil
}
