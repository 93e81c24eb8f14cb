// Package store groups the repositories behind a single manager so that
// multi-table writes can share one transaction.
package store

import (
	"context"

	archiverepo "growth-archive-backend/internal/archive/repository"
	authrepo "growth-archive-backend/internal/auth/repository"
	notifrepo "growth-archive-backend/internal/notification/repository"
)

// Manager hands out repositories bound to one connection or transaction.
type Manager interface {
	Users() authrepo.UserRepository
	Archives() archiverepo.ArchiveRepository
	Notifications() notifrepo.NotificationRepository
	DeviceTokens() notifrepo.DeviceTokenRepository

	// Transaction runs fn with a manager whose repositories all write through
	// the same transaction. A non-nil error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Manager) error) error
}
