package store

import (
	"context"

	archiverepo "growth-archive-backend/internal/archive/repository"
	authrepo "growth-archive-backend/internal/auth/repository"
	notifrepo "growth-archive-backend/internal/notification/repository"

	"gorm.io/gorm"
)

// GormManager is the Postgres-backed Manager.
type GormManager struct {
	db *gorm.DB
}

func NewGormManager(db *gorm.DB) *GormManager {
	return &GormManager{db: db}
}

func (m *GormManager) Users() authrepo.UserRepository {
	return authrepo.NewUserRepository(m.db)
}

func (m *GormManager) Archives() archiverepo.ArchiveRepository {
	return archiverepo.NewGormArchiveRepository(m.db)
}

func (m *GormManager) Notifications() notifrepo.NotificationRepository {
	return notifrepo.NewGormNotificationRepository(m.db)
}

func (m *GormManager) DeviceTokens() notifrepo.DeviceTokenRepository {
	return notifrepo.NewDeviceTokenRepository(m.db)
}

func (m *GormManager) Transaction(ctx context.Context, fn func(tx Manager) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormManager{db: tx})
	})
}
