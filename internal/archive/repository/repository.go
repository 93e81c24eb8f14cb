package repository

import (
	"context"

	"growth-archive-backend/internal/archive/domain"
)

// ArchiveRepository defines the interface for archive data access.
// Every method is scoped by the owner's user id.
type ArchiveRepository interface {
	// Create inserts a new archive
	Create(ctx context.Context, archive *domain.Archive) error

	// FindByID returns the owner's archive, or nil if there is none
	FindByID(ctx context.Context, userID, id string) (*domain.Archive, error)

	// FindByUserID lists the owner's archives, newest first. An empty
	// category means no filter.
	FindByUserID(ctx context.Context, userID, category string) ([]*domain.Archive, error)

	// Update applies only the given columns and reports the rows affected
	Update(ctx context.Context, userID, id string, fields map[string]interface{}) (int64, error)

	// Delete removes one archive and reports the rows affected
	Delete(ctx context.Context, userID, id string) (int64, error)

	// DeleteByUserID removes every archive the user owns
	DeleteByUserID(ctx context.Context, userID string) error
}
