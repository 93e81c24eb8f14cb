package usecase

import (
	"context"

	"growth-archive-backend/internal/archive/domain"
	"growth-archive-backend/internal/archive/dto"
	notifdomain "growth-archive-backend/internal/notification/domain"
	"growth-archive-backend/internal/store"
	"growth-archive-backend/pkg/apperror"
)

var ErrArchiveNotFound = apperror.NotFound("档案不存在")

// Notifier writes inbox notifications inside a transaction and pushes
// device copies once it has committed.
type Notifier interface {
	Notify(ctx context.Context, tx store.Manager, userID string, t notifdomain.Type, title, description string) (*notifdomain.Notification, error)
	Push(ctx context.Context, notifications ...*notifdomain.Notification)
}

// ArchiveUsecase defines the interface for archive business logic. Every
// method is scoped to the owner; another user's archive looks absent.
type ArchiveUsecase interface {
	List(ctx context.Context, userID, category string) ([]*domain.Archive, error)
	Get(ctx context.Context, userID, id string) (*domain.Archive, error)
	// Create stores a pending archive and runs the approval gate. The
	// returned archive carries the final status.
	Create(ctx context.Context, userID string, req *dto.CreateArchiveRequest) (*domain.Archive, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateArchiveRequest) (*domain.Archive, error)
	Delete(ctx context.Context, userID, id string) error
}
