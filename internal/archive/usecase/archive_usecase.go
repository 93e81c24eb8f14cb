package usecase

import (
	"context"
	"fmt"
	"time"

	"growth-archive-backend/internal/archive/domain"
	"growth-archive-backend/internal/archive/dto"
	notifdomain "growth-archive-backend/internal/notification/domain"
	"growth-archive-backend/internal/store"
	"growth-archive-backend/pkg/apperror"
	"growth-archive-backend/pkg/events"
	"growth-archive-backend/pkg/logging"
	"growth-archive-backend/pkg/metrics"
)

type archiveUsecase struct {
	store     store.Manager
	notifier  Notifier
	approver  Approver
	publisher events.Publisher
	logger    logging.Logger
	now       func() time.Time
}

// NewArchiveUsecase creates a new instance of archiveUsecase
func NewArchiveUsecase(m store.Manager, notifier Notifier, approver Approver, publisher events.Publisher, logger logging.Logger) ArchiveUsecase {
	return &archiveUsecase{
		store:     m,
		notifier:  notifier,
		approver:  approver,
		publisher: publisher,
		logger:    logger.With("component", "archive"),
		now:       time.Now,
	}
}

func (u *archiveUsecase) List(ctx context.Context, userID, category string) ([]*domain.Archive, error) {
	archives, err := u.store.Archives().FindByUserID(ctx, userID, category)
	if err != nil {
		return nil, apperror.Internal("list archives", err)
	}
	return archives, nil
}

func (u *archiveUsecase) Get(ctx context.Context, userID, id string) (*domain.Archive, error) {
	archive, err := u.store.Archives().FindByID(ctx, userID, id)
	if err != nil {
		return nil, apperror.Internal("get archive", err)
	}
	if archive == nil {
		return nil, ErrArchiveNotFound
	}
	return archive, nil
}

func (u *archiveUsecase) Create(ctx context.Context, userID string, req *dto.CreateArchiveRequest) (*domain.Archive, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	archive := &domain.Archive{
		UserID:       userID,
		Title:        req.Title,
		Category:     req.Category,
		Organization: req.Organization,
		Date:         req.Date,
		Status:       domain.StatusPending,
		ImageURL:     req.ImageURL,
		Description:  req.Description,
	}
	if archive.Organization == "" {
		archive.Organization = domain.DefaultOrganization
	}
	if archive.Date == "" {
		archive.Date = u.now().Format(domain.DateLayout)
	}

	approved := u.approver.Approve()

	var created []*notifdomain.Notification
	err := u.store.Transaction(ctx, func(tx store.Manager) error {
		created = created[:0]

		if err := tx.Archives().Create(ctx, archive); err != nil {
			return err
		}

		n, err := u.notifier.Notify(ctx, tx, userID, notifdomain.TypeStatus,
			"申请提交成功",
			fmt.Sprintf(`您的"%s"档案申请已提交，系统正在进行自动审核。`, archive.Title))
		if err != nil {
			return err
		}
		created = append(created, n)

		if !approved {
			return nil
		}

		if _, err := tx.Archives().Update(ctx, userID, archive.ID, map[string]interface{}{
			"status": string(domain.StatusApproved),
		}); err != nil {
			return err
		}
		archive.Status = domain.StatusApproved

		n, err = u.notifier.Notify(ctx, tx, userID, notifdomain.TypeCertificate,
			"审核通过",
			fmt.Sprintf(`恭喜！您的"%s"已通过审核并正式归档。`, archive.Title))
		if err != nil {
			return err
		}
		created = append(created, n)
		return nil
	})
	if err != nil {
		return nil, apperror.Internal("create archive", err)
	}

	metrics.ArchivesSubmitted.Inc()
	u.publish(ctx, events.TypeArchiveSubmitted, archive)
	if approved {
		metrics.ArchivesAutoApproved.Inc()
		u.publish(ctx, events.TypeArchiveApproved, archive)
	}
	u.notifier.Push(ctx, created...)

	u.logger.Info(ctx, "archive created", "user_id", userID, "archive_id", archive.ID, "status", archive.Status)
	return archive, nil
}

func (u *archiveUsecase) Update(ctx context.Context, userID, id string, req *dto.UpdateArchiveRequest) (*domain.Archive, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	n, err := u.store.Archives().Update(ctx, userID, id, req.Fields())
	if err != nil {
		return nil, apperror.Internal("update archive", err)
	}
	if n == 0 {
		return nil, ErrArchiveNotFound
	}

	return u.Get(ctx, userID, id)
}

func (u *archiveUsecase) Delete(ctx context.Context, userID, id string) error {
	var (
		deleted *domain.Archive
		alert   *notifdomain.Notification
	)
	err := u.store.Transaction(ctx, func(tx store.Manager) error {
		archive, err := tx.Archives().FindByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if archive == nil {
			return ErrArchiveNotFound
		}

		if _, err := tx.Archives().Delete(ctx, userID, id); err != nil {
			return err
		}

		alert, err = u.notifier.Notify(ctx, tx, userID, notifdomain.TypeAlert,
			"成长数据已删除",
			fmt.Sprintf(`按照您的请求，条目"%s"已从您的时间轴中移除。`, archive.Title))
		if err != nil {
			return err
		}
		deleted = archive
		return nil
	})
	if err != nil {
		return apperror.Wrap(err, "delete archive")
	}

	u.publish(ctx, events.TypeArchiveDeleted, deleted)
	u.notifier.Push(ctx, alert)

	u.logger.Info(ctx, "archive deleted", "user_id", userID, "archive_id", id)
	return nil
}

func (u *archiveUsecase) publish(ctx context.Context, eventType string, archive *domain.Archive) {
	err := u.publisher.Publish(ctx, events.Event{
		Type:       eventType,
		UserID:     archive.UserID,
		ArchiveID:  archive.ID,
		Status:     string(archive.Status),
		OccurredAt: u.now().UTC(),
	})
	if err != nil {
		u.logger.Warn(ctx, "publish event failed", "type", eventType, "archive_id", archive.ID, "error", err)
	}
}
