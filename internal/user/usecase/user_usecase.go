package usecase

import (
	"context"

	authdomain "growth-archive-backend/internal/auth/domain"
	"growth-archive-backend/internal/store"
	"growth-archive-backend/internal/user/dto"
	"growth-archive-backend/pkg/apperror"
	"growth-archive-backend/pkg/logging"
)

var ErrProfileNotFound = apperror.NotFound("用户不存在")

// UserUsecase reads and edits the caller's own profile
type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*authdomain.User, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*authdomain.User, error)
}

type userUsecase struct {
	store  store.Manager
	logger logging.Logger
}

func NewUserUsecase(m store.Manager, logger logging.Logger) UserUsecase {
	return &userUsecase{store: m, logger: logger.With("component", "user")}
}

func (u *userUsecase) GetProfile(ctx context.Context, userID string) (*authdomain.User, error) {
	user, err := u.store.Users().FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("get profile", err)
	}
	if user == nil {
		return nil, ErrProfileNotFound
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*authdomain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	n, err := u.store.Users().Update(ctx, userID, req.Fields())
	if err != nil {
		return nil, apperror.Internal("update profile", err)
	}
	if n == 0 {
		return nil, ErrProfileNotFound
	}

	u.logger.Debug(ctx, "profile updated", "user_id", userID)
	return u.GetProfile(ctx, userID)
}
