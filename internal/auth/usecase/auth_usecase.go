package usecase

import (
	"context"
	"errors"
	"time"

	authdomain "growth-archive-backend/internal/auth/domain"
	authdto "growth-archive-backend/internal/auth/dto"
	"growth-archive-backend/internal/auth/repository"
	"growth-archive-backend/internal/auth/token"
	"growth-archive-backend/internal/store"
	"growth-archive-backend/pkg/apperror"
	"growth-archive-backend/pkg/events"
	"growth-archive-backend/pkg/logging"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	store     store.Manager
	codec     *token.Codec
	publisher events.Publisher
	logger    logging.Logger
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(m store.Manager, codec *token.Codec, publisher events.Publisher, logger logging.Logger) AuthUsecase {
	return &authUsecase{
		store:     m,
		codec:     codec,
		publisher: publisher,
		logger:    logger.With("component", "auth"),
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (string, error) {
	existing, err := u.store.Users().FindByPhone(ctx, req.Phone)
	if err != nil {
		return "", apperror.Internal("lookup phone", err)
	}
	if existing != nil {
		return "", ErrPhoneTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return "", apperror.Internal("hash password", err)
	}

	name := req.Name
	if name == "" {
		name = authdomain.DefaultName
	}
	user := &authdomain.User{
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		Name:         name,
	}

	if err := u.store.Users().Create(ctx, user); err != nil {
		// Two registrations racing past the lookup meet at the unique index.
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return "", ErrPhoneTaken
		}
		return "", apperror.Internal("create profile", err)
	}

	u.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user.ID, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.store.Users().FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, apperror.Internal("lookup phone", err)
	}

	if user == nil {
		// Burn the same bcrypt time as a real check.
		repository.CheckPasswordHash(req.Password, repository.DummyHash())
		return nil, ErrUserNotFound
	}

	if !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		u.logger.Warn(ctx, "login failed", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	accessToken, err := u.codec.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal("issue token", err)
	}

	return &authdto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		UserID:      user.ID,
	}, nil
}

func (u *authUsecase) ResolveToken(ctx context.Context, tokenString string) (string, error) {
	userID, err := u.codec.Resolve(tokenString)
	if err != nil {
		return "", err
	}

	user, err := u.store.Users().FindByID(ctx, userID)
	if err != nil {
		return "", apperror.Internal("lookup user", err)
	}
	if user == nil {
		return "", token.ErrInvalidToken
	}
	return userID, nil
}

func (u *authUsecase) Me(ctx context.Context, userID string) (*authdomain.User, error) {
	user, err := u.store.Users().FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("lookup user", err)
	}
	if user == nil {
		return nil, ErrProfileNotFound
	}
	return user, nil
}

func (u *authUsecase) DeleteAccount(ctx context.Context, userID string) error {
	err := u.store.Transaction(ctx, func(tx store.Manager) error {
		if err := tx.Archives().DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		if err := tx.Notifications().DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		if err := tx.DeviceTokens().DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		return tx.Users().Delete(ctx, userID)
	})
	if err != nil {
		return apperror.Internal("delete account", err)
	}

	u.logger.Info(ctx, "account deleted", "user_id", userID)
	if err := u.publisher.Publish(ctx, events.Event{
		Type:       events.TypeAccountDeleted,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		u.logger.Warn(ctx, "publish event failed", "type", events.TypeAccountDeleted, "error", err)
	}
	return nil
}
