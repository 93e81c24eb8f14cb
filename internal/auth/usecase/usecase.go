package usecase

import (
	"context"

	authdomain "growth-archive-backend/internal/auth/domain"
	authdto "growth-archive-backend/internal/auth/dto"
	"growth-archive-backend/pkg/apperror"
)

var (
	ErrPhoneTaken = apperror.Conflict("phone number already registered")
	// ErrUserNotFound and ErrInvalidCredentials share one message so a
	// client cannot tell an unknown phone from a wrong password.
	ErrUserNotFound       = apperror.Unauthorized("invalid phone or password")
	ErrInvalidCredentials = apperror.Unauthorized("invalid phone or password")
	ErrProfileNotFound    = apperror.NotFound("user not found")
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a profile and returns its id.
	Register(ctx context.Context, req *authdto.RegisterRequest) (string, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	// ResolveToken verifies an access token and checks that its user
	// still exists.
	ResolveToken(ctx context.Context, tokenString string) (string, error)
	Me(ctx context.Context, userID string) (*authdomain.User, error)
	// DeleteAccount removes the user's archives, notifications, device
	// tokens and profile in one transaction.
	DeleteAccount(ctx context.Context, userID string) error
}
