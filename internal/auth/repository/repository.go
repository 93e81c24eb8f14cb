package repository

import (
	"context"
	"errors"

	authdomain "growth-archive-backend/internal/auth/domain"
)

// ErrDuplicatePhone is returned by Create when the phone number is taken.
var ErrDuplicatePhone = errors.New("duplicate phone")

// UserRepository defines data access for profiles. Finders return (nil, nil)
// when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *authdomain.User) error
	FindByPhone(ctx context.Context, phone string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)

	// Update applies only the given columns and reports the rows affected.
	Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error)

	Delete(ctx context.Context, id string) error
}
