package usecase

import (
	"context"
	"testing"

	authdomain "growth-archive-backend/internal/auth/domain"
	"growth-archive-backend/internal/store"
	"growth-archive-backend/internal/user/dto"
	"growth-archive-backend/pkg/apperror"
	"growth-archive-backend/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, m *store.MemoryManager) *authdomain.User {
	t.Helper()
	u := &authdomain.User{Phone: "13800000000", PasswordHash: "h", Name: "Alice", Major: "Math"}
	require.NoError(t, m.Users().Create(context.Background(), u))
	return u
}

func TestGetProfile(t *testing.T) {
	m := store.NewMemoryManager()
	uc := NewUserUsecase(m, logging.Discard())
	u := seedUser(t, m)

	got, err := uc.GetProfile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = uc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfile(t *testing.T) {
	m := store.NewMemoryManager()
	uc := NewUserUsecase(m, logging.Discard())
	u := seedUser(t, m)

	tests := []struct {
		name     string
		userID   string
		req      dto.UpdateProfileRequest
		wantKind apperror.Kind
	}{
		{name: "empty payload", userID: u.ID, req: dto.UpdateProfileRequest{}, wantKind: apperror.KindValidation},
		{name: "blank name", userID: u.ID, req: dto.UpdateProfileRequest{Name: strPtr("")}, wantKind: apperror.KindValidation},
		{name: "unknown user", userID: "missing", req: dto.UpdateProfileRequest{Grade: strPtr("大三")}, wantKind: apperror.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.UpdateProfile(context.Background(), tt.userID, &tt.req)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func TestUpdateProfile_Partial(t *testing.T) {
	m := store.NewMemoryManager()
	uc := NewUserUsecase(m, logging.Discard())
	u := seedUser(t, m)

	got, err := uc.UpdateProfile(context.Background(), u.ID, &dto.UpdateProfileRequest{
		University: strPtr("清华大学"),
		Avatar:     strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "清华大学", got.University)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "Math", got.Major)
	assert.Equal(t, "13800000000", got.Phone)
}
