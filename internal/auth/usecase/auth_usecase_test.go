package usecase

import (
	"context"
	"testing"
	"time"

	archivedomain "growth-archive-backend/internal/archive/domain"
	authdomain "growth-archive-backend/internal/auth/domain"
	authdto "growth-archive-backend/internal/auth/dto"
	"growth-archive-backend/internal/auth/token"
	notifdomain "growth-archive-backend/internal/notification/domain"
	"growth-archive-backend/internal/store"
	"growth-archive-backend/pkg/events"
	"growth-archive-backend/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsecase(t *testing.T) (AuthUsecase, *store.MemoryManager, *events.Recorder) {
	t.Helper()
	m := store.NewMemoryManager()
	rec := &events.Recorder{}
	uc := NewAuthUsecase(m, token.NewCodec("test-secret", time.Hour), rec, logging.Discard())
	return uc, m, rec
}

func register(t *testing.T, uc AuthUsecase, phone, password, name string) string {
	t.Helper()
	id, err := uc.Register(context.Background(), &authdto.RegisterRequest{Phone: phone, Password: password, Name: name})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func TestRegister_DuplicatePhone(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	register(t, uc, "13800000000", "secret1", "Alice")
	_, err := uc.Register(context.Background(), &authdto.RegisterRequest{Phone: "13800000000", Password: "other12"})

	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestRegister_DefaultsAndHashes(t *testing.T) {
	uc, m, _ := newTestUsecase(t)

	id := register(t, uc, "13800000000", "secret1", "")

	user, err := m.Users().FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, authdomain.DefaultName, user.Name)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.Empty(t, user.StudentID)
	assert.Empty(t, user.University)
}

func TestLogin(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	id := register(t, uc, "13800000000", "secret1", "Alice")

	tests := []struct {
		name     string
		phone    string
		password string
		wantErr  error
	}{
		{name: "correct credentials", phone: "13800000000", password: "secret1"},
		{name: "wrong password", phone: "13800000000", password: "secret2", wantErr: ErrInvalidCredentials},
		{name: "unknown phone", phone: "13900000000", password: "secret1", wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Login(context.Background(), &authdto.LoginRequest{Phone: tt.phone, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bearer", resp.TokenType)
			assert.Equal(t, id, resp.UserID)
			assert.NotEmpty(t, resp.AccessToken)
		})
	}
}

func TestLogin_SameMessageForUnknownPhoneAndWrongPassword(t *testing.T) {
	assert.Equal(t, ErrUserNotFound.Error(), ErrInvalidCredentials.Error())
}

func TestResolveToken(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	ctx := context.Background()
	id := register(t, uc, "13800000000", "secret1", "Alice")

	resp, err := uc.Login(ctx, &authdto.LoginRequest{Phone: "13800000000", Password: "secret1"})
	require.NoError(t, err)

	got, err := uc.ResolveToken(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = uc.ResolveToken(ctx, "garbage")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestResolveToken_DeletedUserIsInvalid(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	ctx := context.Background()
	id := register(t, uc, "13800000000", "secret1", "Alice")

	resp, err := uc.Login(ctx, &authdto.LoginRequest{Phone: "13800000000", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteAccount(ctx, id))

	_, err = uc.ResolveToken(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestDeleteAccount_RemovesOwnedRows(t *testing.T) {
	uc, m, rec := newTestUsecase(t)
	ctx := context.Background()
	alice := register(t, uc, "13800000000", "secret1", "Alice")
	bob := register(t, uc, "13900000000", "secret1", "Bob")

	for _, owner := range []string{alice, bob} {
		require.NoError(t, m.Archives().Create(ctx, &archivedomain.Archive{UserID: owner, Title: "A", Category: "award"}))
		require.NoError(t, m.Notifications().Create(ctx, &notifdomain.Notification{UserID: owner, Type: notifdomain.TypeStatus, Title: "t"}))
		require.NoError(t, m.DeviceTokens().Save(ctx, owner, "tok-"+owner, ""))
	}

	require.NoError(t, uc.DeleteAccount(ctx, alice))

	_, err := uc.Me(ctx, alice)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	archives, err := m.Archives().FindByUserID(ctx, alice, "")
	require.NoError(t, err)
	assert.Empty(t, archives)
	notes, err := m.Notifications().FindByUserID(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, notes)
	tokens, err := m.DeviceTokens().FindByUserID(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, tokens)

	bobArchives, err := m.Archives().FindByUserID(ctx, bob, "")
	require.NoError(t, err)
	assert.Len(t, bobArchives, 1)

	assert.Equal(t, []string{events.TypeAccountDeleted}, rec.Types())
}

func TestMe(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	id := register(t, uc, "13800000000", "secret1", "Alice")

	user, err := uc.Me(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "13800000000", user.Phone)

	_, err = uc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
