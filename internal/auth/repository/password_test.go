package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "short", password: "secret1"},
		{name: "unicode", password: "密码密码123"},
		{name: "longer than bcrypt limit", password: strings.Repeat("a", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, CheckPasswordHash(tt.password, hash))
			assert.False(t, CheckPasswordHash(tt.password+"x", hash))
		})
	}
}

func TestHashPassword_LongPasswordsDifferPastByte72(t *testing.T) {
	base := strings.Repeat("b", 80)
	hash, err := HashPassword(base + "1")
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash(base+"2", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("secret1", "not-a-hash"))
	assert.False(t, CheckPasswordHash("secret1", ""))
}

func TestDummyHash_MatchesNothingUseful(t *testing.T) {
	h := DummyHash()
	require.NotEmpty(t, h)
	assert.Equal(t, h, DummyHash())
	assert.False(t, CheckPasswordHash("secret1", h))
}
