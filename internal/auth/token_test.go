package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager("test-secret", 30*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	return tm
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Minute, time.Hour)
	assert.Error(t, err)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := newTestManager(t)

	token, err := tm.IssueAccess("user-1", "jane@example.com")
	require.NoError(t, err)

	claims, err := tm.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tm := newTestManager(t)

	token, err := tm.IssueRefresh("user-1", "jane@example.com")
	require.NoError(t, err)

	claims, err := tm.VerifyRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestTokenTypeSeparation(t *testing.T) {
	tm := newTestManager(t)

	access, err := tm.IssueAccess("user-1", "jane@example.com")
	require.NoError(t, err)
	refresh, err := tm.IssueRefresh("user-1", "jane@example.com")
	require.NoError(t, err)

	_, err = tm.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.VerifyRefresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbageAndWrongSecret(t *testing.T) {
	tm := newTestManager(t)

	_, err := tm.VerifyAccess("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewTokenManager("other-secret", time.Minute, time.Hour)
	require.NoError(t, err)
	token, err := other.IssueAccess("user-1", "jane@example.com")
	require.NoError(t, err)

	_, err = tm.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	tm, err := NewTokenManager("test-secret", -time.Minute, -time.Minute)
	require.NoError(t, err)

	token, err := tm.IssueAccess("user-1", "jane@example.com")
	require.NoError(t, err)

	_, err = tm.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.True(t, VerifyPassword("Sup3rSecret", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Abcdef12", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoDigitsHere", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPassword(tt.password), tt.password)
	}
}
