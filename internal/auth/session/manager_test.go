package session

import (
	"net/http"
	"testing"
	"time"

	"selnet/internal/auth/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, secure bool) *Manager {
	t.Helper()
	v, err := token.NewVerifier("session-test-secret")
	require.NoError(t, err)
	return NewManager(v, "selnet_session", 5*24*time.Hour, secure)
}

func TestCookie_FixedAttributes(t *testing.T) {
	m := newTestManager(t, false)
	cookie := m.Cookie("some-token")

	assert.Equal(t, "selnet_session", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 432000, cookie.MaxAge) // 5 days
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestCookie_SecureInProduction(t *testing.T) {
	m := newTestManager(t, true)
	assert.True(t, m.Cookie("t").Secure)
	assert.True(t, m.Expire().Secure)
}

func TestExpire_InvalidatesSession(t *testing.T) {
	m := newTestManager(t, false)
	cookie := m.Expire()

	assert.Equal(t, "selnet_session", cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}

func TestRefresh(t *testing.T) {
	v, err := token.NewVerifier("session-test-secret")
	require.NoError(t, err)
	m := NewManager(v, "selnet_session", 5*24*time.Hour, false)

	t.Run("valid token", func(t *testing.T) {
		signed, err := v.Issue(&token.Claims{
			Role:             "ADMIN",
			RegisteredClaims: jwt.RegisteredClaims{Subject: "admin-1"},
		}, time.Hour)
		require.NoError(t, err)

		claims, err := m.Refresh(signed)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", claims.Subject)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := m.Refresh("garbage")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}
