package tests

import (
	"net/http"
	"testing"

	"selnet/internal/auth/policy"

	"github.com/stretchr/testify/assert"
)

func TestGetSessionMe(t *testing.T) {
	// API: GET /api/v1/session/me

	t.Run("bearer token returns verified claims", func(t *testing.T) {
		app := SetupApp(t)
		tok := app.MintToken(t, "op-1", "op@example.org", "OPERATOR",
			&policy.Scope{Municipalities: []string{"M1"}})

		rec := PerformRequest(app.Echo, http.MethodGet, "/api/v1/session/me", nil, bearer(tok))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "op-1", body["uid"])
		assert.Equal(t, "op@example.org", body["email"])
		assert.Equal(t, "OPERATOR", body["role"])
		assert.NotNil(t, body["scope"])
	})

	t.Run("session cookie works as credential", func(t *testing.T) {
		app := SetupApp(t)
		tok := app.MintToken(t, "user-1", "user@example.org", "USER", nil)

		rec := PerformRequestWithCookie(app, http.MethodGet, "/api/v1/session/me", nil, tok)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", decodeBody(t, rec)["uid"])
	})

	t.Run("legacy roles list resolves to its first element", func(t *testing.T) {
		app := SetupApp(t)
		tok := mintLegacyRolesToken(t, "legacy-1", []string{"ADMIN", "USER"})

		rec := PerformRequest(app.Echo, http.MethodGet, "/api/v1/session/me", nil, bearer(tok))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ADMIN", decodeBody(t, rec)["role"])
	})

	t.Run("no credential returns 401", func(t *testing.T) {
		app := SetupApp(t)

		rec := PerformRequest(app.Echo, http.MethodGet, "/api/v1/session/me", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid cookie returns 401", func(t *testing.T) {
		app := SetupApp(t)

		rec := PerformRequestWithCookie(app, http.MethodGet, "/api/v1/session/me", nil, "garbage")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
