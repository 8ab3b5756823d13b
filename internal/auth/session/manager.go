package session

import (
	"net/http"
	"time"

	"selnet/internal/auth/token"
)

// Manager issues the session cookie wrapping a verified identity token.
// Cookie attributes are fixed here and not overridable per request; each
// refresh replaces the whole cookie value atomically.
type Manager struct {
	verifier *token.Verifier
	name     string
	maxAge   time.Duration
	secure   bool
}

func NewManager(v *token.Verifier, name string, maxAge time.Duration, secure bool) *Manager {
	return &Manager{
		verifier: v,
		name:     name,
		maxAge:   maxAge,
		secure:   secure,
	}
}

func (m *Manager) Name() string {
	return m.name
}

// Refresh verifies a freshly-minted identity token. On success the caller
// issues the cookie via Cookie; on failure no cookie is issued.
func (m *Manager) Refresh(idToken string) (*token.Claims, error) {
	return m.verifier.Verify(idToken)
}

// Cookie builds the session cookie carrying the raw identity token.
func (m *Manager) Cookie(idToken string) *http.Cookie {
	return &http.Cookie{
		Name:     m.name,
		Value:    idToken,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Expire builds the logout cookie invalidating the session on the client.
// The old token stays valid until its natural expiry; there is no
// revocation list.
func (m *Manager) Expire() *http.Cookie {
	return &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
