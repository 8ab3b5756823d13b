package tests

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"selnet/internal/auth/handler"
	"selnet/internal/auth/policy"
	"selnet/internal/auth/router"
	"selnet/internal/auth/service"
	"selnet/internal/auth/session"
	"selnet/internal/auth/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "tests-shared-secret"
	testCookieName = "selnet_session"
)

// App bundles a fully wired echo instance with its mock stores.
type App struct {
	Echo     *echo.Echo
	Verifier *token.Verifier
	Audit    *MockAuditRepository
	Inbox    *MockInboxRepository
}

func SetupApp(t *testing.T) *App {
	t.Helper()

	verifier, err := token.NewVerifier(testSecret)
	require.NoError(t, err)

	audit := new(MockAuditRepository)
	inbox := new(MockInboxRepository)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := session.NewManager(verifier, testCookieName, 5*24*time.Hour, false)
	svc := service.NewService(sessions, audit, inbox, StubPublisher{}, logger)
	h := handler.NewAuthHandler(svc, sessions)
	authMW := handler.NewAuthMiddleware(verifier, testCookieName)

	e := echo.New()
	router.RegisterRoutes(e, h, authMW)

	return &App{Echo: e, Verifier: verifier, Audit: audit, Inbox: inbox}
}

// MintToken signs a short-lived identity token for the given subject.
func (a *App) MintToken(t *testing.T, subject, email, role string, scope *policy.Scope) string {
	t.Helper()
	signed, err := a.Verifier.Issue(&token.Claims{
		Email: email,
		Role:  role,
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: subject,
		},
	}, time.Hour)
	require.NoError(t, err)
	return signed
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// PerformRequestWithCookie sends the identity token in the session cookie
// instead of the Authorization header.
func PerformRequestWithCookie(a *App, method, path string, body interface{}, idToken string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: idToken})

	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

// mintExpiredToken signs a token with the shared test secret that expired an
// hour ago.
func mintExpiredToken(t *testing.T, subject string) string {
	t.Helper()
	now := time.Now().UTC()
	claims := &token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// mintLegacyRolesToken signs a token carrying only the legacy roles list.
func mintLegacyRolesToken(t *testing.T, subject string, roles []string) string {
	t.Helper()
	now := time.Now().UTC()
	claims := &token.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func bearer(tok string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + tok}
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
