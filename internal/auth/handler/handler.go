package handler

import (
	"net/http"

	"selnet/internal/auth/model"
	"selnet/internal/auth/service"
	"selnet/internal/auth/session"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Service  service.AuthService
	Sessions *session.Manager
}

func NewAuthHandler(s service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{Service: s, Sessions: sessions}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PostSessionRefresh handles POST /session/refresh
func (h *AuthHandler) PostSessionRefresh(c echo.Context) error {
	var req model.RefreshSessionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	claims, err := h.Service.RefreshSession(c.Request().Context(), req.IDToken)
	if err != nil {
		// No cookie on failure
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	c.SetCookie(h.Sessions.Cookie(req.IDToken))

	return c.JSON(http.StatusOK, model.OKResponse{
		OK:   true,
		Role: string(claims.EffectiveRole()),
	})
}

// PostSessionLogout handles POST /session/logout. Works without a valid
// session too: the cookie is cleared either way.
func (h *AuthHandler) PostSessionLogout(c echo.Context) error {
	if cookie, err := c.Cookie(h.Sessions.Name()); err == nil {
		if claims, verr := h.Service.RefreshSession(c.Request().Context(), cookie.Value); verr == nil {
			h.Service.RecordAudit(c.Request().Context(),
				claims.Subject, claims.Email, "logout", model.ActionTypeSystem, "", "")
		}
	}

	c.SetCookie(h.Sessions.Expire())
	return c.JSON(http.StatusOK, model.OKResponse{OK: true})
}

// GetSessionMe handles GET /session/me
func (h *AuthHandler) GetSessionMe(c echo.Context) error {
	claims := CurrentClaims(c)
	if claims == nil {
		code, body := httpError(service.ErrUnauthenticated)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"uid":           claims.Subject,
		"email":         claims.Email,
		"emailVerified": claims.EmailVerified,
		"role":          string(claims.EffectiveRole()),
		"scope":         claims.Scope,
	})
}
