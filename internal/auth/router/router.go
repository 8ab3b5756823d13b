package router

import (
	"selnet/internal/auth/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.AuthHandler, authMW *handler.AuthMiddleware) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: false,
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Session lifecycle - no auth middleware, the token travels in the body
	// (refresh) or the cookie is simply cleared (logout)
	v1.POST("/session/refresh", h.PostSessionRefresh)
	v1.POST("/session/logout", h.PostSessionLogout)

	// Protected routes behind the claims-verifying middleware
	protected := v1.Group("")
	protected.Use(authMW.Middleware())

	protected.GET("/session/me", h.GetSessionMe)
	protected.POST("/access/check", h.PostAccessCheck)
	protected.POST("/notifications", h.PostNotifications)
	protected.GET("/notifications/me", h.GetNotificationsMe)
	protected.GET("/audit", h.GetAudit)
}
