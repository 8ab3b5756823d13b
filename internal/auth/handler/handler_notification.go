package handler

import (
	"net/http"

	"selnet/internal/auth/model"
	"selnet/internal/auth/service"

	"github.com/labstack/echo/v4"
)

// PostNotifications handles POST /notifications
func (h *AuthHandler) PostNotifications(c echo.Context) error {
	claims := CurrentClaims(c)
	if claims == nil {
		code, body := httpError(service.ErrUnauthenticated)
		return c.JSON(code, body)
	}

	var req model.CreateNotificationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	id, err := h.Service.Notify(c.Request().Context(), claims, req.UID, req.Payload)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.OKResponse{OK: true, ID: id})
}

// GetNotificationsMe handles GET /notifications/me
func (h *AuthHandler) GetNotificationsMe(c echo.Context) error {
	claims := CurrentClaims(c)
	if claims == nil {
		code, body := httpError(service.ErrUnauthenticated)
		return c.JSON(code, body)
	}

	var req model.GetInboxReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	items, total, err := h.Service.ListInbox(c.Request().Context(), claims, req.Page, req.Size)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.GetInboxResp{
		Data:       items,
		Page:       req.Page,
		Size:       req.Size,
		TotalCount: total,
	})
}
