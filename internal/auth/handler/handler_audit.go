package handler

import (
	"net/http"

	"selnet/internal/auth/model"
	"selnet/internal/auth/service"

	"github.com/labstack/echo/v4"
)

// GetAudit handles GET /audit
func (h *AuthHandler) GetAudit(c echo.Context) error {
	claims := CurrentClaims(c)
	if claims == nil {
		code, body := httpError(service.ErrUnauthenticated)
		return c.JSON(code, body)
	}

	var req model.GetAuditReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	entries, total, err := h.Service.ListAudit(c.Request().Context(), claims, req.ToFilter())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.GetAuditResp{
		Data:       entries,
		Page:       req.Page,
		Size:       req.Size,
		TotalCount: total,
	})
}
