package handler

import (
	"net/http"

	"selnet/internal/auth/model"
	"selnet/internal/auth/policy"
	"selnet/internal/auth/service"

	"github.com/labstack/echo/v4"
)

// PostAccessCheck handles POST /access/check
func (h *AuthHandler) PostAccessCheck(c echo.Context) error {
	claims := CurrentClaims(c)
	if claims == nil {
		code, body := httpError(service.ErrUnauthenticated)
		return c.JSON(code, body)
	}

	var req model.CheckAccessReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	allowed := h.Service.CheckAccess(claims, policy.ResourceTags{
		SettlementID: req.SettlementID,
		Municipality: req.Municipality,
		Province:     req.Province,
	})

	return c.JSON(http.StatusOK, model.CheckAccessResponse{Allowed: allowed})
}
