package handler

import (
	"errors"
	"net/http"

	"selnet/internal/auth/model"
	"selnet/internal/auth/service"
)

// Helper to map errors to HTTP status and body. Authorization failures get a
// generic message on purpose: responses must not reveal which role or scope
// check failed.
func httpError(err error) (int, interface{}) {
	var code string
	var msg string
	var status int

	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		status = http.StatusUnauthorized
		code = "unauthenticated"
		msg = "Authentication required"
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		code = "forbidden"
		msg = "Access denied"
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Invalid input"
	case errors.Is(err, service.ErrDependency):
		status = http.StatusInternalServerError
		code = "dependency_failure"
		msg = "Service temporarily unavailable"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = "Internal error"
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

// validationError wraps a request Validate() failure into the response
// envelope.
func validationError(err error) model.ErrorResponse {
	var detail *model.ErrorDetail
	if errors.As(err, &detail) {
		return model.ErrorResponse{Error: *detail}
	}
	return model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: err.Error()},
	}
}
