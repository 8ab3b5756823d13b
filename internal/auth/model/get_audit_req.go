package model

import (
	"strings"
	"time"
)

// GetAuditReq filters a paginated audit listing.
type GetAuditReq struct {
	ActorID    string `query:"actor_id" validate:"omitempty,max=128"`
	ActionType string `query:"action_type" validate:"omitempty,max=50"`

	StartTime *time.Time `query:"start_time"`
	EndTime   *time.Time `query:"end_time"`

	Page int `query:"page" validate:"omitempty,min=1"`
	Size int `query:"size" validate:"omitempty,min=1,max=100"`
}

func (r *GetAuditReq) Validate() error {
	r.ActorID = strings.TrimSpace(r.ActorID)
	r.ActionType = strings.ToLower(strings.TrimSpace(r.ActionType))

	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = 20
	}
	if r.Size > 100 {
		r.Size = 100
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.ActionType != "" && !AllowedActionTypes[r.ActionType] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid action_type"}
	}

	return nil
}

func (r *GetAuditReq) ToFilter() AuditFilter {
	return AuditFilter{
		ActorID:    r.ActorID,
		ActionType: r.ActionType,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Page:       r.Page,
		Size:       r.Size,
	}
}

// GetAuditResp is the paginated audit listing envelope.
type GetAuditResp struct {
	Data       []*AuditLogEntry `json:"data"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalCount int64            `json:"total_count"`
}
