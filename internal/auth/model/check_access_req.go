package model

import "strings"

// CheckAccessReq asks whether the caller may moderate a resource with the
// given geographic tags. The decision is always computed server-side.
type CheckAccessReq struct {
	SettlementID string `json:"settlementId" validate:"required,min=1,max=128"`
	Municipality string `json:"municipality" validate:"omitempty,max=128"`
	Province     string `json:"province" validate:"omitempty,max=128"`
}

func (r *CheckAccessReq) Validate() error {
	r.SettlementID = strings.TrimSpace(r.SettlementID)
	r.Municipality = strings.TrimSpace(r.Municipality)
	r.Province = strings.TrimSpace(r.Province)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
