package model

import "strings"

// RefreshSessionReq carries the freshly-minted identity token obtained by the
// client after a forced claim refresh (e.g. following a role change).
type RefreshSessionReq struct {
	IDToken string `json:"idToken" validate:"required,min=1"`
}

func (r *RefreshSessionReq) Validate() error {
	r.IDToken = strings.TrimSpace(r.IDToken)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
