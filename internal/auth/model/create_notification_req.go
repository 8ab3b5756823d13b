package model

import "strings"

// CreateNotificationReq creates one inbox notification for a recipient.
type CreateNotificationReq struct {
	UID     string              `json:"uid" validate:"required,min=1,max=128"`
	Payload NotificationPayload `json:"payload" validate:"required"`
}

func (r *CreateNotificationReq) Validate() error {
	r.UID = strings.TrimSpace(r.UID)
	r.Payload.Title = strings.TrimSpace(r.Payload.Title)
	r.Payload.Type = strings.ToLower(strings.TrimSpace(r.Payload.Type))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
