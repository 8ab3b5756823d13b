package model

// GetInboxReq paginates the caller's own inbox listing.
type GetInboxReq struct {
	Page int `query:"page" validate:"omitempty,min=1"`
	Size int `query:"size" validate:"omitempty,min=1,max=100"`
}

func (r *GetInboxReq) Validate() error {
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
	return nil
}

// GetInboxResp is the paginated inbox listing envelope.
type GetInboxResp struct {
	Data       []*InboxNotification `json:"data"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	TotalCount int64                `json:"total_count"`
}
