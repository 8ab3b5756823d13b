package model

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}

// OKResponse is the success envelope for state-changing endpoints.
type OKResponse struct {
	OK   bool   `json:"ok"`
	Role string `json:"role,omitempty"`
	ID   string `json:"id,omitempty"`
}

// CheckAccessResponse carries a server-side scope decision.
type CheckAccessResponse struct {
	Allowed bool `json:"allowed"`
}
