package model

// Action types for audit entries
const (
	ActionTypeSignalUpdate  = "signal_update"
	ActionTypeUserUpdate    = "user_update"
	ActionTypePageUpdate    = "page_update"
	ActionTypeSystem        = "system"
	ActionTypeCommunication = "communication"
)

// AllowedActionTypes defines the closed audit taxonomy
var AllowedActionTypes = map[string]bool{
	ActionTypeSignalUpdate:  true,
	ActionTypeUserUpdate:    true,
	ActionTypePageUpdate:    true,
	ActionTypeSystem:        true,
	ActionTypeCommunication: true,
}

// NormalizeActionType coerces unknown inputs to the system bucket so a bad
// caller value never blocks an audit append.
func NormalizeActionType(s string) string {
	if AllowedActionTypes[s] {
		return s
	}
	return ActionTypeSystem
}

// Notification defaults
const (
	NotificationTypeInfo     = "info"
	NotificationChannelInbox = "inbox"
)
