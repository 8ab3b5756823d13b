package model

import "time"

// InboxNotification is a per-recipient inbox record. Created unread by the
// core; only the recipient (or system delivery) mutates it afterwards, which
// is outside this service.
type InboxNotification struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	RecipientID string    `bson:"recipient_id" json:"recipientId"`
	Type        string    `bson:"type" json:"type"`
	Channel     string    `bson:"channel" json:"channel"`
	Title       string    `bson:"title" json:"title"`
	Body        string    `bson:"body,omitempty" json:"body,omitempty"`
	Link        string    `bson:"link,omitempty" json:"link,omitempty"`
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Read        bool      `bson:"read" json:"read"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	Timestamp   int64     `bson:"timestamp" json:"timestamp"` // unix millis, client sort key
}

// NotificationPayload is the caller-supplied part of a notification.
type NotificationPayload struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body" validate:"omitempty,max=2000"`
	Type  string `json:"type" validate:"omitempty,max=50"`
	Link  string `json:"link" validate:"omitempty,max=500"`
	Icon  string `json:"icon" validate:"omitempty,max=500"`
}
