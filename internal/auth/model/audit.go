package model

import "time"

// AuditLogEntry is an immutable record of a privileged action. Entries are
// append-only: nothing in this service updates or deletes them.
type AuditLogEntry struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	ActorID    string    `bson:"actor_id" json:"actorId"`
	ActorEmail string    `bson:"actor_email" json:"actorEmail"`
	Action     string    `bson:"action" json:"action"`
	ActionType string    `bson:"action_type" json:"actionType"`
	Details    string    `bson:"details,omitempty" json:"details,omitempty"`
	TargetID   string    `bson:"target_id,omitempty" json:"targetId,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// AuditFilter narrows an audit listing.
type AuditFilter struct {
	ActorID    string
	ActionType string
	StartTime  *time.Time
	EndTime    *time.Time
	Page       int
	Size       int
}
