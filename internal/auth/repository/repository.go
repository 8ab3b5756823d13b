package repository

import (
	"context"

	"selnet/internal/auth/model"
)

// AuditRepository is the append-only audit store. Nothing here updates or
// deletes an entry once written.
type AuditRepository interface {
	// CreateEntry appends one audit entry with a server-generated timestamp
	CreateEntry(ctx context.Context, entry *model.AuditLogEntry) error
	// FindEntries lists entries with filtering and pagination, newest first
	FindEntries(ctx context.Context, filter model.AuditFilter) ([]*model.AuditLogEntry, int64, error)
	// EnsureAuditIndexes creates indexes for efficient querying
	EnsureAuditIndexes(ctx context.Context) error
}

// InboxRepository stores per-recipient notifications. Appends only; marking
// read belongs to the recipient-facing surface, not this core.
type InboxRepository interface {
	// CreateNotification durably writes one notification and returns its id
	CreateNotification(ctx context.Context, n *model.InboxNotification) (string, error)
	// FindNotifications lists a recipient's notifications, newest first
	FindNotifications(ctx context.Context, recipientID string, page, size int) ([]*model.InboxNotification, int64, error)
	// EnsureInboxIndexes creates indexes for efficient querying
	EnsureInboxIndexes(ctx context.Context) error
}
