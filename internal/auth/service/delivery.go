package service

import (
	"context"
	"log/slog"

	"selnet/internal/auth/model"
)

// DeliveryPublisher hands a stored notification to the push transport.
// Publishing is best-effort by contract: the caller logs a failure and moves
// on, it never fails the notification that was already written.
type DeliveryPublisher interface {
	Publish(ctx context.Context, n *model.InboxNotification) error
}

// LogPublisher is the default publisher where no push transport is wired. It
// records the handoff and succeeds.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, n *model.InboxNotification) error {
	p.logger.Info("notification enqueued for delivery",
		"id", n.ID,
		"recipient_id", n.RecipientID,
		"type", n.Type,
	)
	return nil
}
