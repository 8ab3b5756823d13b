package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"selnet/internal/auth/model"
	"selnet/internal/auth/policy"
	"selnet/internal/auth/repository"
	"selnet/internal/auth/session"
	"selnet/internal/auth/token"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrBadRequest      = errors.New("bad request")
	ErrDependency      = errors.New("dependency failure")
)

const deliveryTimeout = 5 * time.Second

type AuthService interface {
	// RefreshSession verifies a freshly-minted identity token. Fail-closed:
	// any verification failure is ErrUnauthenticated.
	RefreshSession(ctx context.Context, idToken string) (*token.Claims, error)
	// Notify creates one inbox notification for the recipient. Caller must be
	// a moderator; the write is durable before return, delivery is not.
	Notify(ctx context.Context, caller *token.Claims, recipientID string, payload model.NotificationPayload) (string, error)
	// CheckAccess computes the caller's moderation decision for a resource
	CheckAccess(caller *token.Claims, res policy.ResourceTags) bool
	// RecordAudit appends one audit entry, best-effort: a store failure is
	// logged and swallowed, never surfaced to the audited operation.
	RecordAudit(ctx context.Context, actorID, actorEmail, action, actionType, details, targetID string)
	// ListAudit lists audit entries; ADMIN only
	ListAudit(ctx context.Context, caller *token.Claims, filter model.AuditFilter) ([]*model.AuditLogEntry, int64, error)
	// ListInbox lists the caller's own notifications
	ListInbox(ctx context.Context, caller *token.Claims, page, size int) ([]*model.InboxNotification, int64, error)
}

type Service struct {
	Sessions *session.Manager
	Audit    repository.AuditRepository
	Inbox    repository.InboxRepository
	Delivery DeliveryPublisher
	logger   *slog.Logger
}

func NewService(sessions *session.Manager, audit repository.AuditRepository, inbox repository.InboxRepository, delivery DeliveryPublisher, logger *slog.Logger) *Service {
	return &Service{
		Sessions: sessions,
		Audit:    audit,
		Inbox:    inbox,
		Delivery: delivery,
		logger:   logger,
	}
}

func (s *Service) RefreshSession(ctx context.Context, idToken string) (*token.Claims, error) {
	claims, err := s.Sessions.Refresh(idToken)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}

func (s *Service) Notify(ctx context.Context, caller *token.Claims, recipientID string, payload model.NotificationPayload) (string, error) {
	if caller == nil {
		return "", ErrUnauthenticated
	}
	if !policy.CanModerate(caller.EffectiveRole()) {
		return "", ErrForbidden
	}
	if recipientID == "" || payload.Title == "" {
		return "", ErrBadRequest
	}

	n := &model.InboxNotification{
		RecipientID: recipientID,
		Type:        payload.Type,
		Channel:     model.NotificationChannelInbox,
		Title:       payload.Title,
		Body:        payload.Body,
		Link:        payload.Link,
		Icon:        payload.Icon,
		Read:        false,
	}
	if n.Type == "" {
		n.Type = model.NotificationTypeInfo
	}

	id, err := s.Inbox.CreateNotification(ctx, n)
	if err != nil {
		s.logger.Error("notification write failed", "recipient_id", recipientID, "error", err)
		return "", ErrDependency
	}

	// One-shot best-effort handoff to the push transport. The notification is
	// already durable; a transport failure only gets a log line.
	if s.Delivery != nil {
		go func(n *model.InboxNotification) {
			dctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
			defer cancel()
			if err := s.Delivery.Publish(dctx, n); err != nil {
				s.logger.Warn("notification delivery handoff failed", "id", n.ID, "error", err)
			}
		}(n)
	}

	s.RecordAudit(ctx, caller.Subject, caller.Email, "create_notification", model.ActionTypeCommunication, payload.Title, recipientID)

	return id, nil
}

func (s *Service) CheckAccess(caller *token.Claims, res policy.ResourceTags) bool {
	if caller == nil {
		return false
	}
	return policy.Authorize(caller.EffectiveRole(), caller.Scope, res)
}

func (s *Service) RecordAudit(ctx context.Context, actorID, actorEmail, action, actionType, details, targetID string) {
	entry := &model.AuditLogEntry{
		ActorID:    actorID,
		ActorEmail: actorEmail,
		Action:     action,
		ActionType: model.NormalizeActionType(actionType),
		Details:    details,
		TargetID:   targetID,
	}
	if err := s.Audit.CreateEntry(ctx, entry); err != nil {
		// Audit is best-effort: the primary action must not fail here.
		s.logger.Error("audit write failed", "actor_id", actorID, "action", action, "error", err)
	}
}

func (s *Service) ListAudit(ctx context.Context, caller *token.Claims, filter model.AuditFilter) ([]*model.AuditLogEntry, int64, error) {
	if caller == nil {
		return nil, 0, ErrUnauthenticated
	}
	if !policy.HasRole(caller.EffectiveRole(), policy.RoleAdmin) {
		return nil, 0, ErrForbidden
	}
	entries, total, err := s.Audit.FindEntries(ctx, filter)
	if err != nil {
		return nil, 0, ErrDependency
	}
	return entries, total, nil
}

func (s *Service) ListInbox(ctx context.Context, caller *token.Claims, page, size int) ([]*model.InboxNotification, int64, error) {
	if caller == nil {
		return nil, 0, ErrUnauthenticated
	}
	items, total, err := s.Inbox.FindNotifications(ctx, caller.Subject, page, size)
	if err != nil {
		return nil, 0, ErrDependency
	}
	return items, total, nil
}
