package tests

import (
	"context"

	"selnet/internal/auth/model"

	"github.com/stretchr/testify/mock"
)

// MockAuditRepository is a shared mock implementation of
// repository.AuditRepository for testing.
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) CreateEntry(ctx context.Context, entry *model.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) FindEntries(ctx context.Context, filter model.AuditFilter) ([]*model.AuditLogEntry, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.AuditLogEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditRepository) EnsureAuditIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockInboxRepository is a shared mock implementation of
// repository.InboxRepository for testing.
type MockInboxRepository struct {
	mock.Mock
}

func (m *MockInboxRepository) CreateNotification(ctx context.Context, n *model.InboxNotification) (string, error) {
	args := m.Called(ctx, n)
	return args.String(0), args.Error(1)
}

func (m *MockInboxRepository) FindNotifications(ctx context.Context, recipientID string, page, size int) ([]*model.InboxNotification, int64, error) {
	args := m.Called(ctx, recipientID, page, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.InboxNotification), args.Get(1).(int64), args.Error(2)
}

func (m *MockInboxRepository) EnsureInboxIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// StubPublisher is a no-op delivery publisher. Plain stub rather than a
// testify mock: Publish runs on a goroutine and must not race with test
// assertions.
type StubPublisher struct{}

func (StubPublisher) Publish(_ context.Context, _ *model.InboxNotification) error {
	return nil
}
