package repository

import (
	"context"
	"time"

	"selnet/internal/auth/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureInboxIndexes creates indexes for efficient querying
func (r *MongoRepository) EnsureInboxIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Per-recipient listing, newest first
		{
			Keys: bson.D{
				{Key: "recipient_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_inbox_recipient_query"),
		},
		// Unread badge counting
		{
			Keys: bson.D{
				{Key: "recipient_id", Value: 1},
				{Key: "read", Value: 1},
			},
			Options: options.Index().SetName("idx_inbox_unread"),
		},
	}

	_, err := r.Inbox.Indexes().CreateMany(ctx, indexes)
	return err
}

// CreateNotification durably writes one notification before returning
func (r *MongoRepository) CreateNotification(ctx context.Context, n *model.InboxNotification) (string, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	now := time.Now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.Timestamp == 0 {
		n.Timestamp = now.UnixMilli()
	}
	if _, err := r.Inbox.InsertOne(ctx, n); err != nil {
		return "", err
	}
	return n.ID, nil
}

// FindNotifications lists a recipient's notifications, newest first
func (r *MongoRepository) FindNotifications(ctx context.Context, recipientID string, page, size int) ([]*model.InboxNotification, int64, error) {
	filter := bson.M{"recipient_id": recipientID}

	total, err := r.Inbox.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((page - 1) * size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(size))

	cursor, err := r.Inbox.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var results []*model.InboxNotification
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}
