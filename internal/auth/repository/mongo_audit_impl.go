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

// EnsureAuditIndexes creates indexes for efficient querying
func (r *MongoRepository) EnsureAuditIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Time-ordered listing
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_audit_created_at"),
		},
		// Per-actor query: actor_id + created_at
		{
			Keys: bson.D{
				{Key: "actor_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_audit_actor_query"),
		},
		// Per-type query: action_type + created_at
		{
			Keys: bson.D{
				{Key: "action_type", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_audit_type_query"),
		},
	}

	_, err := r.AuditLog.Indexes().CreateMany(ctx, indexes)
	return err
}

// CreateEntry appends one audit entry (append-only)
func (r *MongoRepository) CreateEntry(ctx context.Context, entry *model.AuditLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.AuditLog.InsertOne(ctx, entry)
	return err
}

// FindEntries lists audit entries with pagination, newest first
func (r *MongoRepository) FindEntries(ctx context.Context, req model.AuditFilter) ([]*model.AuditLogEntry, int64, error) {
	filter := bson.M{}
	if req.ActorID != "" {
		filter["actor_id"] = req.ActorID
	}
	if req.ActionType != "" {
		filter["action_type"] = req.ActionType
	}
	if req.StartTime != nil || req.EndTime != nil {
		timeFilter := bson.M{}
		if req.StartTime != nil {
			timeFilter["$gte"] = *req.StartTime
		}
		if req.EndTime != nil {
			timeFilter["$lte"] = *req.EndTime
		}
		filter["created_at"] = timeFilter
	}

	total, err := r.AuditLog.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((req.Page - 1) * req.Size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(req.Size))

	cursor, err := r.AuditLog.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var results []*model.AuditLogEntry
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}
