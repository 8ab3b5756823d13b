package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository implements AuditRepository and InboxRepository on two
// collections of the same database.
type MongoRepository struct {
	AuditLog *mongo.Collection
	Inbox    *mongo.Collection
}

func NewMongoRepository(db *mongo.Database, auditCollectionName, inboxCollectionName string) *MongoRepository {
	return &MongoRepository{
		AuditLog: db.Collection(auditCollectionName),
		Inbox:    db.Collection(inboxCollectionName),
	}
}
