package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
)

const auditCollection = "auth_audit"

// MongoAuditRepository appends authentication audit entries. Entries are
// write-only from the service's point of view; operators query the
// collection directly.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	Username  string `bson:"username"`
	UserID    string `bson:"user_id,omitempty"`
	Action    string `bson:"action"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) Record(ctx context.Context, entry domain.AuditEntry) error {
	doc := mongoAuditEntry{
		Username:  entry.Username,
		UserID:    entry.UserID,
		Action:    string(entry.Action),
		Timestamp: entry.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
