package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"taskflow/internal/task/repository"
	"taskflow/pkg/log"
)

const collectionTasks = "tasks"

type implRepository struct {
	db  *mongo.Database
	l   log.Logger
	now func() time.Time
}

// New creates a new MongoDB-backed Repository for the task domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/mongo: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// EnsureIndexes creates the indexes used by the list filters.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collectionTasks).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "assignedTo", Value: 1}}},
		{Keys: bson.D{{Key: "dueDate", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("task/repository/mongo: create indexes: %w", err)
	}
	return nil
}

func (r *implRepository) coll() *mongo.Collection {
	return r.db.Collection(collectionTasks)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/mongo.%s", method)
}
