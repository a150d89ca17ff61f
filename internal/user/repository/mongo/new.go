package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskflow/internal/user/repository"
	"taskflow/pkg/log"
)

const collectionUsers = "users"

type implRepository struct {
	db  *mongo.Database
	l   log.Logger
	now func() time.Time
}

// New creates a new MongoDB-backed Repository for the user domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/mongo: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// EnsureIndexes creates the unique email index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("user/repository/mongo: create email index: %w", err)
	}
	return nil
}

func (r *implRepository) coll() *mongo.Collection {
	return r.db.Collection(collectionUsers)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/mongo.%s", method)
}
