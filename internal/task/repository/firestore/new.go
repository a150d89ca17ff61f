package firestore

import (
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"taskflow/internal/task/repository"
	"taskflow/pkg/log"
)

const collectionTasks = "tasks"

type implRepository struct {
	client *firestore.Client
	l      log.Logger
	now    func() time.Time
}

// New creates a new Firestore-backed Repository for the task domain.
func New(client *firestore.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("task/repository/firestore: client is required")
	}
	return &implRepository{client: client, l: l, now: time.Now}
}

func (r *implRepository) tasks() *firestore.CollectionRef {
	return r.client.Collection(collectionTasks)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/firestore.%s", method)
}
