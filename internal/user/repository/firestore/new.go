package firestore

import (
	"fmt"
	"net/url"
	"time"

	"cloud.google.com/go/firestore"

	"taskflow/internal/user/repository"
	"taskflow/pkg/log"
)

const (
	collectionUsers = "users"
	// collectionUserEmails holds one document per email, keyed by the email,
	// so uniqueness can be enforced inside a transaction.
	collectionUserEmails = "user_emails"
)

type implRepository struct {
	client *firestore.Client
	l      log.Logger
	now    func() time.Time
}

// New creates a new Firestore-backed Repository for the user domain.
func New(client *firestore.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("user/repository/firestore: client is required")
	}
	return &implRepository{client: client, l: l, now: time.Now}
}

func (r *implRepository) users() *firestore.CollectionRef {
	return r.client.Collection(collectionUsers)
}

func (r *implRepository) emailRef(email string) *firestore.DocumentRef {
	return r.client.Collection(collectionUserEmails).Doc(url.PathEscape(email))
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/firestore.%s", method)
}
