// Package firebase opens Firestore clients through the Firebase Admin SDK.
package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebasesdk "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Config holds the Firebase project settings.
// An empty CredentialsPath falls back to Application Default Credentials.
type Config struct {
	ProjectID       string
	CredentialsPath string
}

// NewFirestore initializes the Firebase app and returns its Firestore client.
func NewFirestore(ctx context.Context, cfg Config) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firebase: project id is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebasesdk.NewApp(ctx, &firebasesdk.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: init app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: firestore client: %w", err)
	}
	return client, nil
}
