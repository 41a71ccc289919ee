package db

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"profiles-backend-go/internal/config"
)

// Clients bundles the external collaborators the services depend on. It is
// constructed once at startup and passed down explicitly; there is no
// package-level singleton, so tests and shutdown stay deterministic.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
	Storage   *gcs.Client
}

// NewClients initializes the Firebase Admin SDK and returns the Firestore,
// Auth and Cloud Storage clients. Credentials are resolved from a service
// account file, a base64-encoded service account JSON, or Application
// Default Credentials, in that order.
func NewClients(ctx context.Context, appConfig *config.Config) (*Clients, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("NewClients: appConfig cannot be nil")
	}

	var opts []option.ClientOption
	if appConfig.GoogleApplicationCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(appConfig.GoogleApplicationCredentials))
	} else if appConfig.FirebaseServiceAccountJSONBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(appConfig.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT_JSON_BASE64: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	}
	// With no explicit option the SDK falls back to ADC, which is the normal
	// setup on GCE, GKE and Cloud Run.

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     appConfig.FirebaseProjectID,
		StorageBucket: appConfig.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("app.Auth: %w", err)
	}

	storageClient, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}

	return &Clients{
		Firestore: fsClient,
		Auth:      authClient,
		Storage:   storageClient,
	}, nil
}

// Close releases every underlying client. Safe to call exactly once during
// shutdown.
func (c *Clients) Close() error {
	var firstErr error
	if err := c.Firestore.Close(); err != nil {
		firstErr = err
	}
	if err := c.Storage.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
