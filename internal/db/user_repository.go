package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"profiles-backend-go/internal/models"
)

// firestoreUserDocRepository implements UserDocRepository for the root user
// document at users/{owner}. The Firebase Auth UID is the document id.
type firestoreUserDocRepository struct {
	client *firestore.Client
}

// NewFirestoreUserDocRepository creates a new firestoreUserDocRepository.
func NewFirestoreUserDocRepository(client *firestore.Client) UserDocRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserDocRepository.")
	}
	return &firestoreUserDocRepository{client: client}
}

// Get returns the root user document with its id merged in, or ErrNotFound.
func (r *firestoreUserDocRepository) Get(ctx context.Context, ownerID string) (models.Record, error) {
	snap, err := r.client.Collection(usersCollection).Doc(ownerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user document '%s': %w", ownerID, err)
	}
	rec := models.Record(snap.Data())
	rec["id"] = snap.Ref.ID
	return rec, nil
}

// SetMerge merges the supplied fields into the root user document, creating
// it when absent.
func (r *firestoreUserDocRepository) SetMerge(ctx context.Context, ownerID string, fields models.Record) error {
	_, err := r.client.Collection(usersCollection).Doc(ownerID).Set(ctx, map[string]any(fields), firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to merge user document '%s': %w", ownerID, err)
	}
	return nil
}
