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

// firestoreDocumentRepository implements DocumentRepository for per-owner
// single documents at users/{owner}/{collection}/{docID}.
type firestoreDocumentRepository struct {
	client *firestore.Client
}

// NewFirestoreDocumentRepository creates a new firestoreDocumentRepository.
func NewFirestoreDocumentRepository(client *firestore.Client) DocumentRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for DocumentRepository.")
	}
	return &firestoreDocumentRepository{client: client}
}

func (r *firestoreDocumentRepository) docRef(ownerID, collection, docID string) *firestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(ownerID).Collection(collection).Doc(docID)
}

// Get returns the stored document, or ErrNotFound when it does not exist.
func (r *firestoreDocumentRepository) Get(ctx context.Context, ownerID, collection, docID string) (models.Record, error) {
	snap, err := r.docRef(ownerID, collection, docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s/%s for owner '%s': %w", collection, docID, ownerID, err)
	}
	return models.Record(snap.Data()), nil
}

// SetMerge applies a field-level merge; only the supplied fields change. The
// document is created when it does not exist yet.
func (r *firestoreDocumentRepository) SetMerge(ctx context.Context, ownerID, collection, docID string, fields models.Record) error {
	_, err := r.docRef(ownerID, collection, docID).Set(ctx, map[string]any(fields), firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to merge %s/%s for owner '%s': %w", collection, docID, ownerID, err)
	}
	return nil
}
