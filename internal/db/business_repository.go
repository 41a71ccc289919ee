package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"profiles-backend-go/internal/models"
)

const businessesCollection = "businesses"

// firestoreBusinessRepository implements BusinessRepository on the top-level
// businesses collection. Unlike the per-user sub-collections, ownership here
// is carried by the createdBy field.
type firestoreBusinessRepository struct {
	client *firestore.Client
}

// NewFirestoreBusinessRepository creates a new firestoreBusinessRepository.
func NewFirestoreBusinessRepository(client *firestore.Client) BusinessRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for BusinessRepository.")
	}
	return &firestoreBusinessRepository{client: client}
}

// ListByCreator returns every business whose createdBy equals ownerID.
func (r *firestoreBusinessRepository) ListByCreator(ctx context.Context, ownerID string) ([]models.Record, error) {
	iter := r.client.Collection(businessesCollection).Where("createdBy", "==", ownerID).Documents(ctx)
	defer iter.Stop()

	records := []models.Record{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate businesses for owner '%s': %w", ownerID, err)
		}
		rec := models.Record(doc.Data())
		rec["id"] = doc.Ref.ID
		records = append(records, rec)
	}
	return records, nil
}

// Create stores a new business document with an auto-generated id and
// returns that id.
func (r *firestoreBusinessRepository) Create(ctx context.Context, fields models.Record) (string, error) {
	docRef := r.client.Collection(businessesCollection).NewDoc()
	if _, err := docRef.Set(ctx, map[string]any(fields)); err != nil {
		return "", fmt.Errorf("failed to create business: %w", err)
	}
	return docRef.ID, nil
}

// GetByID returns one business document, or ErrNotFound.
func (r *firestoreBusinessRepository) GetByID(ctx context.Context, businessID string) (models.Record, error) {
	snap, err := r.client.Collection(businessesCollection).Doc(businessID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get business '%s': %w", businessID, err)
	}
	rec := models.Record(snap.Data())
	rec["id"] = snap.Ref.ID
	return rec, nil
}
