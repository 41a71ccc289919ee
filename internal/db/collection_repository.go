package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"profiles-backend-go/internal/models"
)

const usersCollection = "users"

// firestoreCollectionRepository implements CollectionRepository on Firestore
// sub-collections under users/{owner}.
type firestoreCollectionRepository struct {
	client *firestore.Client
}

// NewFirestoreCollectionRepository creates a new firestoreCollectionRepository.
func NewFirestoreCollectionRepository(client *firestore.Client) CollectionRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CollectionRepository.")
	}
	return &firestoreCollectionRepository{client: client}
}

func (r *firestoreCollectionRepository) ownerCollection(ownerID, collection string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(ownerID).Collection(collection)
}

// ListOrdered returns every record under users/{owner}/{collection},
// descending by orderBy. Querying a collection that does not exist simply
// yields no documents.
func (r *firestoreCollectionRepository) ListOrdered(ctx context.Context, ownerID, collection, orderBy string) ([]models.Record, error) {
	iter := r.ownerCollection(ownerID, collection).OrderBy(orderBy, firestore.Desc).Documents(ctx)
	defer iter.Stop()

	records := []models.Record{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate %s for owner '%s': %w", collection, ownerID, err)
		}
		rec := models.Record(doc.Data())
		rec["id"] = doc.Ref.ID
		records = append(records, rec)
	}
	return records, nil
}

// ReplaceAll deletes every existing document in the collection and creates
// the given records, all inside one transaction. Concurrent readers observe
// either the previous collection or the new one, never a mix.
func (r *firestoreCollectionRepository) ReplaceAll(ctx context.Context, ownerID, collection string, records []models.Record) error {
	col := r.ownerCollection(ownerID, collection)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// Firestore transactions require all reads before the first write.
		iter := tx.Documents(col)
		defer iter.Stop()

		var existing []*firestore.DocumentRef
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return err
			}
			existing = append(existing, doc.Ref)
		}

		for _, ref := range existing {
			if err := tx.Delete(ref); err != nil {
				return err
			}
		}
		for _, rec := range records {
			if err := tx.Create(col.NewDoc(), map[string]any(rec)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace %s for owner '%s': %w", collection, ownerID, err)
	}
	return nil
}
