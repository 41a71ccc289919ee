package db

import (
	"context"

	"cloud.google.com/go/firestore"

	"profiles-backend-go/internal/models"
)

// ServerTimestamp marks a field to be stamped by the database at commit time.
// Re-exported so the service layer can request server timestamps without
// importing the Firestore driver directly.
var ServerTimestamp = firestore.ServerTimestamp

// CollectionRepository is the storage surface for owner-scoped, ordered
// sub-collections (users/{owner}/{collection}).
type CollectionRepository interface {
	// ListOrdered returns every record in the collection, descending by
	// orderBy, with the document id merged in as "id". A collection that was
	// never written yields an empty slice.
	ListOrdered(ctx context.Context, ownerID, collection, orderBy string) ([]models.Record, error)
	// ReplaceAll atomically deletes every existing document and creates the
	// given records with fresh server-assigned ids. Either the whole
	// replacement commits or none of it does.
	ReplaceAll(ctx context.Context, ownerID, collection string, records []models.Record) error
}

// DocumentRepository is the storage surface for single documents stored once
// per owner under a fixed path (users/{owner}/{collection}/{docID}).
type DocumentRepository interface {
	Get(ctx context.Context, ownerID, collection, docID string) (models.Record, error)
	SetMerge(ctx context.Context, ownerID, collection, docID string, fields models.Record) error
}

// UserDocRepository is the storage surface for the per-owner root document
// (users/{owner}).
type UserDocRepository interface {
	Get(ctx context.Context, ownerID string) (models.Record, error)
	SetMerge(ctx context.Context, ownerID string, fields models.Record) error
}

// BusinessRepository is the storage surface for the top-level businesses
// collection, partitioned by the createdBy field.
type BusinessRepository interface {
	ListByCreator(ctx context.Context, ownerID string) ([]models.Record, error)
	Create(ctx context.Context, fields models.Record) (string, error)
	GetByID(ctx context.Context, businessID string) (models.Record, error)
}
