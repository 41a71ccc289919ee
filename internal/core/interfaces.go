package core

import (
	"context"
	"io"

	"firebase.google.com/go/v4/auth"

	"profiles-backend-go/internal/models"
)

// CollectionService synchronizes one owner-scoped, ordered sub-collection.
// Three instances serve articles, educations and work experiences.
type CollectionService interface {
	// Spec exposes the resource parameters (payload key, ordering field) the
	// handler layer needs for request shaping.
	Spec() models.CollectionSpec
	// List returns the canonical descending listing; an anonymous owner or a
	// never-written collection yields an empty slice, never an error.
	List(ctx context.Context, ownerID string) ([]models.Record, error)
	// ReplaceAll replaces the collection's entire content with newRecords and
	// returns the resulting canonical listing. Identifiers are always freshly
	// assigned, so the operation is idempotent on content, not on identity.
	ReplaceAll(ctx context.Context, ownerID string, newRecords []models.Record) ([]models.Record, error)
}

// DocumentService manages a single per-owner document with merge-update
// semantics (the profession details document).
type DocumentService interface {
	Spec() models.DocumentSpec
	// GetOrDefault returns the stored document, or the resource default when
	// nothing is stored or the owner is anonymous. Never a not-found error.
	GetOrDefault(ctx context.Context, ownerID string) (models.Record, error)
	// MergeUpdate applies a partial field merge and returns the full
	// post-merge document.
	MergeUpdate(ctx context.Context, ownerID string, fields models.Record) (models.Record, error)
}

// ProfileService manages the root user document shared by the profile and
// users endpoints.
type ProfileService interface {
	// Update merges name/emails into the owner's profile, backfilling
	// defaults and a creation timestamp on first write.
	Update(ctx context.Context, ownerID string, fields models.Record) (models.Record, error)
	// UpdateContact merges the phone number into the owner's profile.
	UpdateContact(ctx context.Context, ownerID string, phoneNumber any) (models.Record, error)
	// GetByID returns the profile for userID, creating a shell profile from
	// the identity provider's user record when none is stored. Requesters may
	// only read their own profile.
	GetByID(ctx context.Context, requesterID, userID string) (models.Record, error)
	// GetStored is like GetByID but treats absence as ErrNotFound instead of
	// creating a shell.
	GetStored(ctx context.Context, requesterID, userID string) (models.Record, error)
}

// BusinessService manages the top-level businesses collection.
type BusinessService interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Record, error)
	Create(ctx context.Context, ownerID string, fields models.Record) (models.Record, error)
	GetByID(ctx context.Context, ownerID, businessID string) (models.Record, error)
}

// StorageService uploads user files to the blob store.
type StorageService interface {
	// Upload streams one file into the owner's namespace and returns its
	// public URL. Files above the size ceiling are rejected before any bytes
	// are sent.
	Upload(ctx context.Context, ownerID, filename, contentType string, size int64, r io.Reader) (string, error)
}

// BlobStore is the byte-stream collaborator behind StorageService.
type BlobStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// UserGetter is the slice of the identity provider the profile service needs
// for shell-profile creation. Satisfied by *auth.Client.
type UserGetter interface {
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
}
