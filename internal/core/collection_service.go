package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"profiles-backend-go/internal/db"
	"profiles-backend-go/internal/models"
)

// collectionService implements CollectionService for one CollectionSpec. The
// per-resource services in the original system were copies of this exact
// logic; here they are three instances of one type.
type collectionService struct {
	spec   models.CollectionSpec
	repo   db.CollectionRepository
	logger *zap.Logger
}

// NewCollectionService creates a CollectionService for the given resource.
func NewCollectionService(spec models.CollectionSpec, repo db.CollectionRepository, logger *zap.Logger) CollectionService {
	return &collectionService{spec: spec, repo: repo, logger: logger}
}

func (s *collectionService) Spec() models.CollectionSpec {
	return s.spec
}

func (s *collectionService) List(ctx context.Context, ownerID string) ([]models.Record, error) {
	// Anonymous callers on soft-auth routes see an empty collection without a
	// database round trip.
	if ownerID == "" {
		return []models.Record{}, nil
	}
	records, err := s.repo.ListOrdered(ctx, ownerID, s.spec.Name, s.spec.OrderBy)
	if err != nil {
		s.logger.Error("failed to list collection",
			zap.String("collection", s.spec.Name),
			zap.String("ownerID", ownerID),
			zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (s *collectionService) ReplaceAll(ctx context.Context, ownerID string, newRecords []models.Record) ([]models.Record, error) {
	if newRecords == nil {
		return nil, fmt.Errorf("%w: body must contain an array of %s", ErrInvalidPayload, s.spec.PayloadKey)
	}

	// Client-supplied ids are stripped; the database assigns fresh ones and
	// stamps updatedAt at commit time.
	prepared := make([]models.Record, 0, len(newRecords))
	for _, rec := range newRecords {
		data := rec.WithoutID()
		data["updatedAt"] = db.ServerTimestamp
		prepared = append(prepared, data)
	}

	if err := s.repo.ReplaceAll(ctx, ownerID, s.spec.Name, prepared); err != nil {
		s.logger.Error("failed to replace collection",
			zap.String("collection", s.spec.Name),
			zap.String("ownerID", ownerID),
			zap.Error(err))
		return nil, err
	}

	// Re-read so the response carries the canonical order and the resolved
	// server timestamps.
	records, err := s.repo.ListOrdered(ctx, ownerID, s.spec.Name, s.spec.OrderBy)
	if err != nil {
		s.logger.Error("failed to read back collection after replace",
			zap.String("collection", s.spec.Name),
			zap.String("ownerID", ownerID),
			zap.Error(err))
		return nil, err
	}
	return records, nil
}
