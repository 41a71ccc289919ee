package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"profiles-backend-go/internal/db"
	"profiles-backend-go/internal/models"
)

// documentService implements DocumentService for one DocumentSpec, the
// degenerate single-document variant of the collection pattern.
type documentService struct {
	spec   models.DocumentSpec
	repo   db.DocumentRepository
	logger *zap.Logger
}

// NewDocumentService creates a DocumentService for the given resource.
func NewDocumentService(spec models.DocumentSpec, repo db.DocumentRepository, logger *zap.Logger) DocumentService {
	return &documentService{spec: spec, repo: repo, logger: logger}
}

func (s *documentService) Spec() models.DocumentSpec {
	return s.spec
}

func (s *documentService) GetOrDefault(ctx context.Context, ownerID string) (models.Record, error) {
	if ownerID == "" {
		return s.spec.Default(), nil
	}
	rec, err := s.repo.Get(ctx, ownerID, s.spec.Collection, s.spec.DocID)
	if errors.Is(err, db.ErrNotFound) {
		return s.spec.Default(), nil
	}
	if err != nil {
		s.logger.Error("failed to get document",
			zap.String("collection", s.spec.Collection),
			zap.String("ownerID", ownerID),
			zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (s *documentService) MergeUpdate(ctx context.Context, ownerID string, fields models.Record) (models.Record, error) {
	if fields == nil {
		return nil, fmt.Errorf("%w: body must be an object", ErrInvalidPayload)
	}
	if s.spec.Required != "" {
		if _, ok := fields[s.spec.Required]; !ok {
			return nil, fmt.Errorf("%w: field %q is required", ErrInvalidPayload, s.spec.Required)
		}
	}

	data := fields.WithoutID()
	data["updatedAt"] = db.ServerTimestamp

	if err := s.repo.SetMerge(ctx, ownerID, s.spec.Collection, s.spec.DocID, data); err != nil {
		s.logger.Error("failed to merge document",
			zap.String("collection", s.spec.Collection),
			zap.String("ownerID", ownerID),
			zap.Error(err))
		return nil, err
	}

	rec, err := s.repo.Get(ctx, ownerID, s.spec.Collection, s.spec.DocID)
	if err != nil {
		s.logger.Error("failed to read back document after merge",
			zap.String("collection", s.spec.Collection),
			zap.String("ownerID", ownerID),
			zap.Error(err))
		return nil, err
	}
	return rec, nil
}
