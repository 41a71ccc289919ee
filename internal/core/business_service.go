package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"profiles-backend-go/internal/db"
	"profiles-backend-go/internal/models"
)

// businessService implements BusinessService.
type businessService struct {
	repo   db.BusinessRepository
	logger *zap.Logger
}

// NewBusinessService creates a new businessService.
func NewBusinessService(repo db.BusinessRepository, logger *zap.Logger) BusinessService {
	return &businessService{repo: repo, logger: logger}
}

func (s *businessService) ListByOwner(ctx context.Context, ownerID string) ([]models.Record, error) {
	records, err := s.repo.ListByCreator(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to list businesses", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (s *businessService) Create(ctx context.Context, ownerID string, fields models.Record) (models.Record, error) {
	name, _ := fields["name"].(string)
	address, _ := fields["address"].(string)
	if name == "" || address == "" {
		return nil, fmt.Errorf("%w: missing required fields: name and address", ErrInvalidPayload)
	}

	data := models.Record{
		"name":      name,
		"address":   address,
		"createdBy": ownerID,
		"createdAt": db.ServerTimestamp,
	}
	id, err := s.repo.Create(ctx, data)
	if err != nil {
		s.logger.Error("failed to create business", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, err
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to read back business", zap.String("ownerID", ownerID), zap.String("businessID", id), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (s *businessService) GetByID(ctx context.Context, ownerID, businessID string) (models.Record, error) {
	rec, err := s.repo.GetByID(ctx, businessID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error("failed to get business", zap.String("businessID", businessID), zap.Error(err))
		return nil, err
	}
	if creator, _ := rec["createdBy"].(string); creator != ownerID {
		return nil, ErrForbidden
	}
	return rec, nil
}
