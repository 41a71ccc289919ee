package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"profiles-backend-go/internal/db"
	"profiles-backend-go/internal/models"
)

// profileService implements ProfileService over the root user document. The
// profile and users endpoints share it; both operate on users/{owner}.
type profileService struct {
	repo   db.UserDocRepository
	users  UserGetter
	logger *zap.Logger
}

// NewProfileService creates a new profileService.
func NewProfileService(repo db.UserDocRepository, users UserGetter, logger *zap.Logger) ProfileService {
	return &profileService{repo: repo, users: users, logger: logger}
}

func (s *profileService) Update(ctx context.Context, ownerID string, fields models.Record) (models.Record, error) {
	if fields == nil {
		return nil, fmt.Errorf("%w: body must be an object", ErrInvalidPayload)
	}

	data := models.Record{"updatedAt": db.ServerTimestamp}
	if name, ok := fields["name"]; ok {
		data["name"] = name
	}
	if emails, ok := fields["emails"]; ok {
		// emails is always stored as an array, even when the client sent
		// something else.
		if list, isList := emails.([]any); isList {
			data["emails"] = list
		} else {
			data["emails"] = []any{}
		}
	}

	_, err := s.repo.Get(ctx, ownerID)
	if errors.Is(err, db.ErrNotFound) {
		// First write: stamp creation and backfill unsupplied fields.
		data["createdAt"] = db.ServerTimestamp
		if _, ok := data["name"]; !ok {
			data["name"] = ""
		}
		if _, ok := data["emails"]; !ok {
			data["emails"] = []any{}
		}
	} else if err != nil {
		s.logger.Error("failed to check profile existence", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.SetMerge(ctx, ownerID, data); err != nil {
		s.logger.Error("failed to merge profile", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, err
	}
	return s.readBack(ctx, ownerID)
}

func (s *profileService) UpdateContact(ctx context.Context, ownerID string, phoneNumber any) (models.Record, error) {
	data := models.Record{
		"phoneNumber": phoneNumber,
		"createdAt":   db.ServerTimestamp,
	}
	if err := s.repo.SetMerge(ctx, ownerID, data); err != nil {
		s.logger.Error("failed to merge contact details", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, err
	}
	return s.readBack(ctx, ownerID)
}

func (s *profileService) GetByID(ctx context.Context, requesterID, userID string) (models.Record, error) {
	if userID != requesterID {
		return nil, ErrForbidden
	}

	rec, err := s.repo.Get(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return s.createShell(ctx, userID)
	}
	if err != nil {
		s.logger.Error("failed to get profile", zap.String("ownerID", userID), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (s *profileService) GetStored(ctx context.Context, requesterID, userID string) (models.Record, error) {
	if userID != requesterID {
		return nil, ErrForbidden
	}

	rec, err := s.repo.Get(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error("failed to get user document", zap.String("ownerID", userID), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// createShell builds and persists a minimal profile from the identity
// provider's user record, so a first GET after signup returns usable data.
func (s *profileService) createShell(ctx context.Context, userID string) (models.Record, error) {
	authUser, err := s.users.GetUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to fetch auth user for shell profile", zap.String("ownerID", userID), zap.Error(err))
		return nil, err
	}

	emails := []any{}
	if authUser.Email != "" {
		emails = append(emails, map[string]any{
			"address":  authUser.Email,
			"verified": authUser.EmailVerified,
		})
	}
	shell := models.Record{
		"phoneNumber": authUser.PhoneNumber,
		"name":        authUser.DisplayName,
		"emails":      emails,
		"createdAt":   db.ServerTimestamp,
		"updatedAt":   db.ServerTimestamp,
	}

	if err := s.repo.SetMerge(ctx, userID, shell); err != nil {
		s.logger.Error("failed to persist shell profile", zap.String("ownerID", userID), zap.Error(err))
		return nil, err
	}
	return s.readBack(ctx, userID)
}

func (s *profileService) readBack(ctx context.Context, ownerID string) (models.Record, error) {
	rec, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to read back profile", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, err
	}
	return rec, nil
}
