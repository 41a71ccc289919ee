package core

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadBytes is the ceiling for a single uploaded file (5 MiB).
const MaxUploadBytes = 5 << 20

// storageService implements StorageService on top of a BlobStore.
type storageService struct {
	blobs  BlobStore
	logger *zap.Logger
}

// NewStorageService creates a new storageService.
func NewStorageService(blobs BlobStore, logger *zap.Logger) StorageService {
	return &storageService{blobs: blobs, logger: logger}
}

func (s *storageService) Upload(ctx context.Context, ownerID, filename, contentType string, size int64, r io.Reader) (string, error) {
	if size > MaxUploadBytes {
		return "", fmt.Errorf("%w: file exceeds the %d byte limit", ErrInvalidPayload, MaxUploadBytes)
	}

	// Objects live under the owner's namespace; the random prefix keeps
	// repeated uploads of the same filename from colliding.
	objectPath := fmt.Sprintf("%s/%s-%s", ownerID, uuid.NewString(), filename)

	url, err := s.blobs.Upload(ctx, objectPath, contentType, io.LimitReader(r, MaxUploadBytes))
	if err != nil {
		s.logger.Error("failed to upload file",
			zap.String("ownerID", ownerID),
			zap.String("object", objectPath),
			zap.Error(err))
		return "", err
	}
	return url, nil
}
