// Package storage provides the Cloud Storage implementation of the blob
// store the upload endpoint writes to.
package storage

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSBlobStore writes byte streams into one Cloud Storage bucket and returns
// their public URLs.
type GCSBlobStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewGCSBlobStore creates a blob store backed by the named bucket.
func NewGCSBlobStore(client *gcs.Client, bucketName string) *GCSBlobStore {
	return &GCSBlobStore{bucket: client.Bucket(bucketName), bucketName: bucketName}
}

// Upload streams r into the object at objectPath and returns the public URL.
func (s *GCSBlobStore) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	w := s.bucket.Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object '%s': %w", objectPath, err)
	}
	// The write is not committed until Close returns.
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object '%s': %w", objectPath, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectPath), nil
}
