package core

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBlobStore records uploads instead of writing to a bucket.
type fakeBlobStore struct {
	objects map[string]string
	calls   int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string]string)}
}

func (f *fakeBlobStore) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	f.calls++
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.objects[objectPath] = string(data)
	return "https://storage.googleapis.com/test-bucket/" + objectPath, nil
}

func TestStorageService_Upload(t *testing.T) {
	blobs := newFakeBlobStore()
	svc := NewStorageService(blobs, zap.NewNop())

	url, err := svc.Upload(context.Background(), "u1", "cv.pdf", "application/pdf", 11, strings.NewReader("hello world"))
	require.NoError(t, err)
	require.Contains(t, url, "https://storage.googleapis.com/test-bucket/u1/")
	require.Contains(t, url, "-cv.pdf")
	require.Len(t, blobs.objects, 1)
	for path, content := range blobs.objects {
		require.True(t, strings.HasPrefix(path, "u1/"))
		require.Equal(t, "hello world", content)
	}
}

func TestStorageService_Upload_RepeatedFilenamesDoNotCollide(t *testing.T) {
	blobs := newFakeBlobStore()
	svc := NewStorageService(blobs, zap.NewNop())

	_, err := svc.Upload(context.Background(), "u1", "cv.pdf", "application/pdf", 1, strings.NewReader("a"))
	require.NoError(t, err)
	_, err = svc.Upload(context.Background(), "u1", "cv.pdf", "application/pdf", 1, strings.NewReader("b"))
	require.NoError(t, err)
	require.Len(t, blobs.objects, 2)
}

func TestStorageService_Upload_OversizedRejectedBeforeStreaming(t *testing.T) {
	blobs := newFakeBlobStore()
	svc := NewStorageService(blobs, zap.NewNop())

	_, err := svc.Upload(context.Background(), "u1", "big.bin", "application/octet-stream", MaxUploadBytes+1, strings.NewReader(""))
	require.ErrorIs(t, err, ErrInvalidPayload)
	require.Zero(t, blobs.calls)
}
