package core

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"profiles-backend-go/internal/models"
)

// fakeCollectionRepo is an in-memory CollectionRepository that mimics the
// database contract: fresh ids on every insert, resolved timestamps, and
// descending order on reads. Call counters let tests assert that failed
// validation never reaches the database.
type fakeCollectionRepo struct {
	data         map[string][]models.Record
	nextID       int
	listCalls    int
	replaceCalls int
	replaceErr   error
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{data: make(map[string][]models.Record)}
}

func repoKey(ownerID, collection string) string {
	return ownerID + "/" + collection
}

func (f *fakeCollectionRepo) ListOrdered(_ context.Context, ownerID, collection, orderBy string) ([]models.Record, error) {
	f.listCalls++
	stored := f.data[repoKey(ownerID, collection)]
	out := make([]models.Record, 0, len(stored))
	for _, rec := range stored {
		cp := make(models.Record, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		out = append(out, cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return fmt.Sprint(out[i][orderBy]) > fmt.Sprint(out[j][orderBy])
	})
	return out, nil
}

func (f *fakeCollectionRepo) ReplaceAll(_ context.Context, ownerID, collection string, records []models.Record) error {
	f.replaceCalls++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	stored := make([]models.Record, 0, len(records))
	for _, rec := range records {
		cp := make(models.Record, len(rec)+1)
		for k, v := range rec {
			cp[k] = v
		}
		f.nextID++
		cp["id"] = fmt.Sprintf("doc-%d", f.nextID)
		cp["updatedAt"] = time.Now().UTC()
		stored = append(stored, cp)
	}
	f.data[repoKey(ownerID, collection)] = stored
	return nil
}

func newTestCollectionService(repo *fakeCollectionRepo) CollectionService {
	return NewCollectionService(models.Articles, repo, zap.NewNop())
}

func TestCollectionService_List_NeverWritten(t *testing.T) {
	repo := newFakeCollectionRepo()
	svc := newTestCollectionService(repo)

	records, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestCollectionService_List_AnonymousSkipsDatabase(t *testing.T) {
	repo := newFakeCollectionRepo()
	svc := newTestCollectionService(repo)

	records, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, records)
	require.Zero(t, repo.listCalls)
}

func TestCollectionService_ReplaceAll_NilPayload(t *testing.T) {
	repo := newFakeCollectionRepo()
	svc := newTestCollectionService(repo)

	_, err := svc.ReplaceAll(context.Background(), "u1", nil)
	require.ErrorIs(t, err, ErrInvalidPayload)
	require.Zero(t, repo.replaceCalls)
}

func TestCollectionService_ReplaceAll_ThenList_DescendingOrder(t *testing.T) {
	repo := newFakeCollectionRepo()
	svc := newTestCollectionService(repo)

	saved, err := svc.ReplaceAll(context.Background(), "u1", []models.Record{
		{"title": "A", "publicationDate": "2024-01-01"},
		{"title": "B", "publicationDate": "2023-01-01"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	require.Equal(t, "A", saved[0]["title"])
	require.Equal(t, "B", saved[1]["title"])

	listed, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, "A", listed[0]["title"])
	require.Equal(t, "B", listed[1]["title"])
}

func TestCollectionService_ReplaceAll_DiscardsPreviousContent(t *testing.T) {
	repo := newFakeCollectionRepo()
	svc := newTestCollectionService(repo)

	_, err := svc.ReplaceAll(context.Background(), "u1", []models.Record{
		{"title": "old", "publicationDate": "2020-01-01"},
	})
	require.NoError(t, err)

	saved, err := svc.ReplaceAll(context.Background(), "u1", []models.Record{
		{"title": "new-1", "publicationDate": "2024-06-01"},
		{"title": "new-2", "publicationDate": "2024-05-01"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	for _, rec := range saved {
		require.NotEqual(t, "old", rec["title"])
	}
}

func TestCollectionService_ReplaceAll_StripsClientIDs(t *testing.T) {
	repo := newFakeCollectionRepo()
	svc := newTestCollectionService(repo)

	saved, err := svc.ReplaceAll(context.Background(), "u1", []models.Record{
		{"id": "client-supplied", "title": "A", "publicationDate": "2024-01-01"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.NotEqual(t, "client-supplied", saved[0]["id"])
}

func TestCollectionService_ReplaceAll_ContentIdempotentIdentityFresh(t *testing.T) {
	repo := newFakeCollectionRepo()
	svc := newTestCollectionService(repo)

	payload := []models.Record{
		{"title": "A", "publicationDate": "2024-01-01"},
		{"title": "B", "publicationDate": "2023-01-01"},
	}

	first, err := svc.ReplaceAll(context.Background(), "u1", payload)
	require.NoError(t, err)
	second, err := svc.ReplaceAll(context.Background(), "u1", payload)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	firstIDs := map[any]bool{}
	for _, rec := range first {
		firstIDs[rec["id"]] = true
	}
	for i, rec := range second {
		require.False(t, firstIDs[rec["id"]], "identifiers must be freshly assigned")
		require.Equal(t, first[i]["title"], rec["title"])
		require.Equal(t, first[i]["publicationDate"], rec["publicationDate"])
	}
}

func TestCollectionService_ReplaceAll_EmptyArrayClearsCollection(t *testing.T) {
	repo := newFakeCollectionRepo()
	svc := newTestCollectionService(repo)

	_, err := svc.ReplaceAll(context.Background(), "u1", []models.Record{
		{"title": "A", "publicationDate": "2024-01-01"},
	})
	require.NoError(t, err)

	saved, err := svc.ReplaceAll(context.Background(), "u1", []models.Record{})
	require.NoError(t, err)
	require.Empty(t, saved)

	listed, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestCollectionService_ReplaceAll_RepoFailureSurfaces(t *testing.T) {
	repo := newFakeCollectionRepo()
	repo.replaceErr = fmt.Errorf("backend unavailable")
	svc := newTestCollectionService(repo)

	_, err := svc.ReplaceAll(context.Background(), "u1", []models.Record{{"title": "A"}})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidPayload)
}
