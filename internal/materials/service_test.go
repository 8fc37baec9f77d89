package materials

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	uploads  int
	failWith error
}

func (f *fakeObjectStore) Upload(ctx context.Context, userID, filename, contentType string, data []byte) (string, error) {
	f.uploads++
	if f.failWith != nil {
		return "", f.failWith
	}
	return "http://storage.local/materials/" + userID + "/" + filename, nil
}

type fakeStore struct {
	materials    int
	chunks       []ChunkRecord
	failMaterial error
	failChunks   error
}

func (f *fakeStore) CreateMaterial(ctx context.Context, ownerID uuid.UUID, title, storageURL, rawText string) (int, error) {
	if f.failMaterial != nil {
		return 0, f.failMaterial
	}
	f.materials++
	return 42, nil
}

func (f *fakeStore) CreateChunks(ctx context.Context, materialID int, chunks []ChunkRecord) (int, error) {
	if f.failChunks != nil {
		return 0, f.failChunks
	}
	f.chunks = append(f.chunks, chunks...)
	return len(chunks), nil
}

func newService(storage *fakeObjectStore, store *fakeStore) *Service {
	return &Service{
		Storage:  storage,
		Store:    store,
		MaxChars: 1200,
		Overlap:  200,
		MinChars: 100,
	}
}

func ingestReq(data []byte) IngestRequest {
	return IngestRequest{
		OwnerID:     uuid.New(),
		Title:       "Biology notes",
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Data:        data,
	}
}

func TestIngestHappyPath(t *testing.T) {
	storage := &fakeObjectStore{}
	store := &fakeStore{}
	svc := newService(storage, store)

	text := strings.Repeat("photosynthesis is the process plants use to convert light ", 40)
	res, err := svc.Ingest(context.Background(), ingestReq([]byte(text)))

	require.NoError(t, err)
	assert.Equal(t, 42, res.MaterialID)
	assert.Equal(t, len(store.chunks), res.ChunkCount)
	assert.Greater(t, res.ChunkCount, 1)
	assert.Contains(t, res.StorageURL, "notes.txt")

	for i, c := range store.chunks {
		assert.Equal(t, i, c.Index)
		assert.NotEmpty(t, c.Content)
		assert.Len(t, c.ContentHash, 64)
	}
}

func TestIngestRejectsShortText(t *testing.T) {
	storage := &fakeObjectStore{}
	store := &fakeStore{}
	svc := newService(storage, store)

	_, err := svc.Ingest(context.Background(), ingestReq([]byte("too short")))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientText)
	// The material record must not exist for an unusable file.
	assert.Zero(t, store.materials)
	assert.Empty(t, store.chunks)
}

func TestIngestStorageFailureAbortsEverything(t *testing.T) {
	storage := &fakeObjectStore{failWith: errors.New("bucket unavailable")}
	store := &fakeStore{}
	svc := newService(storage, store)

	text := strings.Repeat("enough text to pass the minimum threshold easily ", 10)
	_, err := svc.Ingest(context.Background(), ingestReq([]byte(text)))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientText)
	assert.Zero(t, store.materials)
}

func TestIngestMaterialFailureAfterUpload(t *testing.T) {
	storage := &fakeObjectStore{}
	store := &fakeStore{failMaterial: errors.New("connection reset")}
	svc := newService(storage, store)

	text := strings.Repeat("enough text to pass the minimum threshold easily ", 10)
	_, err := svc.Ingest(context.Background(), ingestReq([]byte(text)))

	require.Error(t, err)
	// The upload already happened; the orphaned object is only logged.
	assert.Equal(t, 1, storage.uploads)
	assert.Empty(t, store.chunks)
}

func TestIngestChunkWindowing(t *testing.T) {
	storage := &fakeObjectStore{}
	store := &fakeStore{}
	svc := newService(storage, store)

	text := strings.Repeat("a", 1300)
	res, err := svc.Ingest(context.Background(), ingestReq([]byte(text)))

	require.NoError(t, err)
	require.Equal(t, 2, res.ChunkCount)
	assert.Len(t, store.chunks[0].Content, 1200)
	assert.Len(t, store.chunks[1].Content, 300)
	assert.NotEqual(t, store.chunks[0].ContentHash, store.chunks[1].ContentHash)
}
