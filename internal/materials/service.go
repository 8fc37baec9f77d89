package materials

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"study-rag/services/chunker"
	"study-rag/services/extract"
)

// ErrInsufficientText means the uploaded file is not a usable text document:
// either nothing could be extracted or the result falls below the configured
// minimum. It is an input problem, not a transient failure.
var ErrInsufficientText = errors.New("file does not contain enough extractable text")

// ObjectStore is the object-storage collaborator the ingest flow writes to.
type ObjectStore interface {
	Upload(ctx context.Context, userID, filename, contentType string, data []byte) (string, error)
}

// Store is the persistence surface the ingest flow needs.
type Store interface {
	CreateMaterial(ctx context.Context, ownerID uuid.UUID, title, storageURL, rawText string) (int, error)
	CreateChunks(ctx context.Context, materialID int, chunks []ChunkRecord) (int, error)
}

// ChunkRecord is one chunk prepared for batch insertion. Embeddings are
// filled in later by the backfill job.
type ChunkRecord struct {
	Index       int
	Content     string
	ContentHash string
}

// Service runs the ingest pipeline: store the file, extract its text,
// persist the material record, chunk the text, persist the chunks.
type Service struct {
	Storage ObjectStore
	Store   Store

	MaxChars int
	Overlap  int
	MinChars int
}

type IngestRequest struct {
	OwnerID     uuid.UUID
	Title       string
	Filename    string
	ContentType string
	Data        []byte
}

type IngestResult struct {
	MaterialID int
	StorageURL string
	ChunkCount int
}

// Ingest executes the pipeline stages in order. Each stage's side effect is
// durable once its call returns; there is no compensating rollback, so a
// failure after the storage write leaves an orphaned object, which is logged
// for manual cleanup.
func (s *Service) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	log := logrus.WithFields(logrus.Fields{
		"owner_id": req.OwnerID,
		"title":    req.Title,
		"filename": req.Filename,
	})
	log.Info("service: ingesting material")

	storageURL, err := s.Storage.Upload(ctx, req.OwnerID.String(), req.Filename, req.ContentType, req.Data)
	if err != nil {
		log.WithError(err).Error("service: failed to upload file to storage")
		return nil, fmt.Errorf("could not store file: %w", err)
	}

	rawText, err := extract.Text(req.Filename, req.Data)
	if err != nil {
		log.WithError(err).WithField("storage_url", storageURL).
			Warn("service: text extraction failed, stored object is orphaned")
		return nil, fmt.Errorf("%w: %v", ErrInsufficientText, err)
	}
	if len(chunker.Normalize(rawText)) < s.MinChars {
		log.WithField("storage_url", storageURL).
			Warn("service: extracted text below minimum, stored object is orphaned")
		return nil, ErrInsufficientText
	}

	materialID, err := s.Store.CreateMaterial(ctx, req.OwnerID, req.Title, storageURL, rawText)
	if err != nil {
		log.WithError(err).WithField("storage_url", storageURL).
			Error("service: failed to persist material, stored object is orphaned")
		return nil, fmt.Errorf("could not create material: %w", err)
	}
	log = log.WithField("material_id", materialID)

	texts := chunker.Split(rawText, s.MaxChars, s.Overlap)
	records := make([]ChunkRecord, len(texts))
	for i, t := range texts {
		records[i] = ChunkRecord{
			Index:       i,
			Content:     t,
			ContentHash: contentHash(t),
		}
	}

	count, err := s.Store.CreateChunks(ctx, materialID, records)
	if err != nil {
		log.WithError(err).Error("service: failed to persist chunks")
		return nil, fmt.Errorf("could not create chunks: %w", err)
	}

	log.WithField("chunk_count", count).Info("service: material ingested successfully")
	return &IngestResult{
		MaterialID: materialID,
		StorageURL: storageURL,
		ChunkCount: count,
	}, nil
}

func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x", sum)
}
