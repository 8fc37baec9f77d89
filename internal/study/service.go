package study

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"study-rag/services/gemini"
	qdrantsvc "study-rag/services/qdrant"
)

var (
	// ErrNotFound: the material does not exist or belongs to another user.
	ErrNotFound = errors.New("material not found or access denied")

	// ErrNoRelevantContext: retrieval came back empty. An expected outcome
	// of sparse data, not an upstream failure; generation is skipped.
	ErrNoRelevantContext = errors.New("no relevant context found")

	// ErrEmbeddingUnavailable: the embedding model returned no vector for
	// the query text, so the dependent flow cannot proceed.
	ErrEmbeddingUnavailable = errors.New("failed to generate query embedding")

	// ErrEmptyTranscript: transcription failed or produced no text.
	ErrEmptyTranscript = errors.New("could not transcribe audio")

	// ErrTranscriberUnavailable: no transcription service is configured.
	ErrTranscriberUnavailable = errors.New("transcription service is not configured")
)

const (
	ToolTypeFlashcards      = "flashcards"
	ToolTypeFeynmanFeedback = "feynman_feedback"

	DefaultFlashcardQuery = "Create study flashcards on key concepts"

	// Snippets are joined with a visible separator so the model sees chunk
	// boundaries.
	contextSeparator = "\n\n---\n\n"
)

// Store is the persistence surface of the query-time flows.
type Store interface {
	MaterialExists(ctx context.Context, materialID int, ownerID uuid.UUID) (bool, error)
	PendingChunks(ctx context.Context, materialID int) ([]PendingChunk, error)
	SetChunkEmbedding(ctx context.Context, chunkID int, vector []float32) error
	SaveTool(ctx context.Context, materialID int, toolType string, payload json.RawMessage) (int, error)
}

// PendingChunk is a chunk still waiting for its embedding.
type PendingChunk struct {
	ID      int
	Content string
}

type Embedder interface {
	Embed(ctx context.Context, text string) []float32
}

type Retriever interface {
	Search(ctx context.Context, vector []float32, materialID, topK int) ([]string, error)
}

type Generator interface {
	Flashcards(ctx context.Context, contextText, query string, n int) (*gemini.FlashcardSet, error)
	Feedback(ctx context.Context, contextText, topic, explanation string) (string, error)
}

type VectorIndex interface {
	Upsert(ctx context.Context, vectors []qdrantsvc.ChunkVector) error
}

type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio []byte, language string) (string, error)
}

// Service sequences embedding, retrieval and generation. All collaborators
// are injected so tests can substitute fakes.
type Service struct {
	Store       Store
	Embedder    Embedder
	Retriever   Retriever
	Generator   Generator
	Index       VectorIndex
	Transcriber Transcriber

	TopK          int
	NumFlashcards int
	Workers       int
}

// BackfillEmbeddings embeds every chunk of a material that does not have an
// embedding yet, updating the chunk row and the vector index. Per-chunk
// failures are logged and skipped; the returned count is the number of
// chunks actually processed. Re-running after a partial failure only picks
// up the chunks still missing embeddings, so the job is idempotent.
func (s *Service) BackfillEmbeddings(ctx context.Context, materialID int, ownerID uuid.UUID) (int, error) {
	log := logrus.WithFields(logrus.Fields{
		"material_id": materialID,
		"owner_id":    ownerID,
	})

	if err := s.checkOwnership(ctx, materialID, ownerID); err != nil {
		return 0, err
	}

	chunks, err := s.Store.PendingChunks(ctx, materialID)
	if err != nil {
		log.WithError(err).Error("backfill: failed to load pending chunks")
		return 0, fmt.Errorf("could not load pending chunks: %w", err)
	}
	if len(chunks) == 0 {
		log.Info("backfill: no chunks without embeddings")
		return 0, nil
	}
	log.WithField("pending", len(chunks)).Info("backfill: embedding chunks")

	workers := s.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan PendingChunk, len(chunks))
	var processed int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ch := range jobs {
				if err := s.embedChunk(ctx, materialID, ownerID, ch); err != nil {
					log.WithError(err).WithField("chunk_id", ch.ID).Warn("backfill: skipping chunk")
					continue
				}
				atomic.AddInt64(&processed, 1)
			}
		}()
	}

	for _, ch := range chunks {
		jobs <- ch
	}
	close(jobs)
	wg.Wait()

	log.WithField("processed", processed).Info("backfill: finished")
	return int(processed), nil
}

func (s *Service) embedChunk(ctx context.Context, materialID int, ownerID uuid.UUID, ch PendingChunk) error {
	vector := s.Embedder.Embed(ctx, ch.Content)
	if len(vector) == 0 {
		return ErrEmbeddingUnavailable
	}

	// The index write goes first: the row's embedding is what marks the
	// chunk as done, so it must only be set once the vector is searchable.
	// A failure here leaves the chunk pending and a later run retries it;
	// the upsert is keyed by chunk ID, so the retry overwrites cleanly.
	err := s.Index.Upsert(ctx, []qdrantsvc.ChunkVector{{
		ChunkID:    ch.ID,
		MaterialID: materialID,
		UserID:     ownerID.String(),
		Text:       ch.Content,
		Vector:     vector,
	}})
	if err != nil {
		return fmt.Errorf("could not index embedding: %w", err)
	}

	if err := s.Store.SetChunkEmbedding(ctx, ch.ID, vector); err != nil {
		return fmt.Errorf("could not store embedding: %w", err)
	}
	return nil
}

// GenerationResult carries the persisted payload plus the diagnostic counts
// the endpoints report.
type GenerationResult struct {
	ToolType      string
	Payload       json.RawMessage
	ContextChunks int
	Saved         int
}

// GenerateFlashcards runs the full retrieve-then-generate flow for a
// flashcard set. topK <= 0 falls back to the configured default.
func (s *Service) GenerateFlashcards(ctx context.Context, materialID int, ownerID uuid.UUID, query string, topK int) (*GenerationResult, error) {
	if query == "" {
		query = DefaultFlashcardQuery
	}

	snippets, err := s.retrieve(ctx, materialID, ownerID, query, topK)
	if err != nil {
		return nil, err
	}

	set, err := s.Generator.Flashcards(ctx, joinContext(snippets), query, s.NumFlashcards)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("could not encode flashcards: %w", err)
	}

	return &GenerationResult{
		ToolType:      ToolTypeFlashcards,
		Payload:       payload,
		ContextChunks: len(snippets),
		Saved:         s.saveTool(ctx, materialID, ToolTypeFlashcards, payload),
	}, nil
}

type feedbackPayload struct {
	Feedback string `json:"feedback"`
}

// GenerateFeedback evaluates the student's explanation of a topic. The
// retrieval query combines topic and explanation deliberately: the student's
// own phrasing influences which context is fetched.
func (s *Service) GenerateFeedback(ctx context.Context, materialID int, ownerID uuid.UUID, topic, explanation string, topK int) (*GenerationResult, error) {
	combined := fmt.Sprintf("Topic: %s. Student explanation: %s", topic, explanation)

	snippets, err := s.retrieve(ctx, materialID, ownerID, combined, topK)
	if err != nil {
		return nil, err
	}

	feedback, err := s.Generator.Feedback(ctx, joinContext(snippets), topic, explanation)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(feedbackPayload{Feedback: feedback})
	if err != nil {
		return nil, fmt.Errorf("could not encode feedback: %w", err)
	}

	return &GenerationResult{
		ToolType:      ToolTypeFeynmanFeedback,
		Payload:       payload,
		ContextChunks: len(snippets),
		Saved:         s.saveTool(ctx, materialID, ToolTypeFeynmanFeedback, payload),
	}, nil
}

// GenerateFeedbackFromAudio transcribes the recording first and feeds the
// transcript into the regular feedback flow. It also returns the transcript
// so the caller can echo it back to the student.
func (s *Service) GenerateFeedbackFromAudio(ctx context.Context, materialID int, ownerID uuid.UUID, topic, filename string, audio []byte, language string, topK int) (*GenerationResult, string, error) {
	if s.Transcriber == nil {
		return nil, "", ErrTranscriberUnavailable
	}

	transcript, err := s.Transcriber.Transcribe(ctx, filename, audio, language)
	if err != nil {
		logrus.WithError(err).WithField("material_id", materialID).Warn("transcription failed")
		return nil, "", fmt.Errorf("%w: %v", ErrEmptyTranscript, err)
	}
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, "", ErrEmptyTranscript
	}

	result, err := s.GenerateFeedback(ctx, materialID, ownerID, topic, transcript, topK)
	return result, transcript, err
}

// retrieve is the shared front half of every generation flow: ownership
// check, query embedding, scoped similarity search. An empty search result
// surfaces as ErrNoRelevantContext so the generator is never invoked without
// context.
func (s *Service) retrieve(ctx context.Context, materialID int, ownerID uuid.UUID, queryText string, topK int) ([]string, error) {
	if err := s.checkOwnership(ctx, materialID, ownerID); err != nil {
		return nil, err
	}

	vector := s.Embedder.Embed(ctx, queryText)
	if len(vector) == 0 {
		return nil, ErrEmbeddingUnavailable
	}

	if topK <= 0 {
		topK = s.TopK
	}

	snippets, err := s.Retriever.Search(ctx, vector, materialID, topK)
	if err != nil {
		return nil, fmt.Errorf("retrieval failed: %w", err)
	}
	if len(snippets) == 0 {
		return nil, ErrNoRelevantContext
	}
	return snippets, nil
}

func (s *Service) checkOwnership(ctx context.Context, materialID int, ownerID uuid.UUID) error {
	ok, err := s.Store.MaterialExists(ctx, materialID, ownerID)
	if err != nil {
		return fmt.Errorf("could not verify material: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// saveTool persists the generated artifact. A save failure is logged and
// reported through the save count rather than failing the request: the
// generated payload is still returned to the user.
func (s *Service) saveTool(ctx context.Context, materialID int, toolType string, payload json.RawMessage) int {
	count, err := s.Store.SaveTool(ctx, materialID, toolType, payload)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"material_id": materialID,
			"tool_type":   toolType,
		}).Error("failed to save generated tool")
		return 0
	}
	return count
}

func joinContext(snippets []string) string {
	return strings.Join(snippets, contextSeparator)
}
