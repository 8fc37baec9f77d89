package study

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-rag/services/gemini"
	qdrantsvc "study-rag/services/qdrant"
)

type fakeStore struct {
	mu         sync.Mutex
	exists     bool
	existsErr  error
	pending    []PendingChunk
	embedded   map[int][]float32
	saveErr    error
	savedTools []string
}

func (f *fakeStore) MaterialExists(ctx context.Context, materialID int, ownerID uuid.UUID) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeStore) PendingChunks(ctx context.Context, materialID int) ([]PendingChunk, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []PendingChunk
	for _, ch := range f.pending {
		if _, done := f.embedded[ch.ID]; !done {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (f *fakeStore) SetChunkEmbedding(ctx context.Context, chunkID int, vector []float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.embedded == nil {
		f.embedded = map[int][]float32{}
	}
	f.embedded[chunkID] = vector
	return nil
}

func (f *fakeStore) SaveTool(ctx context.Context, materialID int, toolType string, payload json.RawMessage) (int, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.savedTools = append(f.savedTools, toolType)
	return 1, nil
}

type fakeEmbedder struct {
	mu      sync.Mutex
	fail    map[string]bool
	queries []string
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) []float32 {
	f.mu.Lock()
	f.queries = append(f.queries, text)
	f.mu.Unlock()
	if f.fail[text] {
		return nil
	}
	return []float32{0.1, 0.2, 0.3}
}

type fakeRetriever struct {
	snippets []string
	err      error
	topK     int
}

func (f *fakeRetriever) Search(ctx context.Context, vector []float32, materialID, topK int) ([]string, error) {
	f.topK = topK
	return f.snippets, f.err
}

type fakeGenerator struct {
	called      bool
	cards       *gemini.FlashcardSet
	feedback    string
	err         error
	gotContext  string
	gotQuery    string
	gotTopic    string
	gotExplain  string
	gotNumCards int
}

func (f *fakeGenerator) Flashcards(ctx context.Context, contextText, query string, n int) (*gemini.FlashcardSet, error) {
	f.called = true
	f.gotContext = contextText
	f.gotQuery = query
	f.gotNumCards = n
	return f.cards, f.err
}

func (f *fakeGenerator) Feedback(ctx context.Context, contextText, topic, explanation string) (string, error) {
	f.called = true
	f.gotContext = contextText
	f.gotTopic = topic
	f.gotExplain = explanation
	return f.feedback, f.err
}

type fakeIndex struct {
	mu      sync.Mutex
	upserts []qdrantsvc.ChunkVector
	err     error
}

func (f *fakeIndex) Upsert(ctx context.Context, vectors []qdrantsvc.ChunkVector) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, vectors...)
	return nil
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, filename string, audio []byte, language string) (string, error) {
	return f.text, f.err
}

func newService(store *fakeStore, embedder *fakeEmbedder, retriever *fakeRetriever, gen *fakeGenerator, index *fakeIndex) *Service {
	return &Service{
		Store:         store,
		Embedder:      embedder,
		Retriever:     retriever,
		Generator:     gen,
		Index:         index,
		TopK:          4,
		NumFlashcards: 6,
		Workers:       3,
	}
}

func sampleCards() *gemini.FlashcardSet {
	set := &gemini.FlashcardSet{}
	for i := 0; i < 6; i++ {
		set.Flashcards = append(set.Flashcards, gemini.Flashcard{
			Question: fmt.Sprintf("q%d", i),
			Answer:   fmt.Sprintf("a%d", i),
		})
	}
	return set
}

func TestBackfillEmbeddings(t *testing.T) {
	store := &fakeStore{
		exists: true,
		pending: []PendingChunk{
			{ID: 1, Content: "alpha"},
			{ID: 2, Content: "beta"},
			{ID: 3, Content: "gamma"},
		},
	}
	index := &fakeIndex{}
	svc := newService(store, &fakeEmbedder{}, &fakeRetriever{}, &fakeGenerator{}, index)

	owner := uuid.New()
	processed, err := svc.BackfillEmbeddings(context.Background(), 7, owner)
	require.NoError(t, err)
	assert.Equal(t, 3, processed)
	assert.Len(t, store.embedded, 3)
	assert.Len(t, index.upserts, 3)
	for _, v := range index.upserts {
		assert.Equal(t, 7, v.MaterialID)
		assert.Equal(t, owner.String(), v.UserID)
	}

	// Second run finds nothing left to do.
	processed, err = svc.BackfillEmbeddings(context.Background(), 7, owner)
	require.NoError(t, err)
	assert.Equal(t, 0, processed)
}

func TestBackfillSkipsFailedChunks(t *testing.T) {
	store := &fakeStore{
		exists: true,
		pending: []PendingChunk{
			{ID: 1, Content: "good"},
			{ID: 2, Content: "bad"},
			{ID: 3, Content: "also good"},
		},
	}
	embedder := &fakeEmbedder{fail: map[string]bool{"bad": true}}
	svc := newService(store, embedder, &fakeRetriever{}, &fakeGenerator{}, &fakeIndex{})

	processed, err := svc.BackfillEmbeddings(context.Background(), 1, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.NotContains(t, store.embedded, 2)
}

func TestBackfillRetriesAfterIndexOutage(t *testing.T) {
	store := &fakeStore{
		exists: true,
		pending: []PendingChunk{
			{ID: 1, Content: "alpha"},
			{ID: 2, Content: "beta"},
		},
	}
	index := &fakeIndex{err: errors.New("index unavailable")}
	svc := newService(store, &fakeEmbedder{}, &fakeRetriever{}, &fakeGenerator{}, index)

	// First run: the index is down, so no chunk may be marked embedded.
	processed, err := svc.BackfillEmbeddings(context.Background(), 3, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, processed)
	assert.Empty(t, store.embedded)
	assert.Empty(t, index.upserts)

	// Second run: the index recovered and every chunk is still pending.
	index.err = nil
	processed, err = svc.BackfillEmbeddings(context.Background(), 3, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.Len(t, store.embedded, 2)
	assert.Len(t, index.upserts, 2)
}

func TestBackfillUnknownMaterial(t *testing.T) {
	svc := newService(&fakeStore{exists: false}, &fakeEmbedder{}, &fakeRetriever{}, &fakeGenerator{}, &fakeIndex{})

	_, err := svc.BackfillEmbeddings(context.Background(), 99, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateFlashcards(t *testing.T) {
	store := &fakeStore{exists: true}
	retriever := &fakeRetriever{snippets: []string{"first", "second"}}
	gen := &fakeGenerator{cards: sampleCards()}
	svc := newService(store, &fakeEmbedder{}, retriever, gen, &fakeIndex{})

	result, err := svc.GenerateFlashcards(context.Background(), 5, uuid.New(), "", 0)
	require.NoError(t, err)

	assert.Equal(t, ToolTypeFlashcards, result.ToolType)
	assert.Equal(t, 2, result.ContextChunks)
	assert.Equal(t, 1, result.Saved)
	assert.Equal(t, DefaultFlashcardQuery, gen.gotQuery)
	assert.Equal(t, 6, gen.gotNumCards)
	assert.Equal(t, "first\n\n---\n\nsecond", gen.gotContext)
	assert.Equal(t, 4, retriever.topK)
	assert.Equal(t, []string{ToolTypeFlashcards}, store.savedTools)

	var set gemini.FlashcardSet
	require.NoError(t, json.Unmarshal(result.Payload, &set))
	assert.Len(t, set.Flashcards, 6)
}

func TestGenerateFlashcardsCustomQueryAndTopK(t *testing.T) {
	retriever := &fakeRetriever{snippets: []string{"ctx"}}
	gen := &fakeGenerator{cards: sampleCards()}
	svc := newService(&fakeStore{exists: true}, &fakeEmbedder{}, retriever, gen, &fakeIndex{})

	_, err := svc.GenerateFlashcards(context.Background(), 5, uuid.New(), "photosynthesis basics", 8)
	require.NoError(t, err)
	assert.Equal(t, "photosynthesis basics", gen.gotQuery)
	assert.Equal(t, 8, retriever.topK)
}

func TestGenerateFlashcardsNoContextSkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{cards: sampleCards()}
	svc := newService(&fakeStore{exists: true}, &fakeEmbedder{}, &fakeRetriever{}, gen, &fakeIndex{})

	_, err := svc.GenerateFlashcards(context.Background(), 5, uuid.New(), "", 0)
	assert.ErrorIs(t, err, ErrNoRelevantContext)
	assert.False(t, gen.called)
}

func TestGenerateFlashcardsEmbeddingUnavailable(t *testing.T) {
	embedder := &fakeEmbedder{fail: map[string]bool{DefaultFlashcardQuery: true}}
	gen := &fakeGenerator{}
	svc := newService(&fakeStore{exists: true}, embedder, &fakeRetriever{snippets: []string{"x"}}, gen, &fakeIndex{})

	_, err := svc.GenerateFlashcards(context.Background(), 5, uuid.New(), "", 0)
	assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
	assert.False(t, gen.called)
}

func TestGenerateFlashcardsSaveFailureStillReturnsPayload(t *testing.T) {
	store := &fakeStore{exists: true, saveErr: errors.New("db down")}
	gen := &fakeGenerator{cards: sampleCards()}
	svc := newService(store, &fakeEmbedder{}, &fakeRetriever{snippets: []string{"x"}}, gen, &fakeIndex{})

	result, err := svc.GenerateFlashcards(context.Background(), 5, uuid.New(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Saved)
	assert.NotEmpty(t, result.Payload)
}

func TestGenerateFeedbackCombinesQuery(t *testing.T) {
	embedder := &fakeEmbedder{}
	gen := &fakeGenerator{feedback: "Well done, mostly."}
	svc := newService(&fakeStore{exists: true}, embedder, &fakeRetriever{snippets: []string{"ctx"}}, gen, &fakeIndex{})

	result, err := svc.GenerateFeedback(context.Background(), 5, uuid.New(), "osmosis", "water moves across membranes", 0)
	require.NoError(t, err)

	require.Len(t, embedder.queries, 1)
	assert.Equal(t, "Topic: osmosis. Student explanation: water moves across membranes", embedder.queries[0])
	assert.Equal(t, "osmosis", gen.gotTopic)
	assert.Equal(t, "water moves across membranes", gen.gotExplain)
	assert.Equal(t, ToolTypeFeynmanFeedback, result.ToolType)

	var payload struct {
		Feedback string `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(result.Payload, &payload))
	assert.Equal(t, "Well done, mostly.", payload.Feedback)
}

func TestGenerateFeedbackFromAudio(t *testing.T) {
	gen := &fakeGenerator{feedback: "Good explanation."}
	svc := newService(&fakeStore{exists: true}, &fakeEmbedder{}, &fakeRetriever{snippets: []string{"ctx"}}, gen, &fakeIndex{})
	svc.Transcriber = &fakeTranscriber{text: "  cells divide by mitosis  "}

	result, transcript, err := svc.GenerateFeedbackFromAudio(context.Background(), 5, uuid.New(), "mitosis", "rec.webm", []byte("audio"), "en", 0)
	require.NoError(t, err)
	assert.Equal(t, "cells divide by mitosis", transcript)
	assert.Equal(t, "cells divide by mitosis", gen.gotExplain)
	assert.NotNil(t, result)
}

func TestGenerateFeedbackFromAudioEmptyTranscript(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newService(&fakeStore{exists: true}, &fakeEmbedder{}, &fakeRetriever{}, gen, &fakeIndex{})
	svc.Transcriber = &fakeTranscriber{text: "   "}

	_, _, err := svc.GenerateFeedbackFromAudio(context.Background(), 5, uuid.New(), "t", "rec.webm", nil, "", 0)
	assert.ErrorIs(t, err, ErrEmptyTranscript)
	assert.False(t, gen.called)
}

func TestGenerateFeedbackFromAudioNoTranscriber(t *testing.T) {
	svc := newService(&fakeStore{exists: true}, &fakeEmbedder{}, &fakeRetriever{}, &fakeGenerator{}, &fakeIndex{})

	_, _, err := svc.GenerateFeedbackFromAudio(context.Background(), 5, uuid.New(), "t", "rec.webm", nil, "", 0)
	assert.ErrorIs(t, err, ErrTranscriberUnavailable)
}
