package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFlashcardJSON(n int) []byte {
	set := FlashcardSet{}
	for i := 0; i < n; i++ {
		set.Flashcards = append(set.Flashcards, Flashcard{
			Question: fmt.Sprintf("Q%d", i),
			Answer:   fmt.Sprintf("A%d", i),
		})
	}
	raw, _ := json.Marshal(set)
	return raw
}

func TestParseFlashcardsValid(t *testing.T) {
	set, err := ParseFlashcards(validFlashcardJSON(6), 6)

	require.NoError(t, err)
	require.Len(t, set.Flashcards, 6)
	assert.Equal(t, "Q0", set.Flashcards[0].Question)
	assert.Equal(t, "A5", set.Flashcards[5].Answer)
}

func TestParseFlashcardsMalformedJSON(t *testing.T) {
	_, err := ParseFlashcards([]byte("this is not json"), 6)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestParseFlashcardsWrongCount(t *testing.T) {
	_, err := ParseFlashcards(validFlashcardJSON(4), 6)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestParseFlashcardsMissingField(t *testing.T) {
	raw := []byte(`{"flashcards":[{"question":"only a question"}]}`)

	_, err := ParseFlashcards(raw, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestFlashcardPromptContract(t *testing.T) {
	prompt := buildFlashcardPrompt("some context", "key concepts", 6)

	assert.Contains(t, prompt, "exactly 6")
	assert.Contains(t, prompt, "STRICTLY BASED")
	assert.Contains(t, prompt, "some context")
	assert.Contains(t, prompt, "key concepts")
}

func TestFeedbackPromptContract(t *testing.T) {
	prompt := buildFeedbackPrompt("ctx", "osmosis", "water moves around")

	// The three-part evaluation contract must survive any rewording.
	assert.Contains(t, prompt, "captured the core concept")
	assert.Contains(t, prompt, "strictly against the Context")
	assert.Contains(t, prompt, "omitted")
	assert.Contains(t, prompt, "osmosis")
	assert.Contains(t, prompt, "water moves around")
}

func TestEmbedReturnsEmptyVectorOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewClient("test-key", time.Second)
	require.NoError(t, err)
	c.baseURL = srv.URL

	vector := c.Embed(context.Background(), "some text")

	assert.Empty(t, vector)
}

func TestEmbedReturnsVector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		fmt.Fprint(w, `{"embedding":{"values":[0.1,0.2,0.3]}}`)
	}))
	defer srv.Close()

	c, err := NewClient("test-key", time.Second)
	require.NoError(t, err)
	c.baseURL = srv.URL

	vector := c.Embed(context.Background(), "some text")

	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vector)
}

func TestFlashcardsEndToEndAgainstFakeAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.GenerationConfig)
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)
		require.NotNil(t, req.GenerationConfig.ResponseSchema)

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": string(validFlashcardJSON(6))}},
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c, err := NewClient("test-key", time.Second)
	require.NoError(t, err)
	c.baseURL = srv.URL

	set, err := c.Flashcards(context.Background(), "context", "query", 6)

	require.NoError(t, err)
	assert.Len(t, set.Flashcards, 6)
}
