package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-rag/internal/study"
	"study-rag/services/gemini"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestWriteStudyErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", study.ErrNotFound, http.StatusNotFound},
		{"no relevant context", study.ErrNoRelevantContext, http.StatusNotFound},
		{"empty transcript", study.ErrEmptyTranscript, http.StatusBadRequest},
		{"no transcriber", study.ErrTranscriberUnavailable, http.StatusServiceUnavailable},
		{"embedding unavailable", study.ErrEmbeddingUnavailable, http.StatusInternalServerError},
		{"invalid model output", gemini.ErrInvalidOutput, http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("generate: %w", study.ErrNoRelevantContext), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeStudyError(rec, tc.err, "test operation")

			assert.Equal(t, tc.status, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, "error", body["status"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestWriteStudyErrorSurfacesUpstreamMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeStudyError(rec, errors.New("qdrant: connection refused"), "generate flashcards")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Contains(t, body["error"], "qdrant: connection refused")
}
