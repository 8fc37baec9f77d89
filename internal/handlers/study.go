package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"study-rag/internal/auth"
	"study-rag/internal/study"
	"study-rag/services/gemini"
)

// StudyHandler exposes the embedding backfill and the generation endpoints.
type StudyHandler struct {
	StudyService *study.Service
}

type embeddingsResponse struct {
	Status         string `json:"status"`
	MaterialID     int    `json:"material_id"`
	ChunksEmbedded int    `json:"chunks_embedded"`
}

type feedbackRequest struct {
	Topic       string `json:"topic"`
	Explanation string `json:"explanation"`
	TopK        int    `json:"top_k"`
}

type generationResponse struct {
	Status             string          `json:"status"`
	MaterialID         int             `json:"material_id"`
	ToolType           string          `json:"tool_type"`
	Payload            json.RawMessage `json:"payload"`
	ContextChunksCount int             `json:"context_chunks_count"`
	SaveCount          int             `json:"save_count"`
	Transcript         string          `json:"transcript,omitempty"`
}

// CreateEmbeddings handles POST /materials/{materialID}/embeddings
func (h *StudyHandler) CreateEmbeddings(w http.ResponseWriter, r *http.Request) {
	ownerID, materialID, ok := studyParams(w, r)
	if !ok {
		return
	}

	processed, err := h.StudyService.BackfillEmbeddings(r.Context(), materialID, ownerID)
	if err != nil {
		writeStudyError(w, err, "create embeddings")
		return
	}

	respondJSON(w, http.StatusOK, embeddingsResponse{
		Status:         "success",
		MaterialID:     materialID,
		ChunksEmbedded: processed,
	})
}

// GenerateFlashcards handles POST /materials/{materialID}/flashcards.
// "query" and "top_k" are optional query parameters; absent values fall
// back to the configured defaults.
func (h *StudyHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	ownerID, materialID, ok := studyParams(w, r)
	if !ok {
		return
	}

	topK := 0
	if raw := r.URL.Query().Get("top_k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'top_k' value")
			return
		}
		topK = n
	}

	result, err := h.StudyService.GenerateFlashcards(r.Context(), materialID, ownerID, r.URL.Query().Get("query"), topK)
	if err != nil {
		writeStudyError(w, err, "generate flashcards")
		return
	}

	respondJSON(w, http.StatusOK, generationResponse{
		Status:             "success",
		MaterialID:         materialID,
		ToolType:           result.ToolType,
		Payload:            result.Payload,
		ContextChunksCount: result.ContextChunks,
		SaveCount:          result.Saved,
	})
}

// FeynmanFeedback handles POST /materials/{materialID}/feedback
func (h *StudyHandler) FeynmanFeedback(w http.ResponseWriter, r *http.Request) {
	ownerID, materialID, ok := studyParams(w, r)
	if !ok {
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Topic == "" || req.Explanation == "" {
		respondError(w, http.StatusBadRequest, "Fields 'topic' and 'explanation' are required")
		return
	}

	result, err := h.StudyService.GenerateFeedback(r.Context(), materialID, ownerID, req.Topic, req.Explanation, req.TopK)
	if err != nil {
		writeStudyError(w, err, "generate feedback")
		return
	}

	respondJSON(w, http.StatusOK, generationResponse{
		Status:             "success",
		MaterialID:         materialID,
		ToolType:           result.ToolType,
		Payload:            result.Payload,
		ContextChunksCount: result.ContextChunks,
		SaveCount:          result.Saved,
	})
}

// FeynmanFeedbackAudio handles POST /materials/{materialID}/feedback/audio.
// Expects multipart form data with a "topic" field and an "audio" part;
// "top_k" and "language" are optional.
func (h *StudyHandler) FeynmanFeedbackAudio(w http.ResponseWriter, r *http.Request) {
	ownerID, materialID, ok := studyParams(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	topic := r.FormValue("topic")
	if topic == "" {
		respondError(w, http.StatusBadRequest, "Field 'topic' is required")
		return
	}

	topK := 0
	if raw := r.FormValue("top_k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'top_k' value")
			return
		}
		topK = n
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		respondError(w, http.StatusBadRequest, "File part 'audio' is required")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Could not read uploaded audio")
		return
	}

	result, transcript, err := h.StudyService.GenerateFeedbackFromAudio(
		r.Context(), materialID, ownerID, topic,
		header.Filename, audio, r.FormValue("language"), topK,
	)
	if err != nil {
		writeStudyError(w, err, "generate feedback from audio")
		return
	}

	respondJSON(w, http.StatusOK, generationResponse{
		Status:             "success",
		MaterialID:         materialID,
		ToolType:           result.ToolType,
		Payload:            result.Payload,
		ContextChunksCount: result.ContextChunks,
		SaveCount:          result.Saved,
		Transcript:         transcript,
	})
}

func studyParams(w http.ResponseWriter, r *http.Request) (ownerID uuid.UUID, materialID int, ok bool) {
	userID, authorized := auth.GetUserID(r.Context())
	if !authorized {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return userID, 0, false
	}

	materialID, err := strconv.Atoi(chi.URLParam(r, "materialID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid material ID")
		return userID, 0, false
	}
	return userID, materialID, true
}

func writeStudyError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, study.ErrNotFound):
		respondError(w, http.StatusNotFound, "Material not found or access denied")
	case errors.Is(err, study.ErrNoRelevantContext):
		respondError(w, http.StatusNotFound, "No relevant context found for this request")
	case errors.Is(err, study.ErrEmptyTranscript):
		respondError(w, http.StatusBadRequest, "Could not transcribe the uploaded audio")
	case errors.Is(err, study.ErrTranscriberUnavailable):
		respondError(w, http.StatusServiceUnavailable, "Transcription service is not available")
	case errors.Is(err, study.ErrEmbeddingUnavailable):
		logrus.WithError(err).Errorf("handler: %s: embedding unavailable", op)
		respondError(w, http.StatusInternalServerError, "Failed to generate query embedding")
	case errors.Is(err, gemini.ErrInvalidOutput):
		logrus.WithError(err).Errorf("handler: %s: model returned invalid output", op)
		respondError(w, http.StatusInternalServerError, "Model returned an invalid structure")
	default:
		logrus.WithError(err).Errorf("handler: failed to %s", op)
		respondError(w, http.StatusInternalServerError, "An internal error occurred: "+err.Error())
	}
}
