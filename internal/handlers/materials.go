package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"study-rag/internal/auth"
	"study-rag/internal/materials"
	"study-rag/internal/store"
)

const maxUploadBytes = 32 << 20

// MaterialHandler handles material upload and read endpoints.
type MaterialHandler struct {
	MaterialService *materials.Service
	Store           *store.Store
}

type materialResponse struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	StorageURL string    `json:"storage_url"`
	CreatedAt  time.Time `json:"created_at"`
}

type uploadResponse struct {
	Status     string `json:"status"`
	MaterialID int    `json:"material_id"`
	StorageURL string `json:"storage_url"`
	ChunkCount int    `json:"chunk_count"`
}

type toolResponse struct {
	ID        int             `json:"id"`
	ToolType  string          `json:"tool_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Upload handles POST /materials. Expects multipart form data with a "title"
// field and a "file" part.
func (h *MaterialHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	title := r.FormValue("title")
	if title == "" {
		respondError(w, http.StatusBadRequest, "Field 'title' is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "File part 'file' is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	result, err := h.MaterialService.Ingest(r.Context(), materials.IngestRequest{
		OwnerID:     ownerID,
		Title:       title,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, materials.ErrInsufficientText) {
			respondError(w, http.StatusBadRequest, "File does not contain enough extractable text")
		} else {
			logrus.WithError(err).Error("handler: failed to ingest material")
			respondError(w, http.StatusInternalServerError, "Failed to process material")
		}
		return
	}

	respondJSON(w, http.StatusCreated, uploadResponse{
		Status:     "success",
		MaterialID: result.MaterialID,
		StorageURL: result.StorageURL,
		ChunkCount: result.ChunkCount,
	})
}

// List handles GET /materials
func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rows, err := h.Store.ListMaterials(r.Context(), ownerID)
	if err != nil {
		logrus.WithError(err).Error("handler: failed to list materials")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve materials")
		return
	}

	out := make([]materialResponse, len(rows))
	for i, m := range rows {
		out[i] = materialResponse{
			ID:         m.ID,
			Title:      m.Title,
			StorageURL: m.StorageURL,
			CreatedAt:  m.CreatedAt,
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// Get handles GET /materials/{materialID}
func (h *MaterialHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	materialID, err := strconv.Atoi(chi.URLParam(r, "materialID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid material ID")
		return
	}

	m, err := h.Store.MaterialByID(r.Context(), materialID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Material not found or access denied")
		} else {
			logrus.WithError(err).Error("handler: failed to get material")
			respondError(w, http.StatusInternalServerError, "Failed to retrieve material")
		}
		return
	}

	respondJSON(w, http.StatusOK, materialResponse{
		ID:         m.ID,
		Title:      m.Title,
		StorageURL: m.StorageURL,
		CreatedAt:  m.CreatedAt,
	})
}

// ListTools handles GET /materials/{materialID}/tools
func (h *MaterialHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	materialID, err := strconv.Atoi(chi.URLParam(r, "materialID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid material ID")
		return
	}

	rows, err := h.Store.ListTools(r.Context(), materialID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Material not found or access denied")
		} else {
			logrus.WithError(err).Error("handler: failed to list tools")
			respondError(w, http.StatusInternalServerError, "Failed to retrieve tools")
		}
		return
	}

	out := make([]toolResponse, len(rows))
	for i, t := range rows {
		out[i] = toolResponse{
			ID:        t.ID,
			ToolType:  string(t.ToolType),
			Payload:   json.RawMessage(t.Payload),
			CreatedAt: t.CreatedAt,
		}
	}
	respondJSON(w, http.StatusOK, out)
}
