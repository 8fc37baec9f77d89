package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"study-rag/ent"
	"study-rag/ent/chunk"
	"study-rag/ent/material"
	"study-rag/ent/tool"
	"study-rag/ent/user"
	"study-rag/internal/materials"
	"study-rag/internal/study"
)

// ErrNotFound wraps ent's not-found for callers that do not import ent.
var ErrNotFound = errors.New("record not found")

// Store is the ent-backed persistence layer shared by the ingest and study
// services and the read-side handlers.
type Store struct {
	Client *ent.Client
}

func New(client *ent.Client) *Store {
	return &Store{Client: client}
}

func (s *Store) CreateMaterial(ctx context.Context, ownerID uuid.UUID, title, storageURL, rawText string) (int, error) {
	m, err := s.Client.Material.Create().
		SetOwnerID(ownerID).
		SetTitle(title).
		SetStorageURL(storageURL).
		SetRawText(rawText).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not create material: %w", err)
	}
	return m.ID, nil
}

func (s *Store) CreateChunks(ctx context.Context, materialID int, chunks []materials.ChunkRecord) (int, error) {
	builders := make([]*ent.ChunkCreate, len(chunks))
	for i, ch := range chunks {
		builders[i] = s.Client.Chunk.Create().
			SetMaterialID(materialID).
			SetIndex(ch.Index).
			SetContent(ch.Content).
			SetContentHash(ch.ContentHash)
	}
	created, err := s.Client.Chunk.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not create chunks: %w", err)
	}
	return len(created), nil
}

func (s *Store) MaterialExists(ctx context.Context, materialID int, ownerID uuid.UUID) (bool, error) {
	return s.Client.Material.Query().
		Where(
			material.ID(materialID),
			material.HasOwnerWith(user.ID(ownerID)),
		).
		Exist(ctx)
}

func (s *Store) PendingChunks(ctx context.Context, materialID int) ([]study.PendingChunk, error) {
	rows, err := s.Client.Chunk.Query().
		Where(
			chunk.HasMaterialWith(material.ID(materialID)),
			chunk.EmbeddingIsNil(),
		).
		Order(ent.Asc(chunk.FieldIndex)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]study.PendingChunk, len(rows))
	for i, row := range rows {
		pending[i] = study.PendingChunk{ID: row.ID, Content: row.Content}
	}
	return pending, nil
}

func (s *Store) SetChunkEmbedding(ctx context.Context, chunkID int, vector []float32) error {
	return s.Client.Chunk.UpdateOneID(chunkID).
		SetEmbedding(vector).
		Exec(ctx)
}

func (s *Store) SaveTool(ctx context.Context, materialID int, toolType string, payload json.RawMessage) (int, error) {
	_, err := s.Client.Tool.Create().
		SetMaterialID(materialID).
		SetToolType(tool.ToolType(toolType)).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return 0, err
	}
	return 1, nil
}

// MaterialByID fetches a material scoped to its owner.
func (s *Store) MaterialByID(ctx context.Context, materialID int, ownerID uuid.UUID) (*ent.Material, error) {
	m, err := s.Client.Material.Query().
		Where(
			material.ID(materialID),
			material.HasOwnerWith(user.ID(ownerID)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	return m, err
}

// ListMaterials returns the caller's materials, newest first.
func (s *Store) ListMaterials(ctx context.Context, ownerID uuid.UUID) ([]*ent.Material, error) {
	return s.Client.Material.Query().
		Where(material.HasOwnerWith(user.ID(ownerID))).
		Order(ent.Desc(material.FieldCreatedAt)).
		All(ctx)
}

// ListTools returns the generated artifacts of a material, newest first.
// Ownership is checked first so another user's material reads as not found.
func (s *Store) ListTools(ctx context.Context, materialID int, ownerID uuid.UUID) ([]*ent.Tool, error) {
	ok, err := s.MaterialExists(ctx, materialID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return s.Client.Tool.Query().
		Where(tool.HasMaterialWith(material.ID(materialID))).
		Order(ent.Desc(tool.FieldCreatedAt)).
		All(ctx)
}

// ChunkCount reports how many chunks a material has.
func (s *Store) ChunkCount(ctx context.Context, materialID int) (int, error) {
	return s.Client.Chunk.Query().
		Where(chunk.HasMaterialWith(material.ID(materialID))).
		Count(ctx)
}
