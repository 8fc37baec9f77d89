package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "material_chunks", cfg.QdrantCollection)
	assert.Equal(t, 1200, cfg.ChunkMaxChars)
	assert.Equal(t, 200, cfg.ChunkOverlap)
	assert.Equal(t, 100, cfg.MinExtractedChars)
	assert.Equal(t, 4, cfg.RetrievalTopK)
	assert.Equal(t, 6, cfg.NumFlashcards)
	assert.Equal(t, float32(0.5), cfg.ScoreThreshold)
	assert.Equal(t, 60*time.Second, cfg.ExternalCallTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CHUNK_MAX_CHARS", "800")
	t.Setenv("SCORE_THRESHOLD", "0.7")
	t.Setenv("EXTERNAL_CALL_TIMEOUT", "90s")

	cfg := Load()

	assert.Equal(t, 800, cfg.ChunkMaxChars)
	assert.Equal(t, float32(0.7), cfg.ScoreThreshold)
	assert.Equal(t, 90*time.Second, cfg.ExternalCallTimeout)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("CHUNK_MAX_CHARS", "not-a-number")
	t.Setenv("MINIO_USE_SSL", "maybe")

	cfg := Load()

	assert.Equal(t, 1200, cfg.ChunkMaxChars)
	assert.False(t, cfg.MinioUseSSL)
}
