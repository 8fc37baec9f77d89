package config

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Config collects every tunable the service reads from the environment.
// Values with sensible defaults fall back silently; required values are
// validated by the client constructors that consume them.
type Config struct {
	HTTPAddr string
	DBURL    string

	QdrantHost       string
	QdrantPort       string
	QdrantCollection string

	GeminiAPIKey string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	WhisperURL      string
	WhisperLanguage string

	ChunkMaxChars     int
	ChunkOverlap      int
	MinExtractedChars int
	RetrievalTopK     int
	NumFlashcards     int
	EmbedWorkers      int
	ScoreThreshold    float32

	ExternalCallTimeout time.Duration
}

func Load() *Config {
	return &Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),
		DBURL:    os.Getenv("DB_URL"),

		QdrantHost:       os.Getenv("QDRANT_SERVICE_HOST"),
		QdrantPort:       os.Getenv("QDRANT_SERVICE_PORT"),
		QdrantCollection: getenv("QDRANT_COLLECTION", "material_chunks"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getenv("MINIO_BUCKET", "materials"),
		MinioUseSSL:    getbool("MINIO_USE_SSL", false),

		WhisperURL:      os.Getenv("WHISPER_SERVICE_URL"),
		WhisperLanguage: getenv("WHISPER_LANGUAGE", "en"),

		ChunkMaxChars:     getint("CHUNK_MAX_CHARS", 1200),
		ChunkOverlap:      getint("CHUNK_OVERLAP", 200),
		MinExtractedChars: getint("MIN_EXTRACTED_CHARS", 100),
		RetrievalTopK:     getint("RETRIEVAL_TOP_K", 4),
		NumFlashcards:     getint("NUM_FLASHCARDS", 6),
		EmbedWorkers:      getint("EMBED_WORKERS", 10),
		ScoreThreshold:    getfloat("SCORE_THRESHOLD", 0.5),

		ExternalCallTimeout: getduration("EXTERNAL_CALL_TIMEOUT", 60*time.Second),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": v}).Warn("invalid integer in environment, using default")
		return fallback
	}
	return n
}

func getfloat(key string, fallback float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": v}).Warn("invalid float in environment, using default")
		return fallback
	}
	return float32(f)
}

func getbool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": v}).Warn("invalid boolean in environment, using default")
		return fallback
	}
	return b
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": v}).Warn("invalid duration in environment, using default")
		return fallback
	}
	return d
}
