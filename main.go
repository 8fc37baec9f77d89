package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"study-rag/internal/auth"
	"study-rag/internal/config"
	"study-rag/internal/db"
	"study-rag/internal/handlers"
	"study-rag/internal/materials"
	"study-rag/internal/store"
	"study-rag/internal/study"
	"study-rag/internal/user"
	"study-rag/services/gemini"
	qdrantsvc "study-rag/services/qdrant"
	"study-rag/services/storage"
	"study-rag/services/whisper"
)

func main() {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.DebugLevel)

	logrus.Info("starting server...")

	// Load .env file
	if err := godotenv.Load(".env.dev"); err != nil {
		logrus.Warn("no .env file found, using system environment variables")
	} else {
		logrus.Info(".env file loaded successfully")
	}

	// Load JWT secret
	auth.LoadSecret()

	cfg := config.Load()
	ctx := context.Background()

	// setup DB client
	logrus.Debug("initializing database client")
	client, err := db.NewClient(ctx, cfg.DBURL)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize database client")
	}
	defer func() {
		logrus.Debug("closing database client")
		if err := client.Close(); err != nil {
			logrus.WithError(err).Error("error closing DB client")
		}
	}()

	// setup vector index
	logrus.Debug("initializing qdrant client")
	pointsClient, collectionsClient, conn, err := qdrantsvc.NewClient(ctx, cfg.QdrantHost, cfg.QdrantPort)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to qdrant")
	}
	defer conn.Close()

	if err := qdrantsvc.EnsureCollectionExists(ctx, collectionsClient, pointsClient, cfg.QdrantCollection); err != nil {
		logrus.WithError(err).Fatal("failed to ensure qdrant collection")
	}
	index := &qdrantsvc.Index{
		Points:         pointsClient,
		Collection:     cfg.QdrantCollection,
		ScoreThreshold: cfg.ScoreThreshold,
		Timeout:        cfg.ExternalCallTimeout,
	}

	// setup object storage
	logrus.Debug("initializing object storage client")
	objectStore, err := storage.NewClient(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize object storage")
	}

	// setup model client
	geminiClient, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.ExternalCallTimeout)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize gemini client")
	}

	// transcription is optional; audio feedback returns 503 when absent
	var transcriber study.Transcriber
	if cfg.WhisperURL != "" {
		whisperClient, err := whisper.NewClient(cfg.WhisperURL, cfg.ExternalCallTimeout)
		if err != nil {
			logrus.WithError(err).Fatal("failed to initialize whisper client")
		}
		whisperClient.DefaultLanguage = cfg.WhisperLanguage
		transcriber = whisperClient
	} else {
		logrus.Warn("WHISPER_SERVICE_URL not set, audio feedback disabled")
	}

	// setup services
	logrus.Debug("initializing services")
	dataStore := store.New(client)
	userService := &user.Service{Client: client}
	materialService := &materials.Service{
		Storage:  objectStore,
		Store:    dataStore,
		MaxChars: cfg.ChunkMaxChars,
		Overlap:  cfg.ChunkOverlap,
		MinChars: cfg.MinExtractedChars,
	}
	studyService := &study.Service{
		Store:         dataStore,
		Embedder:      geminiClient,
		Retriever:     index,
		Generator:     geminiClient,
		Index:         index,
		Transcriber:   transcriber,
		TopK:          cfg.RetrievalTopK,
		NumFlashcards: cfg.NumFlashcards,
		Workers:       cfg.EmbedWorkers,
	}

	authHandler := &handlers.AuthHandler{UserService: userService}
	materialHandler := &handlers.MaterialHandler{MaterialService: materialService, Store: dataStore}
	studyHandler := &handlers.StudyHandler{StudyService: studyService}
	logrus.Info("services initialized successfully")

	logrus.Debug("setting up HTTP router")
	r := chi.NewRouter()

	// --- Public Routes ---
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)
	logrus.Info("public routes registered")

	// --- Protected Routes ---
	r.Group(func(protected chi.Router) {
		protected.Use(auth.AuthMiddleware)

		protected.Route("/materials", func(r chi.Router) {
			r.Post("/", materialHandler.Upload)
			r.Get("/", materialHandler.List)

			r.Route("/{materialID}", func(r chi.Router) {
				r.Get("/", materialHandler.Get)
				r.Get("/tools", materialHandler.ListTools)

				r.Post("/embeddings", studyHandler.CreateEmbeddings)
				r.Post("/flashcards", studyHandler.GenerateFlashcards)
				r.Post("/feedback", studyHandler.FeynmanFeedback)
				r.Post("/feedback/audio", studyHandler.FeynmanFeedbackAudio)
			})
		})

		protected.Get("/me", func(w http.ResponseWriter, r *http.Request) {
			userID, ok := auth.GetUserID(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			u, err := userService.GetUserByID(r.Context(), userID)
			if err != nil {
				http.Error(w, "User not found", http.StatusNotFound)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			if _, err := w.Write([]byte(`{"email":"` + u.Email + `"}`)); err != nil {
				logrus.WithError(err).Error("error writing response for /me endpoint")
			}
		})
	})
	logrus.Info("protected routes registered")

	logrus.WithField("address", cfg.HTTPAddr).Info("server starting")
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logrus.WithError(err).Fatal("server failed to start")
	}
}
