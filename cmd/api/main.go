package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/catalyst/internal/api/handlers"
	"github.com/linskybing/catalyst/internal/api/middleware"
	"github.com/linskybing/catalyst/internal/api/routes"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/config"
	"github.com/linskybing/catalyst/internal/config/db"
	"github.com/linskybing/catalyst/internal/cron"
	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/linskybing/catalyst/internal/integrations/deepgram"
	"github.com/linskybing/catalyst/internal/integrations/nemotron"
	"github.com/linskybing/catalyst/internal/integrations/notion"
	"github.com/linskybing/catalyst/internal/integrations/pdf"
	"github.com/linskybing/catalyst/internal/integrations/storage"
	"github.com/linskybing/catalyst/internal/realtime"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/internal/repository/firestore"
)

// @title						Catalyst API
// @version					1.0
// @description				PM productivity backend: tickets, meeting notes to tickets, AI generated documents.
// @BasePath					/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	config.LoadConfig()

	middleware.Init()

	ctx := context.Background()

	var repos *repository.Repos
	if config.StoreBackend == config.BackendFirestore {
		client, err := db.NewFirestore(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to Firestore: %v", err)
		}
		defer client.Close()
		repos = firestore.NewRepositories(client)
		log.Println("Using Firestore store")
	} else {
		db.Init()
		repos = repository.NewRepositories(db.DB)
	}

	prompts, err := nemotron.LoadPrompts(config.PromptsFile)
	if err != nil {
		log.Fatalf("Failed to load prompts: %v", err)
	}
	llm := nemotron.New(nemotron.Options{
		BaseURL:       config.NvidiaBaseURL,
		NemotronModel: config.NemotronModel,
		AgentModel:    config.AgentModel,
		APIKey:        config.NvidiaAPIKey,
	}, prompts)
	if !llm.Configured() {
		log.Println("Warning: NVIDIA_API_KEY is not set, AI features will fail until it is")
	}

	var archive integrations.ObjectStore
	if config.AudioArchiveEnabled {
		store, err := storage.New(ctx, storage.Options{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			UseSSL:    config.MinioUseSSL,
			Bucket:    config.MinioBucket,
		})
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		archive = store
	}

	hub := realtime.NewHub(func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || middleware.OriginAllowed(config.AllowedOrigins, origin)
	})

	svc := application.New(repos, application.Clients{
		LLM:         llm,
		Transcriber: deepgram.New(config.DeepgramBaseURL, config.DeepgramAPIKey, nil),
		Exporter:    notion.New(config.NotionAPIKey, config.NotionParentPageID, nil),
		Renderer:    pdf.New(),
		Archive:     archive,
	}, hub)

	scheduler, err := cron.StartCleanupTask(config.AuditCleanupSpec, config.AuditRetentionDays, svc.Audit)
	if err != nil {
		log.Fatalf("Invalid AUDIT_CLEANUP_SPEC %q: %v", config.AuditCleanupSpec, err)
	}
	defer scheduler.Stop()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(config.AllowedOrigins))
	router.Use(middleware.RequestMetaMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, handlers.New(svc, repos, config.StoreBackend), routes.Options{
		AuthEnabled: config.AuthEnabled,
		Board:       hub,
	})

	srv := &http.Server{
		Addr:    ":" + config.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Starting API server on %s (store: %s, auth: %t)", srv.Addr, config.StoreBackend, config.AuthEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	log.Println("Shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
