package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/duetmatch/duet/api/internal/catalog"
	"github.com/duetmatch/duet/api/internal/config"
	"github.com/duetmatch/duet/api/internal/database"
	"github.com/duetmatch/duet/api/internal/handler"
	"github.com/duetmatch/duet/api/internal/middleware"
	"github.com/duetmatch/duet/api/internal/repository"
	"github.com/duetmatch/duet/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// A broken question catalog would silently corrupt every derived score
	if err := catalog.Validate(); err != nil {
		slog.Error("invalid question catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize profile store
	var store database.Store
	switch cfg.Store.Backend {
	case config.BackendMemory:
		store = database.NewMemoryStore()
	default:
		store = database.NewSurrealStore(database.Config{
			Host:      cfg.Store.Host,
			Port:      cfg.Store.Port,
			User:      cfg.Store.User,
			Password:  cfg.Store.Password,
			Namespace: cfg.Store.Namespace,
			Database:  cfg.Store.Database,
		})
	}

	ctx := context.Background()
	if err := store.Connect(ctx); err != nil {
		slog.Error("failed to connect to store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	slog.Info("connected to store",
		slog.String("backend", cfg.Store.Backend),
		slog.String("host", cfg.Store.Host),
	)

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(store)

	// Initialize services
	questionnaireService := service.NewQuestionnaireService()
	profileService := service.NewProfileService(service.ProfileServiceConfig{
		ProfileRepo: profileRepo,
	})
	compatibilityService := service.NewCompatibilityService(service.CompatibilityServiceConfig{
		ProfileRepo: profileRepo,
	})

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(store)
	questionnaireHandler := handler.NewQuestionnaireHandler(questionnaireService)
	profileHandler := handler.NewProfileHandler(profileService)
	compatibilityHandler := handler.NewCompatibilityHandler(compatibilityService)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.RateLimit.Rate,
		Window: cfg.RateLimit.Window,
		Burst:  cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Set up routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /healthz", healthHandler.Check)

	// Questionnaire endpoints
	mux.HandleFunc("GET /v1/questions", questionnaireHandler.ListQuestions)
	mux.HandleFunc("GET /v1/questions/categories", questionnaireHandler.GetCategories)
	mux.HandleFunc("GET /v1/questions/{questionId}", questionnaireHandler.GetQuestion)

	// Profile endpoints
	mux.HandleFunc("POST /v1/profiles", profileHandler.Create)
	mux.HandleFunc("GET /v1/profiles", profileHandler.List)
	mux.HandleFunc("GET /v1/profiles/{profileId}", profileHandler.Get)
	mux.HandleFunc("PUT /v1/profiles/{profileId}/answers", profileHandler.UpdateAnswers)
	mux.HandleFunc("DELETE /v1/profiles/{profileId}", profileHandler.Delete)

	// Compatibility endpoint
	mux.HandleFunc("GET /v1/compatibility/{profileA}/{profileB}", compatibilityHandler.Compare)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
