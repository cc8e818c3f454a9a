package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mindwell-co/beacon/internal/api/handlers"
	mw "github.com/mindwell-co/beacon/internal/api/middleware"
	"github.com/mindwell-co/beacon/internal/buildconfig"
	"github.com/mindwell-co/beacon/internal/config"
	"github.com/mindwell-co/beacon/internal/domain"
	"github.com/mindwell-co/beacon/internal/embedding"
	"github.com/mindwell-co/beacon/internal/llm"
	"github.com/mindwell-co/beacon/internal/service"
	"github.com/mindwell-co/beacon/internal/store"
)

// App holds the router and request metrics for lifecycle management.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	resourceStore := store.NewResourceStore(db)
	contactStore := store.NewEmergencyContactStore(db)
	usageStore := store.NewUsageEventStore(db)
	recStore := store.NewRecommendationStore(db)

	// External clients via provider factory
	var generator domain.TextGenerator
	var embedder domain.EmbeddingClient

	llmProvider := config.LLMProvider()
	embeddingProvider := config.EmbeddingProvider()

	llmClient, err := llm.NewClient(llmProvider, config.LLMAPIKey())
	if err != nil {
		logger.Warn("LLM client initialization failed, AI generation disabled",
			zap.String("provider", llmProvider), zap.Error(err))
	} else {
		logger.Info("LLM client initialized", zap.String("provider", llmProvider))
		generator = llmClient
	}

	embeddingClient, err := embedding.NewClient(embeddingProvider, config.EmbeddingAPIKey())
	if err != nil {
		logger.Warn("Embedding client initialization failed, semantic search disabled",
			zap.String("provider", embeddingProvider), zap.Error(err))
	} else {
		logger.Info("Embedding client initialized", zap.String("provider", embeddingProvider))
		embedder = embeddingClient
	}

	// Services
	engine := service.NewRecommendationEngine(resourceStore, contactStore, usageStore, recStore, generator, logger)
	engine.SetLLMTimeout(time.Duration(config.LLMTimeoutSeconds()) * time.Second)
	resourceSvc := service.NewResourceService(resourceStore, usageStore, embedder, logger)

	// Handlers
	recHandler := handlers.NewRecommendationHandler(engine)
	resourceHandler := handlers.NewResourceHandler(resourceSvc)
	contactHandler := handlers.NewContactHandler(contactStore)
	usageHandler := handlers.NewUsageHandler(resourceSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	// Metrics collector for middleware
	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)                                                 // Generate/extract request ID first
	r.Use(middleware.RealIP)                                            // Extract real IP
	r.Use(metricsCollector.Middleware)                                  // Collect metrics
	r.Use(mw.Logging(logger))                                           // Log all requests
	r.Use(middleware.Recoverer)                                         // Recover from panics
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst())) // Rate limiting

	// Health (no auth)
	r.Get("/health", healthHandler(db))

	// Metrics (no auth)
	r.Get("/metrics", app.metricsHandler())

	// Authenticated routes
	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(config.APIKey()))

		// Recommendations
		r.Route("/recommendations", func(r chi.Router) {
			r.Post("/generate", recHandler.Generate)
			r.Post("/track", recHandler.TrackUsage)
			r.Get("/recent", recHandler.Recent)
		})

		// Wellness resource catalog
		r.Route("/resources", func(r chi.Router) {
			r.Post("/", resourceHandler.Create)
			r.Get("/featured", resourceHandler.Featured)
			r.Get("/search", resourceHandler.Search)
		})

		// Crisis contact directory
		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", contactHandler.ListActive)
			r.Post("/", contactHandler.Create)
		})

		// Resource usage events
		r.Post("/usage", usageHandler.Record)
	})

	return app
}

// NewRouter returns just the chi.Mux.
func NewRouter(db *pgxpool.Pool, logger *zap.Logger) *chi.Mux {
	return NewApp(db, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
			"version":    buildconfig.Version(),
			"commit":     buildconfig.Commit(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores and clients satisfy interfaces at compile time.
var (
	_ domain.ResourceCatalog           = (*store.ResourceStore)(nil)
	_ domain.EmergencyContactDirectory = (*store.EmergencyContactStore)(nil)
	_ domain.UserHistoryStore          = (*store.UsageEventStore)(nil)
	_ domain.RecommendationStore       = (*store.RecommendationStore)(nil)
	_ domain.TextGenerator             = (*llm.OpenAIClient)(nil)
	_ domain.TextGenerator             = (*llm.AnthropicClient)(nil)
	_ domain.TextGenerator             = (*llm.MockClient)(nil)
	_ domain.EmbeddingClient           = (*embedding.OpenAIClient)(nil)
	_ domain.EmbeddingClient           = (*embedding.MockClient)(nil)
)
