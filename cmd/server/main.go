package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/mattear/doclens-ai/internal/adapter/ai"
	"github.com/mattear/doclens-ai/internal/adapter/enrich"
	"github.com/mattear/doclens-ai/internal/adapter/store"
	"github.com/mattear/doclens-ai/internal/handler"
	"github.com/mattear/doclens-ai/internal/middleware"
	"github.com/mattear/doclens-ai/internal/port"
	"github.com/mattear/doclens-ai/internal/service"
	"github.com/mattear/doclens-ai/pkg/config"

	_ "github.com/lib/pq"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🚀 Starting DocLens AI",
		"port", cfg.Port,
		"ollama", cfg.OllamaURL,
		"cluster_method", cfg.ClusterMethod,
	)

	// ── Database ─────────────────────────────────────────────────────────
	pgStore, err := store.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pgStore.Close()

	// ── Adapters ─────────────────────────────────────────────────────────
	ollamaAI := ai.NewOllamaProvider(ai.OllamaConfig{
		BaseURL: cfg.OllamaURL,
		Model:   cfg.OllamaModel,
		Token:   cfg.OllamaToken,
	})

	// ── Enrichment Engine (Strategy Pattern) ─────────────────────────────
	engine := port.NewEnrichmentEngine(
		enrich.NewSummarizeStrategy(ollamaAI),
		enrich.NewAnalyzeStrategy(ollamaAI),
		enrich.NewTagsStrategy(ollamaAI),
	)

	// ── Services ─────────────────────────────────────────────────────────
	clusterService := service.NewClusterService(pgStore)
	enrichService := service.NewEnrichService(engine, pgStore)

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	// Audit middleware (logs all mutating requests)
	app.Use(middleware.AuditMiddleware(pgStore))

	// Health check
	app.Get("/api/v1/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"app":     cfg.AppName,
			"version": "1.0.0",
		})
	})

	// ── Routes ───────────────────────────────────────────────────────────
	api := app.Group("/api/v1")

	documentHandler := handler.NewDocumentHandler(pgStore, clusterService)
	documentHandler.Register(api)

	clusterHandler := handler.NewClusterHandler(clusterService, cfg.ClusterMethod, cfg.MaxClusters)
	clusterHandler.Register(api)

	enrichHandler := handler.NewEnrichHandler(enrichService)
	enrichHandler.Register(api)

	auditHandler := handler.NewAuditHandler(pgStore)
	auditHandler.Register(api)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
