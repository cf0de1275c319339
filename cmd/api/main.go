package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resumeapi/internal/auth"
	"resumeapi/internal/config"
	"resumeapi/internal/database"
	"resumeapi/internal/database/migration"
	"resumeapi/internal/extract"
	handlers "resumeapi/internal/http/handler"
	"resumeapi/internal/http/middleware"
	"resumeapi/internal/nlp"
	"resumeapi/internal/otel"
	"resumeapi/internal/repository/postgres"
	"resumeapi/internal/service"
	"resumeapi/internal/storage"
	"resumeapi/internal/worker"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Optional archive bucket for raw uploads
	var archive storage.ObjectStore
	if cfg.Analysis.ArchiveUploads {
		archive, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	// The NLP model is loaded once and shared across all requests.
	model, err := nlp.Load()
	if err != nil {
		log.Fatalf("failed to load NLP model: %v", err)
	}

	pool := worker.NewPool(cfg.Analysis.Workers)
	analysisSvc := service.NewAnalysisService(model, extract.New(), pool, archive)

	tokens, err := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.Auth.RefreshTTLDays)*24*time.Hour,
	)
	if err != nil {
		log.Fatalf("failed to initialize token manager: %v", err)
	}
	authSvc := service.NewAuthService(postgres.NewUserPostgres(db), tokens)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.Analysis.MaxUploadBytes,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, analysisSvc, authSvc)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
