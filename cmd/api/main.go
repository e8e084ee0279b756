package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumen-crm/assistant-api/docs"
	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/command"
	"github.com/lumen-crm/assistant-api/internal/config"
	"github.com/lumen-crm/assistant-api/internal/database"
	"github.com/lumen-crm/assistant-api/internal/http/handler"
	"github.com/lumen-crm/assistant-api/internal/http/middleware"
	"github.com/lumen-crm/assistant-api/internal/http/router"
	"github.com/lumen-crm/assistant-api/internal/intent"
	"github.com/lumen-crm/assistant-api/internal/jobs"
	"github.com/lumen-crm/assistant-api/internal/llm"
	"github.com/lumen-crm/assistant-api/internal/logger"
	"github.com/lumen-crm/assistant-api/internal/pipeline"
	"github.com/lumen-crm/assistant-api/internal/repository"
	"github.com/lumen-crm/assistant-api/internal/session"
	"go.uber.org/zap"
)

// @title Lumen CRM Assistant API
// @version 1.0
// @description Natural-language command engine for the Lumen sales engineering CRM
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@lumen-crm.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API Key for system operations
// @Security BearerAuth
// @Security ApiKeyAuth

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "assistant-staging.lumen-crm.io"
	case "production":
		docs.SwaggerInfo.Host = "assistant.lumen-crm.io"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize the text-generation client; the process refuses to start
	// without credentials rather than failing on the first request
	generator, err := llm.NewClient(&cfg.LLM, log)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	contactRepo := repository.NewContactRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	stageHistoryRepo := repository.NewStageHistoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)

	// Initialize the command engine
	catalog := intent.BuiltinCatalog()
	detector := intent.NewDetector(catalog, generator, log)
	extractor := intent.NewExtractor(generator, log)
	composer := intent.NewComposer(generator, log)
	stagePipeline := pipeline.NewPipeline(opportunityRepo, stageHistoryRepo, log)
	dispatcher := command.NewDispatcher(
		catalog,
		customerRepo,
		contactRepo,
		noteRepo,
		profileRepo,
		opportunityRepo,
		productRepo,
		partnerRepo,
		stagePipeline,
		log,
	)

	// Conversation sessions
	sessions := session.NewManager(log)
	engine := session.NewEngine(detector, extractor, composer, dispatcher, customerRepo, log)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	commandHandler := handler.NewCommandHandler(dispatcher, log)
	sessionHandler := handler.NewSessionHandler(sessions, engine, log)
	customerHandler := handler.NewCustomerHandler(customerRepo, contactRepo, noteRepo, opportunityRepo, log)
	opportunityHandler := handler.NewOpportunityHandler(opportunityRepo, customerRepo, stageHistoryRepo, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		commandHandler,
		sessionHandler,
		customerHandler,
		opportunityHandler,
	)

	// Start the idle session sweep
	scheduler := jobs.NewScheduler(log)
	sweepJob := jobs.NewSessionSweepJob(sessions, cfg.Session.IdleTTLDuration(), log)
	if err := scheduler.AddJob(jobs.SessionSweepJobName, cfg.Session.SweepCron, sweepJob.Run); err != nil {
		log.Error("Failed to register session sweep job", zap.Error(err))
	} else {
		scheduler.Start()
		log.Info("Scheduler started with session sweep job",
			zap.String("cron_expr", cfg.Session.SweepCron),
			zap.Duration("idle_ttl", cfg.Session.IdleTTLDuration()),
		)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		stopCtx := scheduler.Stop()
		<-stopCtx.Done()
		log.Info("Scheduler stopped")

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
