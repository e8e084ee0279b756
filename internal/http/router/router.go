package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/config"
	"github.com/lumen-crm/assistant-api/internal/database"
	"github.com/lumen-crm/assistant-api/internal/http/handler"
	"github.com/lumen-crm/assistant-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/lumen-crm/assistant-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg                *config.Config
	logger             *zap.Logger
	db                 *gorm.DB
	authMiddleware     *auth.Middleware
	rateLimiter        *middleware.RateLimiter
	commandHandler     *handler.CommandHandler
	sessionHandler     *handler.SessionHandler
	customerHandler    *handler.CustomerHandler
	opportunityHandler *handler.OpportunityHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	commandHandler *handler.CommandHandler,
	sessionHandler *handler.SessionHandler,
	customerHandler *handler.CustomerHandler,
	opportunityHandler *handler.OpportunityHandler,
) *Router {
	return &Router{
		cfg:                cfg,
		logger:             logger,
		db:                 db,
		authMiddleware:     authMiddleware,
		rateLimiter:        rateLimiter,
		commandHandler:     commandHandler,
		sessionHandler:     sessionHandler,
		customerHandler:    customerHandler,
		opportunityHandler: opportunityHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)

			// Command surface
			r.Post("/commands", rt.commandHandler.Execute)

			// Conversation sessions
			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", rt.sessionHandler.Create)
				r.Get("/{id}", rt.sessionHandler.Get)
				r.Delete("/{id}", rt.sessionHandler.Delete)
				r.Post("/{id}/messages", rt.sessionHandler.PostMessage)
				r.Post("/{id}/confirm", rt.sessionHandler.Confirm)
				r.Post("/{id}/reject", rt.sessionHandler.Reject)
			})

			// Customers (read-only; mutations go through the command surface)
			r.Route("/customers", func(r chi.Router) {
				r.Get("/", rt.customerHandler.List)
				r.Get("/{id}", rt.customerHandler.GetByID)
				r.Get("/{id}/notes", rt.customerHandler.GetNotes)
				r.Get("/{id}/opportunities", rt.customerHandler.GetOpportunities)
			})

			// Opportunities
			r.Route("/opportunities", func(r chi.Router) {
				r.Get("/stages", rt.opportunityHandler.ListStages)
				r.Get("/{id}", rt.opportunityHandler.GetByID)
				r.Get("/{id}/history", rt.opportunityHandler.GetStageHistory)
			})
		})
	})

	return r
}
