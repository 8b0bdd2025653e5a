package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	httpAdapter "github.com/lorrc/jira-gateway-backend/internal/adapters/primary/http"
	mw "github.com/lorrc/jira-gateway-backend/internal/adapters/primary/http/middleware"
	"github.com/lorrc/jira-gateway-backend/internal/adapters/secondary/jira"
	"github.com/lorrc/jira-gateway-backend/internal/config"
	"github.com/lorrc/jira-gateway-backend/internal/core/services"
	"github.com/lorrc/jira-gateway-backend/internal/infrastructure/logging"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Structured Logger
	logger := logging.NewLogger(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Output:      os.Stdout,
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Environment,
	})

	logger.Info("starting service",
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	// 3. Initialize Jira Client (Secondary Adapter)
	jiraClient := jira.NewClient(jira.Config{
		BaseURL:      cfg.Jira.BaseURL,
		Email:        cfg.Jira.Email,
		APIToken:     cfg.Jira.APIToken,
		ProjectKey:   cfg.Jira.ProjectKey,
		Timeout:      cfg.Jira.Timeout,
		MaxRetries:   cfg.Jira.MaxRetries,
		RetryBackoff: cfg.Jira.RetryBackoff,
	}, logger)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.Jira.Timeout)
	if err := jiraClient.Ping(pingCtx); err != nil {
		cancelPing()
		logger.Error("jira connectivity check failed", "url", cfg.Jira.BaseURL, "error", err)
		os.Exit(1)
	}
	cancelPing()
	logger.Info("jira connection established", "url", cfg.Jira.BaseURL, "project", cfg.Jira.ProjectKey)

	// 4. Initialize Rate Limiter
	var rateLimiter *mw.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = mw.NewRateLimiter(mw.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.BurstSize,
			CleanupInterval:   time.Minute,
			TTL:               3 * time.Minute,
		})
	}

	// 5. Dependency Injection (Wiring the Hexagon)

	// Error Handler
	errorHandler := httpAdapter.NewErrorHandler(logger)

	// Services (Core)
	queryService := services.NewQueryService(jiraClient, logger, cfg.Jira.DetailFetchLimit)

	// Handlers (Primary Adapters)
	ticketHandler := httpAdapter.NewTicketHandler(queryService, errorHandler, logger)
	analyticsHandler := httpAdapter.NewAnalyticsHandler(queryService, errorHandler, logger)
	directoryHandler := httpAdapter.NewDirectoryHandler(jiraClient, errorHandler, logger)
	healthHandler := httpAdapter.NewHealthHandler(jiraClient, cfg.App.Version)

	// 6. Setup Router
	r := chi.NewRouter()

	// Global middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(mw.RequestID)
	r.Use(mw.RequestLogger(logger))
	r.Use(mw.RecoveryLogger(logger))

	// Apply general rate limiting if enabled
	if rateLimiter != nil {
		r.Use(rateLimiter.Middleware)
	}

	// Health check endpoints (outside /api/v1 for standard probe paths)
	healthHandler.RegisterRoutes(r)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", ticketHandler.ListTickets)
			r.Get("/{ticketKey}", ticketHandler.GetTicketDetails)
		})

		r.Get("/stats", analyticsHandler.GetStats)
		r.Get("/analytics", analyticsHandler.GetAnalytics)

		r.Get("/users", directoryHandler.SearchUsers)
		r.Get("/priorities", directoryHandler.ListPriorities)
		r.Get("/issue-types", directoryHandler.ListIssueTypes)
	})

	// 7. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", "signal", sig.String())

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server shutdown complete")
}
