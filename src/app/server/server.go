// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"socialid/src/app/http/handler"
	"socialid/src/app/http/response"
	"socialid/src/app/middleware"
	"socialid/src/core/domain"
	"socialid/src/core/ports"
	"socialid/src/core/usecase"
	"socialid/src/infra/config"
	"socialid/src/infra/metrics"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	router  *gin.Engine
	http    *http.Server
	metrics *metrics.Metrics

	// Handlers
	healthHandler     *handler.HealthHandler
	identifierHandler *handler.IdentifierHandler
	providerHandler   *handler.ProviderHandler
}

// New creates a new Server with all dependencies wired up. m may be nil when
// metrics are disabled.
func New(cfg *config.Config, log *slog.Logger, enc *domain.Encoder, repo ports.ProviderRepository, m *metrics.Metrics) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// A nil *metrics.Metrics must not reach the interface.
	var codecMetrics ports.CodecMetrics
	if m != nil {
		codecMetrics = m
	}

	// Create services
	healthService := usecase.NewHealthService(log).Register("providers", repo)
	identifierService := usecase.NewIdentifierService(enc, repo, codecMetrics, log).
		WithMaxBatchSize(cfg.Codec.MaxBatchSize)
	providerService := usecase.NewProviderService(repo, enc, log)

	s := &Server{
		cfg:               cfg,
		log:               log,
		router:            router,
		metrics:           m,
		healthHandler:     handler.NewHealthHandler(healthService),
		identifierHandler: handler.NewIdentifierHandler(identifierService),
		providerHandler:   handler.NewProviderHandler(providerService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
	if s.metrics != nil {
		s.router.Use(middleware.Metrics(s.metrics))
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	if s.metrics != nil && s.cfg.Metrics.Enabled {
		s.router.GET(s.cfg.Metrics.Path, gin.WrapH(s.metrics.Handler()))
	}

	v1 := s.router.Group("/v1")
	{
		// Identifier codec
		ids := v1.Group("/ids")
		ids.POST("/encode", s.identifierHandler.Encode)
		ids.POST("/decode", s.identifierHandler.Decode)
		ids.POST("/compose", s.identifierHandler.Compose)
		ids.POST("/group", s.identifierHandler.Group)
		ids.GET("/:id", s.identifierHandler.Inspect)

		// Provider registry
		providers := v1.Group("/providers")
		providers.POST("", s.providerHandler.Create)
		providers.POST("/batch", s.providerHandler.CreateBatch)
		providers.GET("", s.providerHandler.List)
		providers.GET("/:domain", s.providerHandler.Get)
		providers.DELETE("/:domain", s.providerHandler.Delete)
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
