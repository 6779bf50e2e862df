package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aescanero/irys-upload-service/internal/application/health"
	"github.com/aescanero/irys-upload-service/internal/application/relay"
	"github.com/aescanero/irys-upload-service/pkg/ports"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReadinessChecker reports the last dependency health status
type ReadinessChecker interface {
	GetStatus() *health.Status
}

// Server represents the HTTP API server
type Server struct {
	router      *gin.Engine
	server      *http.Server
	relay       *relay.Service
	readiness   ReadinessChecker
	serviceName string
	logger      *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Port           int
	ServiceName    string
	Relay          *relay.Service
	Readiness      ReadinessChecker
	Metrics        ports.MetricsCollector
	MetricsHandler http.Handler
	Logger         *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(requestID())
	router.Use(requestLogger(cfg.Logger, cfg.Metrics))
	router.Use(corsMiddleware())
	router.Use(recovery(cfg.Logger))

	s := &Server{
		router:      router,
		relay:       cfg.Relay,
		readiness:   cfg.Readiness,
		serviceName: cfg.ServiceName,
		logger:      cfg.Logger,
	}

	s.setupRoutes(cfg.MetricsHandler)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes(metricsHandler http.Handler) {
	// Health checks
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ready", s.handleReady)

	// Metrics
	if metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	api := s.router.Group("/api")
	{
		api.POST("/upload-vote", s.handleUploadVote)
		api.POST("/upload-feedback", s.handleUploadFeedback)

		api.GET("/uploads/:irysId", s.handleGetUpload)
		api.GET("/records/:type/:id/uploads", s.handleListRecordUploads)
	}
}

// SetupWebSocket adds WebSocket handler to the server
func (s *Server) SetupWebSocket(handler interface{}) {
	if wsHandler, ok := handler.(interface {
		HandleUploadStream(*gin.Context)
	}); ok {
		s.router.GET("/api/uploads/ws", wsHandler.HandleUploadStream)
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
