package grpc

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server represents the gRPC API server.
// It serves the standard grpc.health.v1.Health service for the relay.
type Server struct {
	server      *grpc.Server
	listener    net.Listener
	health      *health.Server
	serviceName string
	logger      *zap.Logger
}

// Config holds gRPC server configuration
type Config struct {
	Port        int
	ServiceName string
	Logger      *zap.Logger
}

// NewServer creates a new gRPC server
func NewServer(cfg *Config) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	s := &Server{
		server:      grpcServer,
		listener:    listener,
		health:      healthServer,
		serviceName: cfg.ServiceName,
		logger:      cfg.Logger,
	}

	// Not serving until the first dependency check reports in
	s.SetHealthy(false)

	return s, nil
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// SetHealthy updates the serving status of the overall server and the relay service
func (s *Server) SetHealthy(healthy bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if healthy {
		status = healthpb.HealthCheckResponse_SERVING
	}

	s.health.SetServingStatus("", status)
	if s.serviceName != "" {
		s.health.SetServingStatus(s.serviceName, status)
	}
}

// Start starts the gRPC server
func (s *Server) Start() error {
	s.logger.Info("starting gRPC server", zap.String("addr", s.Addr()))

	if err := s.server.Serve(s.listener); err != nil {
		return fmt.Errorf("failed to serve gRPC: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server, forcing a stop when ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down gRPC server")

	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
		return ctx.Err()
	}

	s.logger.Info("gRPC server shut down complete")
	return nil
}
