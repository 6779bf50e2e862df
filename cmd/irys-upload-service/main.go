package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/irys-upload-service/internal/application/health"
	"github.com/aescanero/irys-upload-service/internal/application/relay"
	"github.com/aescanero/irys-upload-service/internal/config"
	eventsmemory "github.com/aescanero/irys-upload-service/pkg/adapters/events/memory"
	"github.com/aescanero/irys-upload-service/pkg/adapters/events/redis"
	"github.com/aescanero/irys-upload-service/pkg/adapters/metrics/prometheus"
	storagememory "github.com/aescanero/irys-upload-service/pkg/adapters/storage/memory"
	redisstorage "github.com/aescanero/irys-upload-service/pkg/adapters/storage/redis"
	"github.com/aescanero/irys-upload-service/pkg/adapters/uploader"
	"github.com/aescanero/irys-upload-service/pkg/api/grpc"
	"github.com/aescanero/irys-upload-service/pkg/api/http"
	"github.com/aescanero/irys-upload-service/pkg/api/websocket"
	"github.com/aescanero/irys-upload-service/pkg/ports"

	"github.com/joho/godotenv"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

// eventStreamMaxLen bounds the Redis stream of upload events
const eventStreamMaxLen = 10000

func main() {
	// Existing environment variables take precedence over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to read .env: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting Irys upload service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("provider", cfg.Irys.Provider))

	ctx := context.Background()
	var checks []health.Check

	// Initialize storage and events, backed by Redis when configured
	var (
		store       ports.ReceiptStore
		eventBus    ports.EventBus
		redisClient *goredis.Client
	)
	if cfg.Redis.Enabled() {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})

		// Test Redis connection
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect to Redis", zap.Error(err))
		}
		logger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))

		store = redisstorage.NewReceiptStore(redisClient, cfg.Relay.ReceiptTTL, logger)
		eventBus = redis.NewStreamsEventBus(redisClient, eventStreamMaxLen, logger)
		checks = append(checks, health.Check{
			Name:  "redis",
			Run: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	} else {
		logger.Warn("REDIS_ADDR not set, using in-memory receipt store and event bus")
		store = storagememory.NewReceiptStore()
		eventBus = eventsmemory.NewEventBus()
	}

	// The uploader is built once here; a bad or missing key stops startup
	irysUploader, err := uploader.NewClient(&uploader.Config{
		Provider:   cfg.Irys.Provider,
		PrivateKey: cfg.Irys.PrivateKey,
		NodeURL:    cfg.Irys.NodeURL,
		Token:      cfg.Irys.Token,
		Timeout:    cfg.Irys.Timeout,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("failed to create uploader", zap.Error(err))
	}
	if pinger, ok := irysUploader.(ports.Pinger); ok {
		checks = append(checks, health.PingCheck("uploader", pinger))
	}

	metricsCollector := prometheus.NewCollector(prom.DefaultRegisterer)

	// Initialize application components
	validator := relay.NewValidator(cfg.Relay.StrictValidation)

	relayService := relay.NewService(
		irysUploader,
		store,
		eventBus,
		metricsCollector,
		validator,
		logger,
		cfg.Relay.ApplicationID,
		cfg.Irys.GatewayURL,
	)

	// Initialize API servers
	var reporters []health.Reporter
	var grpcServer *grpc.Server
	if cfg.GRPCEnabled {
		grpcServer, err = grpc.NewServer(&grpc.Config{
			Port:        cfg.GRPCPort,
			ServiceName: cfg.ServiceName,
			Logger:      logger,
		})
		if err != nil {
			logger.Fatal("failed to create gRPC server", zap.Error(err))
		}
		reporters = append(reporters, grpcServer)
	}

	monitor := health.NewMonitor(&health.Config{
		Checks:    checks,
		Interval:  cfg.Timeouts.HealthCheckInterval,
		Timeout:   cfg.Timeouts.HealthCheckTimeout,
		Metrics:   metricsCollector,
		Reporters: reporters,
		Logger:    logger,
	})

	httpServer := http.NewServer(&http.Config{
		Port:           cfg.HTTPPort,
		ServiceName:    cfg.ServiceName,
		Relay:          relayService,
		Readiness:      monitor,
		Metrics:        metricsCollector,
		MetricsHandler: promhttp.Handler(),
		Logger:         logger,
	})

	// Add WebSocket handler to HTTP server
	wsHandler := websocket.NewHandler(eventBus, logger)
	httpServer.SetupWebSocket(wsHandler)

	monitor.Start(ctx)

	// Start servers
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	if grpcServer != nil {
		go func() {
			if err := grpcServer.Start(); err != nil {
				logger.Fatal("gRPC server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("Irys upload service started",
		zap.String("http_addr", cfg.GetHTTPAddr()),
		zap.Bool("grpc_enabled", cfg.GRPCEnabled),
		zap.String("grpc_addr", cfg.GetGRPCAddr()),
		zap.Bool("redis", cfg.Redis.Enabled()))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
	defer cancel()

	// Shutdown components
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if grpcServer != nil {
		if err := grpcServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("gRPC server shutdown error", zap.Error(err))
		}
	}

	monitor.Stop()

	if err := eventBus.Close(); err != nil {
		logger.Error("event bus close error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Redis close error", zap.Error(err))
		}
	}

	logger.Info("Irys upload service shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
