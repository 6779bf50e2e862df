package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/adapters/uploader/irys"
	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the upload service
type Config struct {
	// Server configuration
	HTTPPort    int    `env:"PORT" envDefault:"3000"`
	GRPCEnabled bool   `env:"GRPC_ENABLED" envDefault:"true"`
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"9090"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"irys-upload-service"`

	// Irys configuration
	Irys IrysConfig

	// Relay behaviour
	Relay RelayConfig

	// Redis configuration
	Redis RedisConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// IrysConfig holds uploader configuration
type IrysConfig struct {
	Provider   string        `env:"IRYS_PROVIDER" envDefault:"irys"`
	PrivateKey string        `env:"IRYS_PRIVATE_KEY"`
	NodeURL    string        `env:"IRYS_NODE_URL" envDefault:"https://uploader.irys.xyz"`
	Token      string        `env:"IRYS_TOKEN" envDefault:"base-eth"`
	GatewayURL string        `env:"IRYS_GATEWAY_URL" envDefault:"https://gateway.irys.xyz/"`
	Timeout    time.Duration `env:"IRYS_TIMEOUT" envDefault:"60s"`
}

// RelayConfig holds record handling configuration
type RelayConfig struct {
	ApplicationID    string        `env:"APPLICATION_ID" envDefault:"ProjectVotingApp"`
	StrictValidation bool          `env:"RELAY_STRICT_VALIDATION" envDefault:"false"`
	ReceiptTTL       time.Duration `env:"RECEIPT_TTL" envDefault:"720h"`
}

// RedisConfig holds Redis connection configuration.
// An empty Addr selects the in-memory receipt store and event bus.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASS"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`

	// Connection pool settings
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	MaxRetries   int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// Enabled reports whether a Redis server is configured
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// TimeoutConfig holds various timeout configurations
type TimeoutConfig struct {
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL" envDefault:"30s"`
	HealthCheckTimeout  time.Duration `env:"HEALTH_CHECK_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout     time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	return LoadWithOptions(env.Options{})
}

// LoadWithOptions reads configuration using the given env options.
// Tests use it to inject an environment map.
func LoadWithOptions(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate server ports
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.GRPCEnabled && (c.GRPCPort < 1 || c.GRPCPort > 65535) {
		return fmt.Errorf("invalid gRPC port: %d", c.GRPCPort)
	}
	if c.GRPCEnabled && c.GRPCPort == c.HTTPPort {
		return fmt.Errorf("HTTP and gRPC ports must differ: %d", c.HTTPPort)
	}

	// Validate uploader config
	switch c.Irys.Provider {
	case "irys":
		if strings.TrimSpace(c.Irys.PrivateKey) == "" {
			return irys.ErrMissingPrivateKey
		}
		if c.Irys.NodeURL == "" {
			return fmt.Errorf("irys node URL is required")
		}
		if c.Irys.Token == "" {
			return fmt.Errorf("irys token is required")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported uploader provider: %s (must be irys or memory)", c.Irys.Provider)
	}
	if c.Irys.GatewayURL == "" {
		return fmt.Errorf("irys gateway URL is required")
	}
	if c.Irys.Timeout <= 0 {
		return fmt.Errorf("irys timeout must be positive")
	}

	if c.Relay.ApplicationID == "" {
		return fmt.Errorf("application ID is required")
	}

	if c.Timeouts.HealthCheckInterval <= 0 {
		return fmt.Errorf("health check interval must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// GetGRPCAddr returns the gRPC server address
func (c *Config) GetGRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}
