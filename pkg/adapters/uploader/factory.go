package uploader

import (
	"fmt"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/adapters/uploader/irys"
	"github.com/aescanero/irys-upload-service/pkg/adapters/uploader/memory"
	"github.com/aescanero/irys-upload-service/pkg/ports"
	"go.uber.org/zap"
)

// Config holds uploader configuration
type Config struct {
	Provider   string
	PrivateKey string
	NodeURL    string
	Token      string
	Timeout    time.Duration
	Logger     *zap.Logger
}

// NewClient creates a new uploader based on provider
func NewClient(cfg *Config) (ports.Uploader, error) {
	switch cfg.Provider {
	case "irys":
		client, err := irys.NewClient(&irys.Config{
			NodeURL:    cfg.NodeURL,
			Token:      cfg.Token,
			PrivateKey: cfg.PrivateKey,
			Timeout:    cfg.Timeout,
			Logger:     cfg.Logger,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case "memory":
		return memory.NewUploader(), nil
	default:
		return nil, fmt.Errorf("unsupported uploader provider: %s", cfg.Provider)
	}
}
