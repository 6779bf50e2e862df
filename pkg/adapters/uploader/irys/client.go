package irys

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Config holds Irys client configuration
type Config struct {
	NodeURL    string
	Token      string
	PrivateKey string
	Timeout    time.Duration
	Logger     *zap.Logger
}

// Client uploads payloads to an Irys upload node as signed ANS-104 data
// items posted to /tx/{token}.
type Client struct {
	client *resty.Client
	signer *Signer
	token  string
	logger *zap.Logger
}

// NodeError is returned when the node answers with a non-2xx status
type NodeError struct {
	StatusCode int
	Message    string
}

func (e *NodeError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("irys node returned status %d", e.StatusCode)
}

// NewClient creates a new Irys client, validating the wallet key eagerly
func NewClient(cfg *Config) (*Client, error) {
	signer, err := NewSigner(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	if cfg.NodeURL == "" {
		cfg.NodeURL = "https://uploader.irys.xyz"
	}
	if cfg.Token == "" {
		cfg.Token = "base-eth"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.NodeURL, "/")).
		SetTimeout(cfg.Timeout)

	logger.Info("irys uploader initialized",
		zap.String("node", cfg.NodeURL),
		zap.String("token", cfg.Token),
		zap.String("address", signer.Address()))

	return &Client{
		client: cli,
		signer: signer,
		token:  cfg.Token,
		logger: logger,
	}, nil
}

// Address returns the wallet address uploads are paid from
func (c *Client) Address() string {
	return c.signer.Address()
}

// Upload submits data with its tags and returns the node's receipt
func (c *Client) Upload(ctx context.Context, data []byte, tags []domain.Tag) (*domain.Receipt, error) {
	item, itemID, err := c.signer.SignItem(data, tags)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(item).
		Post("/tx/" + c.token)
	if err != nil {
		return nil, fmt.Errorf("upload request: %w", err)
	}
	if resp.IsError() {
		return nil, &NodeError{
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(resp.String()),
		}
	}

	var receipt domain.Receipt
	if err := json.Unmarshal(resp.Body(), &receipt); err != nil {
		return nil, fmt.Errorf("failed to decode upload receipt: %w", err)
	}
	if receipt.ID == "" {
		return nil, fmt.Errorf("upload receipt has no id")
	}

	c.logger.Debug("data item accepted by irys node",
		zap.String("id", receipt.ID),
		zap.String("item_id", itemID),
		zap.Int("size", len(data)),
		zap.Int("tags", len(tags)))

	return &receipt, nil
}

// Ping checks that the upload node is reachable
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/info")
	if err != nil {
		return fmt.Errorf("info request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return &NodeError{StatusCode: resp.StatusCode(), Message: strings.TrimSpace(resp.String())}
	}
	return nil
}
