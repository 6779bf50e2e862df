package websocket

import (
	"context"
	"net/http"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/aescanero/irys-upload-service/pkg/ports"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is open for the whole service
	},
}

// Handler handles WebSocket connections
type Handler struct {
	eventBus ports.EventBus
	logger   *zap.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(eventBus ports.EventBus, logger *zap.Logger) *Handler {
	return &Handler{
		eventBus: eventBus,
		logger:   logger,
	}
}

// HandleUploadStream streams upload events to the client.
// An optional record_type query parameter limits the feed to votes or feedback.
func (h *Handler) HandleUploadStream(c *gin.Context) {
	var filter domain.RecordType
	if raw := c.Query("record_type"); raw != "" {
		recordType, ok := domain.ParseRecordType(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record_type"})
			return
		}
		filter = recordType
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request.Context()))
	defer cancel()

	// Subscribe before upgrading so no event published after the handshake is missed
	eventChan := make(chan domain.Event, 16)
	if err := h.eventBus.Subscribe(ctx, domain.TopicUploadEvents, h.forward(eventChan)); err != nil {
		h.logger.Error("failed to subscribe to events",
			zap.String("topic", domain.TopicUploadEvents),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "event feed unavailable"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	h.logger.Info("WebSocket connection established",
		zap.String("record_type", string(filter)),
		zap.String("client", c.ClientIP()))

	// Client messages are ignored; a read error means the client went away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("WebSocket connection closed")
			return
		case event := <-eventChan:
			if filter != "" && event.Data["record_type"] != string(filter) {
				continue
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Error("failed to write message", zap.Error(err))
				return
			}
		}
	}
}

// forward returns an event handler that feeds ch without blocking the bus
func (h *Handler) forward(ch chan<- domain.Event) ports.EventHandler {
	return func(ctx context.Context, event domain.Event) error {
		select {
		case ch <- event:
		case <-ctx.Done():
			return ctx.Err()
		default:
			h.logger.Warn("event channel full, dropping event",
				zap.String("event_id", event.ID),
				zap.String("event_type", string(event.Type)))
		}
		return nil
	}
}
