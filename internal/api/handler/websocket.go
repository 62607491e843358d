package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/internal/pkg/ws"
	"github.com/lumenpay/admin-gateway/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type WebSocketHandler struct {
	hub      *ws.Hub
	sessions *session.Manager
	logger   zerolog.Logger
}

func NewWebSocketHandler(hub *ws.Hub, sessions *session.Manager, logger zerolog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:      hub,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle upgrades the connection and keeps it registered until the client
// drops. Invalidation and broadcast-progress events arrive via the hub.
// GET /api/v1/ws?token=xxx
func (h *WebSocketHandler) Handle(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	sess, err := h.sessions.Resolve(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &ws.Client{
		UserID: sess.User.ID,
		Conn:   conn,
	}
	h.hub.Register(client)

	// reads only detect disconnect; the SPA never sends anything
	go func() {
		defer h.hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
