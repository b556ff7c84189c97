package api

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"laundromat-api/internal/infra/notify"
	"laundromat-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type ConnectionRegistry interface {
	Register(userID uuid.UUID, conn notify.Conn) func()
}

type NotificationHandler struct {
	registry ConnectionRegistry
	upgrader websocket.Upgrader
}

func NewNotificationHandler(registry ConnectionRegistry, cors config.CORSConfig) *NotificationHandler {
	return &NotificationHandler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(cors.AllowOrigins, origin)
			},
		},
	}
}

// @Summary Live notifications
// @Description Upgrades to a websocket that receives booking notifications of the caller as JSON.
// @Tags notifications
// @Security BearerAuth
// @Success 101 "Switching Protocols"
// @Failure 401 {object} httperr.Response
// @Router /notifications/ws [get]
func (h *NotificationHandler) Connect(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already answered the client
		slog.Warn("websocket upgrade failed", "user_id", userID.String(), "error", err.Error())
		return
	}

	unregister := h.registry.Register(userID, conn)
	defer unregister()

	done := make(chan struct{})
	defer close(done)
	go keepAlive(conn, done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
