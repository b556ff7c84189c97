package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"laundromat-api/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Conn is the part of *websocket.Conn the registry writes to.
type Conn interface {
	WriteJSON(v any) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type client struct {
	mu   sync.Mutex
	conn Conn
}

func (c *client) send(e notification.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(e)
}

// Registry routes events to the live websocket connections of each user.
type Registry struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
	closed  bool
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[uuid.UUID]map[*client]struct{})}
}

// Register adds conn for userID. The returned func removes it and is safe to call twice.
func (r *Registry) Register(userID uuid.UUID, conn Conn) func() {
	c := &client{conn: conn}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		_ = conn.Close()
		return func() {}
	}
	if r.clients[userID] == nil {
		r.clients[userID] = make(map[*client]struct{})
	}
	r.clients[userID][c] = struct{}{}
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(userID, c) })
	}
}

func (r *Registry) remove(userID uuid.UUID, c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.clients[userID]
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(r.clients, userID)
	}
	_ = c.conn.Close()
}

// Connections returns the number of live connections of userID.
func (r *Registry) Connections(userID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients[userID])
}

// Notify pushes every event to the connections of its user. Users without a
// connection are skipped and connections that fail to write are dropped.
func (r *Registry) Notify(_ context.Context, events ...notification.Event) error {
	for _, e := range events {
		r.mu.RLock()
		targets := make([]*client, 0, len(r.clients[e.UserID]))
		for c := range r.clients[e.UserID] {
			targets = append(targets, c)
		}
		r.mu.RUnlock()

		for _, c := range targets {
			if err := c.send(e); err != nil {
				slog.Warn("dropping websocket connection",
					"user_id", e.UserID.String(),
					"error", err.Error())
				r.remove(e.UserID, c)
			}
		}
	}
	return nil
}

// CloseAll sends a close frame to every connection and rejects new ones.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for userID, set := range r.clients {
		for c := range set {
			c.mu.Lock()
			_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			_ = c.conn.Close()
			c.mu.Unlock()
		}
		delete(r.clients, userID)
	}
}
