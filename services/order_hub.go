package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient is one websocket subscriber, keyed by the buyer email it watches.
type WSClient struct {
	Email string
	Conn  *websocket.Conn

	mu sync.Mutex
}

// Send writes one frame. The connection allows a single concurrent writer, so
// every write, pings included, must go through here.
func (c *WSClient) Send(messageType int, data []byte) error {
	if c.Conn == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// OrderHub fans order lifecycle events out to connected storefront clients.
type OrderHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewOrderHub() *OrderHub {
	return &OrderHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *OrderHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.Email] == nil {
		h.clients[c.Email] = make(map[*WSClient]struct{})
	}
	h.clients[c.Email][c] = struct{}{}
	h.mu.Unlock()
}

func (h *OrderHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.Email]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.Email)
		}
	}
	h.mu.Unlock()
	if c.Conn != nil {
		_ = c.Conn.Close()
	}
}

// Broadcast sends payload to every connection subscribed to email.
func (h *OrderHub) Broadcast(email string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[email] {
		_ = c.Send(websocket.TextMessage, msg)
	}
}
