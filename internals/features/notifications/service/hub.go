package service

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// client wraps a connection with a write lock. Gorilla-style websockets
// allow only one concurrent writer, so every outbound frame for a
// connection goes through this mutex.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (cl *client) write(payload interface{}) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteJSON(payload)
}

// Hub tracks live websocket connections by room. Each signed-in client joins
// a personal room named user_<id> so pushes address a person, not a socket.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
	rooms   map[string]map[*websocket.Conn]struct{}
}

var DefaultHub = NewHub()

func NewHub() *Hub {
	return &Hub{
		clients: map[*websocket.Conn]*client{},
		rooms:   map[string]map[*websocket.Conn]struct{}{},
	}
}

func (h *Hub) Join(room string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[conn] == nil {
		h.clients[conn] = &client{conn: conn}
	}
	if h.rooms[room] == nil {
		h.rooms[room] = map[*websocket.Conn]struct{}{}
	}
	h.rooms[room][conn] = struct{}{}
}

// Leave detaches conn from every room it joined.
func (h *Hub) Leave(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	for room, conns := range h.rooms {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Send writes payload to one connection, serialized against broadcasts.
func (h *Hub) Send(conn *websocket.Conn, payload interface{}) error {
	h.mu.RLock()
	cl := h.clients[conn]
	h.mu.RUnlock()
	if cl == nil {
		return conn.WriteJSON(payload)
	}
	return cl.write(payload)
}

// Broadcast pushes payload to every connection in the given rooms. Write
// failures are logged and the connection left for its reader to tear down.
func (h *Hub) Broadcast(rooms []string, payload interface{}) {
	h.mu.RLock()
	targets := make([]*client, 0, 4)
	for _, room := range rooms {
		for conn := range h.rooms[room] {
			targets = append(targets, h.clients[conn])
		}
	}
	h.mu.RUnlock()

	for _, cl := range targets {
		if cl == nil {
			continue
		}
		if err := cl.write(payload); err != nil {
			log.Printf("[WARN] websocket push failed: %v", err)
		}
	}
}
