package service

import (
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubSharesOneWriterPerConn(t *testing.T) {
	h := NewHub()
	conn := &websocket.Conn{}

	// the same connection in several rooms must share one write lock,
	// otherwise two rooms broadcasting at once write the socket concurrently
	h.Join("user_a", conn)
	h.Join("user_clerk_a", conn)

	require.Contains(t, h.clients, conn)
	first := h.clients[conn]
	h.Join("user_a", conn)
	assert.Same(t, first, h.clients[conn])
}

func TestHubLeaveDropsEveryRoom(t *testing.T) {
	h := NewHub()
	conn := &websocket.Conn{}
	other := &websocket.Conn{}

	h.Join("user_a", conn)
	h.Join("user_b", conn)
	h.Join("user_b", other)

	h.Leave(conn)

	// direct lookup rather than assert.NotContains: testify compares map
	// keys with DeepEqual, and `other` (a distinct but deeply-equal zero
	// Conn) would register as a false positive for conn
	_, stillTracked := h.clients[conn]
	assert.False(t, stillTracked)
	assert.NotContains(t, h.rooms, "user_a") // emptied rooms are reaped
	assert.Contains(t, h.rooms["user_b"], other)
}

func TestHubBroadcastToEmptyRoom(t *testing.T) {
	h := NewHub()

	// no connections, no writes, no panic
	h.Broadcast([]string{"user_nobody"}, map[string]interface{}{"event": "noop"})
}
