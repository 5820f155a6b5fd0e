package notification

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans dashboard events out to every connected websocket client.
// Gorilla connections allow a single concurrent writer, so every
// connection carries its own write lock and all sends go through it.
type Hub struct {
	connections map[*websocket.Conn]*sync.Mutex
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]*sync.Mutex),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.connections[conn] = &sync.Mutex{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// Broadcast writes the event to all clients, dropping any connection
// that fails mid-write.
func (h *Hub) Broadcast(event any) {
	type client struct {
		conn  *websocket.Conn
		write *sync.Mutex
	}

	h.mutex.RLock()
	clients := make([]client, 0, len(h.connections))
	for conn, write := range h.connections {
		clients = append(clients, client{conn: conn, write: write})
	}
	h.mutex.RUnlock()

	for _, cl := range clients {
		cl.write.Lock()
		err := cl.conn.WriteJSON(event)
		cl.write.Unlock()
		if err != nil {
			h.Unregister(cl.conn)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}
