// Package trace mirrors emulator.Snapshot values to connected viewers over
// a WebSocket, and offers a structured per-step logging hook. Keeps the
// websocket transport and viewer-registration pattern of a framebuffer
// dev server, minus the ELF loader and the display framebuffer itself:
// the tracing need here is register/PC/status visibility, not a
// rendered screen.
package trace

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rvtoolchain/rv32i/emulator"
)

// Logger is a structured per-step log hook, an explicit field rather than
// a package-level global.
type Logger func(format string, args ...any)

// Hub fans out Snapshot values to every connected viewer. The zero value
// is not usable; construct with NewHub.
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
}

// NewHub returns an empty Hub ready to accept viewer connections.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: map[*websocket.Conn]bool{},
	}
}

// ServeHTTP upgrades the request to a WebSocket and registers the
// resulting connection as a viewer until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("trace: upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Viewers are read-only; drain and discard anything they send so the
	// connection's close is detected promptly.
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast sends snapshot as JSON to every connected viewer, dropping any
// connection that fails to accept the write.
func (h *Hub) Broadcast(snapshot emulator.Snapshot) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("trace: marshal snapshot: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// Observer builds an emulator.Config.Observer callback that broadcasts
// every snapshot to h and, if logger is non-nil, logs it. Either argument
// may be nil to disable that half of the behavior.
func Observer(h *Hub, logger Logger) func(emulator.Snapshot) {
	return func(snapshot emulator.Snapshot) {
		if h != nil {
			h.Broadcast(snapshot)
		}
		if logger != nil {
			logger("step=%d pc=0x%08X status=%s a0=0x%08X", snapshot.Step, snapshot.PC, snapshot.Status, snapshot.Registers[10])
		}
	}
}
