package service

import (
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

// StateWriter is the part of a websocket connection the hub needs.
type StateWriter interface {
	WriteJSON(v interface{}) error
}

// observer serialises writes to one connection; websocket writers do not
// support concurrent use. It remembers the newest state version it sent so a
// broadcast that lost the race to a later one is not delivered after it.
type observer struct {
	mu      sync.Mutex
	w       StateWriter
	version uint64
}

func (o *observer) write(v interface{}) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.w.WriteJSON(v)
}

// writeState sends a state message unless a newer one already went out.
func (o *observer) writeState(msg ws.Message, version uint64) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if version < o.version {
		return nil
	}
	o.version = version
	return o.w.WriteJSON(msg)
}

// Hub tracks the connections watching each game.
type Hub struct {
	connections map[string]map[string]*observer // gameID -> connID -> observer
	mu          sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]map[string]*observer),
	}
}

// Register adds w as an observer of gameID and returns its connection id.
func (h *Hub) Register(gameID string, w StateWriter) string {
	connID := uuid.New().String()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.connections[gameID] == nil {
		h.connections[gameID] = make(map[string]*observer)
	}
	h.connections[gameID][connID] = &observer{w: w}
	log.Debugf("registered connection %s for game %s", connID, gameID)
	return connID
}

func (h *Hub) Unregister(gameID, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.connections[gameID]
	if !ok {
		return
	}
	delete(conns, connID)
	if len(conns) == 0 {
		delete(h.connections, gameID)
	}
	log.Debugf("unregistered connection %s for game %s", connID, gameID)
}

// Drop forgets every observer of gameID.
func (h *Hub) Drop(gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.connections, gameID)
}

func (h *Hub) Count(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.connections[gameID])
}

// Send writes state to a single connection.
func (h *Hub) Send(gameID, connID string, state model.GameState) error {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		return err
	}
	h.mu.RLock()
	o, ok := h.connections[gameID][connID]
	h.mu.RUnlock()
	if !ok {
		return nil
	}
	return o.writeState(msg, state.Version)
}

// Notify writes msg to a single connection. Unknown connections are ignored.
func (h *Hub) Notify(gameID, connID string, msg ws.Message) error {
	h.mu.RLock()
	o, ok := h.connections[gameID][connID]
	h.mu.RUnlock()
	if !ok {
		return nil
	}
	return o.write(msg)
}

// Broadcast pushes state to every observer of gameID. Observers whose write
// fails are dropped. An observer that already received a newer version
// skips this one.
func (h *Hub) Broadcast(gameID string, state model.GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Errorf("failed to marshal state of game %s: %v", gameID, err)
		return
	}

	// Snapshot under the read lock, write without holding it.
	h.mu.RLock()
	active := make(map[string]*observer, len(h.connections[gameID]))
	for connID, o := range h.connections[gameID] {
		active[connID] = o
	}
	h.mu.RUnlock()

	var failed []string
	for connID, o := range active {
		if err := o.writeState(msg, state.Version); err != nil {
			log.Warnf("failed to send state to connection %s: %v", connID, err)
			failed = append(failed, connID)
		}
	}
	for _, connID := range failed {
		h.Unregister(gameID, connID)
	}
}
