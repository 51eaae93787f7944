package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"parkwatch/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type connState int

const (
	stateConnecting connState = iota
	stateOpen
	stateClosed
)

type connection struct {
	id    uuid.UUID
	ws    *websocket.Conn
	state connState

	// gorilla allows one concurrent writer per conn
	writeMu sync.Mutex
}

func (c *connection) send(message []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteMessage(websocket.TextMessage, message)
}

// Hub owns the set of live observer connections and fans typed messages out
// to all of them. Fanout iterates over a snapshot of the set, so observers
// joining or leaving mid-broadcast never corrupt the pass, and a dead
// connection only costs its own delivery.
type Hub struct {
	logger *slog.Logger

	mu    sync.RWMutex
	conns map[uuid.UUID]*connection
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		conns:  make(map[uuid.UUID]*connection),
	}
}

// Join registers the connection and sends the init snapshot. The snapshot is
// the first frame the observer sees, so late joiners never depend on updates
// broadcast before they connected.
func (h *Hub) Join(ws *websocket.Conn, slots []domain.Slot) (uuid.UUID, error) {
	conn := &connection{
		id:    uuid.New(),
		ws:    ws,
		state: stateConnecting,
	}

	message, err := json.Marshal(domain.Envelope{Type: domain.MsgInit, Data: slots})
	if err != nil {
		return uuid.Nil, err
	}
	if err := conn.send(message); err != nil {
		_ = ws.Close()
		return uuid.Nil, err
	}
	conn.state = stateOpen

	h.mu.Lock()
	h.conns[conn.id] = conn
	total := len(h.conns)
	h.mu.Unlock()

	h.logger.Info("observer connected", slog.String("conn_id", conn.id.String()), slog.Int("total", total))
	return conn.id, nil
}

// Leave transitions the connection to closed and drops it from the fanout
// set. Safe to call more than once.
func (h *Hub) Leave(id uuid.UUID) {
	h.mu.Lock()
	conn, ok := h.conns[id]
	if ok {
		delete(h.conns, id)
		conn.state = stateClosed
	}
	total := len(h.conns)
	h.mu.Unlock()

	if ok {
		_ = conn.ws.Close()
		h.logger.Info("observer disconnected", slog.String("conn_id", id.String()), slog.Int("total", total))
	}
}

func (h *Hub) BroadcastUpdate(payload domain.UpdatePayload) {
	h.broadcast(domain.Envelope{Type: domain.MsgUpdate, Data: payload})
}

func (h *Hub) BroadcastBooking(payload domain.BookingPayload) {
	h.broadcast(domain.Envelope{Type: domain.MsgBooking, Data: payload})
}

// Count reports the number of open observer connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Shutdown closes every connection and empties the set.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	conns := make([]*connection, 0, len(h.conns))
	for _, conn := range h.conns {
		conns = append(conns, conn)
		conn.state = stateClosed
	}
	h.conns = make(map[uuid.UUID]*connection)
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.ws.Close()
	}
}

func (h *Hub) broadcast(envelope domain.Envelope) {
	message, err := json.Marshal(envelope)
	if err != nil {
		h.logger.Error("marshal broadcast failed", slog.String("type", envelope.Type), slog.Any("error", err))
		return
	}

	h.mu.RLock()
	targets := make([]*connection, 0, len(h.conns))
	for _, conn := range h.conns {
		if conn.state == stateOpen {
			targets = append(targets, conn)
		}
	}
	h.mu.RUnlock()

	var dead []uuid.UUID
	for _, conn := range targets {
		if err := conn.send(message); err != nil {
			h.logger.Warn("observer write failed, dropping",
				slog.String("conn_id", conn.id.String()),
				slog.String("error", err.Error()),
			)
			dead = append(dead, conn.id)
		}
	}
	for _, id := range dead {
		h.Leave(id)
	}
}
