package ws

import (
	"context"
	"log/slog"
	"net/http"

	"parkwatch/internal/domain"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SnapshotSource hands the handler the current slot list for the init frame.
type SnapshotSource interface {
	Snapshot(ctx context.Context) ([]domain.Slot, error)
}

type Handler struct {
	logger *slog.Logger
	hub    *Hub
	source SnapshotSource
}

func NewHandler(logger *slog.Logger, hub *Hub, source SnapshotSource) *Handler {
	return &Handler{logger: logger, hub: hub, source: source}
}

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	slots, err := h.source.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("snapshot for init failed", slog.Any("error", err))
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	id, err := h.hub.Join(conn, slots)
	if err != nil {
		h.logger.Warn("observer init send failed", slog.String("error", err.Error()))
		return
	}

	// Observers never send application data; the read loop only detects the
	// peer going away.
	go func() {
		defer h.hub.Leave(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
					h.logger.Warn("observer read error", slog.String("error", err.Error()))
				}
				return
			}
		}
	}()
}
