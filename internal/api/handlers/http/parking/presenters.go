package parking

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"parkwatch/internal/domain"
	"parkwatch/pkg/e"

	"log/slog"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	switch {
	case errors.Is(err, e.ErrNotFound):
		l.Warn("not found", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidSlot):
		l.Warn("invalid slot", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "slot number out of range"})
	case errors.Is(err, e.ErrInvalidInput):
		l.Warn("invalid input", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrConflict):
		l.Warn("conflict", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	case errors.Is(err, e.ErrDeadline), errors.Is(err, e.ErrUnavailable):
		l.Error("storage unavailable", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "service unavailable"})
	case errors.Is(err, e.ErrCanceled):
		l.Warn("request canceled", slog.String("error", err.Error()))
	default:
		l.Error("internal error", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func (h *Handler) handleBookingError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	switch {
	case errors.Is(err, e.ErrConflict):
		l.Warn("booking conflict", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusConflict, domain.BookingResponse{
			Success: false,
			Message: "Slot is already booked for the specified time",
		})
	case errors.Is(err, e.ErrInvalidSlot):
		l.Warn("invalid slot", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, domain.BookingResponse{
			Success: false,
			Message: "Slot number out of range",
		})
	case errors.Is(err, e.ErrInvalidInput):
		l.Warn("invalid booking request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, domain.BookingResponse{
			Success: false,
			Message: "Invalid booking request",
		})
	case errors.Is(err, e.ErrNotFound):
		l.Warn("unknown slot", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusNotFound, domain.BookingResponse{
			Success: false,
			Message: "Slot not found",
		})
	default:
		h.handleError(w, r, err)
	}
}

func bookingMessage(b *domain.Booking) string {
	return fmt.Sprintf("Slot %d booked from %s to %s",
		b.SlotNumber,
		b.StartTime.Format(time.RFC3339),
		b.EndTime.Format(time.RFC3339),
	)
}
