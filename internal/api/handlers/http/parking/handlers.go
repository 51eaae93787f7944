package parking

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"parkwatch/internal/domain"
	"parkwatch/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Engine interface {
	IngestSensorReport(ctx context.Context, report domain.SensorReport) error
	RequestBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)
	ResolveAlert(ctx context.Context, id int64) error
	SlotStatuses(ctx context.Context) ([]domain.SlotStatus, error)
	OpenAlerts(ctx context.Context) ([]domain.DoubleParkingAlert, error)
	BookingsForSlot(ctx context.Context, slotNumber int, activeOnly bool) ([]domain.Booking, error)
	Stats(ctx context.Context) (*domain.ParkingStats, error)
}

type Journal interface {
	Events(ctx context.Context, limit int) ([]domain.ParkingEvent, error)
}

type Handler struct {
	logger  *slog.Logger
	Engine  Engine
	Journal Journal
}

func NewHandler(logger *slog.Logger, engine Engine, journal Journal) *Handler {
	return &Handler{
		logger:  logger,
		Engine:  engine,
		Journal: journal,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) SensorUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SensorUpdate", slog.String("remote", r.RemoteAddr))

	var req domain.SensorReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("invalid report", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed sensor report"})
		return
	}

	if err := h.Engine.IngestSensorReport(r.Context(), req.ToReport()); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Status", slog.String("remote", r.RemoteAddr))

	statuses, err := h.Engine.SlotStatuses(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if statuses == nil {
		statuses = []domain.SlotStatus{}
	}
	h.writeJSON(w, http.StatusOK, statuses)
}

func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Events", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	limit := 0 // journal default
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			l.Warn("invalid limit", slog.String("limit", raw))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be positive"})
			return
		}
		limit = n
	}

	events, err := h.Journal.Events(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if events == nil {
		events = []domain.ParkingEvent{}
	}
	h.writeJSON(w, http.StatusOK, events)
}

func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Alerts", slog.String("remote", r.RemoteAddr))

	alerts, err := h.Engine.OpenAlerts(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if alerts == nil {
		alerts = []domain.DoubleParkingAlert{}
	}
	h.writeJSON(w, http.StatusOK, alerts)
}

func (h *Handler) ResolveAlert(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ResolveAlert", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Engine.ResolveAlert(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert resolved", slog.Int64("id", id))
	h.writeJSON(w, http.StatusOK, domain.ResolveResponse{Success: true})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Stats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Engine.Stats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) Bookings(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Bookings", slog.String("remote", r.RemoteAddr))

	slotStr := chi.URLParam(r, "slot_number")
	slotNumber, err := strconv.Atoi(slotStr)
	if err != nil {
		l.Warn("invalid slot number", slog.String("slot_number", slotStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid slot number"})
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	bookings, err := h.Engine.BookingsForSlot(r.Context(), slotNumber, activeOnly)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}
	h.writeJSON(w, http.StatusOK, bookings)
}

func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Book", slog.String("remote", r.RemoteAddr))

	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("booking request",
		slog.Int("slot", req.SlotNumber),
		slog.Time("start", req.StartTime),
		slog.Time("end", req.EndTime),
	)

	booking, err := h.Engine.RequestBooking(r.Context(), req)
	if err != nil {
		h.handleBookingError(w, r, err)
		return
	}

	l.Info("booking created", slog.Int64("id", booking.ID))
	h.writeJSON(w, http.StatusOK, domain.BookingResponse{
		Success: true,
		Message: bookingMessage(booking),
	})
}
