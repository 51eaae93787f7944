package parking_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"parkwatch/internal/api/handlers/http/parking"
	"parkwatch/internal/domain"
	"parkwatch/pkg/e"

	mock_service "parkwatch/internal/service/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestHandler(ctrl *gomock.Controller) (*parking.Handler, *mock_service.MockSyncService, *mock_service.MockJournalService) {
	engine := mock_service.NewMockSyncService(ctrl)
	journal := mock_service.NewMockJournalService(ctrl)
	return parking.NewHandler(newTestLogger(), engine, journal), engine, journal
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// --- SensorUpdate ---

func TestSensorUpdate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, engine, _ := newTestHandler(ctrl)

	reqBody := `{"slot1":true,"slot2":false,"slot3":false,"doubleParkingMid1":false,"doubleParkingMid2":false,"availableSlots":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sensor/update", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	engine.EXPECT().
		IngestSensorReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.SensorReport) error {
			want := []bool{true, false, false}
			for i := range want {
				if r.Occupancy[i] != want[i] {
					t.Errorf("occupancy[%d] = %v, want %v", i, r.Occupancy[i], want[i])
				}
			}
			if r.AvailableSlots != 2 {
				t.Errorf("available = %d, want 2", r.AvailableSlots)
			}
			return nil
		}).
		Times(1)

	h.SensorUpdate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]bool](t, rr)
	if !got["success"] {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestSensorUpdate_MissingSlotField_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	reqBody := `{"slot1":true,"slot2":false,"availableSlots":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sensor/update", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.SensorUpdate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestSensorUpdate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sensor/update", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.SensorUpdate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

// --- Status ---

func TestStatus_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, engine, _ := newTestHandler(ctrl)

	statuses := []domain.SlotStatus{
		{Slot: domain.Slot{SlotNumber: 1, IsOccupied: true}, TodayEvents: 4},
		{Slot: domain.Slot{SlotNumber: 2}, TodayEvents: 0},
	}
	engine.EXPECT().SlotStatuses(gomock.Any()).Return(statuses, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parking/status", nil)
	rr := httptest.NewRecorder()

	h.Status(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[[]domain.SlotStatus](t, rr)
	if len(got) != 2 || got[0].TodayEvents != 4 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

// --- Events ---

func TestEvents_DefaultLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, journal := newTestHandler(ctrl)

	journal.EXPECT().Events(gomock.Any(), 0).Return([]domain.ParkingEvent{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parking/events", nil)
	rr := httptest.NewRecorder()

	h.Events(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestEvents_ExplicitLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, journal := newTestHandler(ctrl)

	journal.EXPECT().Events(gomock.Any(), 10).Return([]domain.ParkingEvent{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parking/events?limit=10", nil)
	rr := httptest.NewRecorder()

	h.Events(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestEvents_BadLimit_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	for _, limit := range []string{"0", "-5", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/parking/events?limit="+limit, nil)
		rr := httptest.NewRecorder()

		h.Events(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected %d got %d", limit, http.StatusBadRequest, rr.Code)
		}
	}
}

// --- ResolveAlert ---

func TestResolveAlert_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, engine, _ := newTestHandler(ctrl)

	engine.EXPECT().ResolveAlert(gomock.Any(), int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parking/alerts/7/resolve", nil)
	req = withURLParam(req, "id", "7")
	rr := httptest.NewRecorder()

	h.ResolveAlert(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.ResolveResponse](t, rr)
	if !got.Success {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestResolveAlert_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, engine, _ := newTestHandler(ctrl)

	engine.EXPECT().ResolveAlert(gomock.Any(), int64(99)).Return(e.ErrNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parking/alerts/99/resolve", nil)
	req = withURLParam(req, "id", "99")
	rr := httptest.NewRecorder()

	h.ResolveAlert(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestResolveAlert_BadID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parking/alerts/abc/resolve", nil)
	req = withURLParam(req, "id", "abc")
	rr := httptest.NewRecorder()

	h.ResolveAlert(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

// --- Book ---

func TestBook_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, engine, _ := newTestHandler(ctrl)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	engine.EXPECT().
		RequestBooking(gomock.Any(), gomock.Any()).
		Return(&domain.Booking{ID: 1, SlotNumber: 2, NumberPlate: "KA-1234", StartTime: start, EndTime: end}, nil)

	body, _ := json.Marshal(domain.BookingRequest{SlotNumber: 2, NumberPlate: "KA-1234", StartTime: start, EndTime: end})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parking/book", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	h.Book(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.BookingResponse](t, rr)
	if !got.Success || got.Message == "" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestBook_Conflict_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, engine, _ := newTestHandler(ctrl)

	engine.EXPECT().RequestBooking(gomock.Any(), gomock.Any()).Return(nil, e.ErrConflict)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	body, _ := json.Marshal(domain.BookingRequest{SlotNumber: 1, NumberPlate: "KA-1234", StartTime: start, EndTime: start.Add(time.Hour)})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parking/book", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	h.Book(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.BookingResponse](t, rr)
	if got.Success {
		t.Fatalf("unexpected response: %+v", got)
	}
}

// --- Bookings ---

func TestBookings_BadSlotParam_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parking/bookings/abc", nil)
	req = withURLParam(req, "slot_number", "abc")
	rr := httptest.NewRecorder()

	h.Bookings(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestBookings_ActiveFlag(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, engine, _ := newTestHandler(ctrl)

	engine.EXPECT().BookingsForSlot(gomock.Any(), 2, true).Return([]domain.Booking{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parking/bookings/2?active=true", nil)
	req = withURLParam(req, "slot_number", "2")
	rr := httptest.NewRecorder()

	h.Bookings(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

// --- Stats ---

func TestStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, engine, _ := newTestHandler(ctrl)

	engine.EXPECT().Stats(gomock.Any()).Return(&domain.ParkingStats{
		TodayEvents:    12,
		OccupiedSlots:  2,
		ActiveAlerts:   1,
		AvailableSlots: 1,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parking/stats", nil)
	rr := httptest.NewRecorder()

	h.Stats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.ParkingStats](t, rr)
	if got.TodayEvents != 12 || got.ActiveAlerts != 1 {
		t.Fatalf("unexpected response: %+v", got)
	}
}
