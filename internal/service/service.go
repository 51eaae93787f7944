package service

import (
	"context"
	"parkwatch/internal/domain"
	"time"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Storage contracts consumed by the engine. Implemented by
// internal/storage/postgres; mocked in tests.
type SlotRepository interface {
	List(ctx context.Context) ([]domain.Slot, error)
	ListStatus(ctx context.Context) ([]domain.SlotStatus, error)
	SetOccupancy(ctx context.Context, slotNumber int, occupied bool) error
}

type EventRepository interface {
	Append(ctx context.Context, event *domain.ParkingEvent) error
	List(ctx context.Context, limit int) ([]domain.ParkingEvent, error)
}

type AlertRepository interface {
	Raise(ctx context.Context, location string) (*domain.DoubleParkingAlert, bool, error)
	ListOpen(ctx context.Context) ([]domain.DoubleParkingAlert, error)
	OpenLocations(ctx context.Context) (map[string]bool, error)
	Resolve(ctx context.Context, id int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListBySlot(ctx context.Context, slotNumber int, activeAfter *time.Time) ([]domain.Booking, error)
}

type StatsRepository interface {
	Get(ctx context.Context) (*domain.ParkingStats, error)
}

// Broadcaster is the push boundary. Implemented by ws.Hub. Fanout is
// best-effort per observer and must only be invoked after a commit.
type Broadcaster interface {
	BroadcastUpdate(payload domain.UpdatePayload)
	BroadcastBooking(payload domain.BookingPayload)
}

type StatusCacheService interface {
	GetSlots(ctx context.Context) ([]domain.Slot, error)
	SetSlots(ctx context.Context, slots []domain.Slot, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type AlertQueueService interface {
	Enqueue(ctx context.Context, notification domain.AlertNotification) error
}

// SyncService is the single owner of all state mutations.
type SyncService interface {
	IngestSensorReport(ctx context.Context, report domain.SensorReport) error
	RequestBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)
	ResolveAlert(ctx context.Context, id int64) error

	Snapshot(ctx context.Context) ([]domain.Slot, error)
	SlotStatuses(ctx context.Context) ([]domain.SlotStatus, error)
	OpenAlerts(ctx context.Context) ([]domain.DoubleParkingAlert, error)
	BookingsForSlot(ctx context.Context, slotNumber int, activeOnly bool) ([]domain.Booking, error)
	Stats(ctx context.Context) (*domain.ParkingStats, error)
}

type JournalService interface {
	Events(ctx context.Context, limit int) ([]domain.ParkingEvent, error)
}

type Service struct {
	Sync    SyncService
	Journal JournalService
}

func NewService(sync SyncService, journal JournalService) *Service {
	return &Service{
		Sync:    sync,
		Journal: journal,
	}
}
