package postgres

import (
	"context"
	"parkwatch/internal/domain"
	"time"
)

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
	// Raise opens an alert at location, or returns the already-open one.
	// The second result reports whether a new alert was created.
	Raise(ctx context.Context, location string) (*domain.DoubleParkingAlert, bool, error)
	ListOpen(ctx context.Context) ([]domain.DoubleParkingAlert, error)
	OpenLocations(ctx context.Context) (map[string]bool, error)
	Resolve(ctx context.Context, id int64) error
}

type BookingRepository interface {
	// Create inserts the booking unless it overlaps an existing one for the
	// same slot; overlap checking and the insert run in one transaction.
	Create(ctx context.Context, booking *domain.Booking) error
	ListBySlot(ctx context.Context, slotNumber int, activeAfter *time.Time) ([]domain.Booking, error)
}

type StatsRepository interface {
	Get(ctx context.Context) (*domain.ParkingStats, error)
}

func (p *Postgres) Slots() SlotRepository { return p.Slot }
func (p *Postgres) Events() EventRepository { return p.Event }
func (p *Postgres) Alerts() AlertRepository { return p.Alert }
func (p *Postgres) Bookings() BookingRepository { return p.Booking }
func (p *Postgres) Stats() StatsRepository { return p.Stat }
