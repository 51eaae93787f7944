package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"parkwatch/internal/config"
	"parkwatch/internal/domain"
	"parkwatch/pkg/e"
	"parkwatch/pkg/validator"
)

// SyncEngine reconciles sensor reports and booking requests with stored
// state and tells the hub what to publish. It is the one writer: ingestion
// is serialized (a report touches every slot), bookings serialize per slot,
// and alert raises are idempotent at the storage level. Broadcasts go out
// only after the corresponding commit succeeded.
type SyncEngine struct {
	logger   *slog.Logger
	slots    SlotRepository
	events   EventRepository
	alerts   AlertRepository
	bookings BookingRepository
	stats    StatsRepository
	hub      Broadcaster
	cache    StatusCacheService
	queue    AlertQueueService
	cfg      config.ParkingConfig

	ingestMu sync.Mutex
	slotMu   keyedMutex
}

func NewSyncEngine(
	logger *slog.Logger,
	cfg config.ParkingConfig,
	slots SlotRepository,
	events EventRepository,
	alerts AlertRepository,
	bookings BookingRepository,
	stats StatsRepository,
	hub Broadcaster,
	cache StatusCacheService,
	queue AlertQueueService,
) *SyncEngine {
	return &SyncEngine{
		logger:   logger,
		slots:    slots,
		events:   events,
		alerts:   alerts,
		bookings: bookings,
		stats:    stats,
		hub:      hub,
		cache:    cache,
		queue:    queue,
		cfg:      cfg,
	}
}

// storageCtx bounds a storage operation so a stuck durability layer surfaces
// as a failure instead of a hang.
func (s *SyncEngine) storageCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.StorageTimeout)
}

func (s *SyncEngine) IngestSensorReport(ctx context.Context, report domain.SensorReport) error {
	const op = "service.Sync.IngestSensorReport"

	if len(report.Occupancy) != s.cfg.SlotCount {
		return fmt.Errorf("%s: expected %d slots, got %d: %w", op, s.cfg.SlotCount, len(report.Occupancy), e.ErrInvalidInput)
	}
	if len(report.Gaps) > s.cfg.SlotCount-1 {
		return fmt.Errorf("%s: %d gap flags for %d slots: %w", op, len(report.Gaps), s.cfg.SlotCount, e.ErrInvalidInput)
	}

	// Reports touch every slot, so they serialize against each other. The
	// last report wins per slot.
	s.ingestMu.Lock()
	defer s.ingestMu.Unlock()

	sctx, cancel := s.storageCtx(ctx)
	defer cancel()

	current, err := s.slots.List(sctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	changes := DetectOccupancyChanges(current, report.Occupancy)
	for _, change := range changes {
		if err := s.slots.SetOccupancy(sctx, change.SlotNumber, change.Occupied); err != nil {
			return e.Wrap(op, err)
		}
		slotNumber := change.SlotNumber
		event := &domain.ParkingEvent{
			EventType:  change.Event,
			SlotNumber: &slotNumber,
			Details:    string(report.SensorData),
		}
		if err := s.events.Append(sctx, event); err != nil {
			return e.Wrap(op, err)
		}
	}

	for _, location := range GapAlertLocations(report.Gaps) {
		alert, created, err := s.alerts.Raise(sctx, location)
		if err != nil {
			return e.Wrap(op, err)
		}
		if created {
			s.logger.Warn("double parking alert raised",
				slog.Int64("alert_id", alert.ID),
				slog.String("location", alert.Location),
			)
			s.notifyAlert(ctx, alert)
		}
	}

	updated, err := s.slots.List(sctx)
	if err != nil {
		return e.Wrap(op, err)
	}
	openGaps, err := s.alerts.OpenLocations(sctx)
	if err != nil {
		return e.Wrap(op, err)
	}
	s.refreshCache(ctx, updated)

	// Exactly one update per physical report, after all commits, so every
	// observer sees the report as a single consistent transition. The gap
	// flags come from the stored open alerts, not the raw report: an alert
	// stays visible until it is resolved, even when a later report no longer
	// raises the flag.
	s.hub.BroadcastUpdate(domain.UpdatePayload{
		Slots:             updated,
		DoubleParkingMid1: openGaps[domain.GapLocation(1)],
		DoubleParkingMid2: openGaps[domain.GapLocation(2)],
		AvailableSlots:    report.AvailableSlots,
	})

	s.logger.Info("sensor report ingested",
		slog.Int("changes", len(changes)),
		slog.Int("available", report.AvailableSlots),
	)
	return nil
}

func (s *SyncEngine) RequestBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	const op = "service.Sync.RequestBooking"

	if err := validator.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%s: end_time must be after start_time: %w", op, e.ErrInvalidInput)
	}
	if req.SlotNumber > s.cfg.SlotCount {
		return nil, fmt.Errorf("%s: slot %d: %w", op, req.SlotNumber, e.ErrInvalidSlot)
	}

	// Concurrent requests for the same slot serialize here; together with
	// the transactional overlap check at most one of two overlapping
	// requests can commit.
	unlock := s.slotMu.lock(req.SlotNumber)
	defer unlock()

	sctx, cancel := s.storageCtx(ctx)
	defer cancel()

	booking := &domain.Booking{
		SlotNumber:  req.SlotNumber,
		NumberPlate: req.NumberPlate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if err := s.bookings.Create(sctx, booking); err != nil {
		return nil, e.Wrap(op, err)
	}

	slotNumber := booking.SlotNumber
	event := &domain.ParkingEvent{
		EventType:  domain.EventBook,
		SlotNumber: &slotNumber,
		Details:    fmt.Sprintf("Booked until %s", booking.EndTime.Format(time.RFC3339)),
	}
	if err := s.events.Append(sctx, event); err != nil {
		// The booking row is committed; a journal failure must not undo it.
		s.logger.Error("book event append failed", slog.String("op", op), slog.Any("error", err))
	}

	s.hub.BroadcastBooking(domain.BookingPayload{
		SlotNumber:  booking.SlotNumber,
		NumberPlate: booking.NumberPlate,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
	})

	s.logger.Info("booking created",
		slog.Int64("booking_id", booking.ID),
		slog.Int("slot", booking.SlotNumber),
	)
	return booking, nil
}

// ResolveAlert closes an open alert. Resolution is not broadcast: alerts are
// a polled resource on the query boundary, and dashboards refresh them on
// their own schedule.
func (s *SyncEngine) ResolveAlert(ctx context.Context, id int64) error {
	const op = "service.Sync.ResolveAlert"

	sctx, cancel := s.storageCtx(ctx)
	defer cancel()

	if err := s.alerts.Resolve(sctx, id); err != nil {
		return e.Wrap(op, err)
	}

	s.logger.Info("alert resolved", slog.Int64("alert_id", id))
	return nil
}

// Snapshot returns the current slot list, preferring the cache and falling
// back to storage on a miss.
func (s *SyncEngine) Snapshot(ctx context.Context) ([]domain.Slot, error) {
	const op = "service.Sync.Snapshot"

	if s.cache != nil {
		cached, err := s.cache.GetSlots(ctx)
		if err != nil {
			s.logger.Warn("status cache read failed", slog.String("op", op), slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	sctx, cancel := s.storageCtx(ctx)
	defer cancel()

	slots, err := s.slots.List(sctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	s.refreshCache(ctx, slots)
	return slots, nil
}

func (s *SyncEngine) SlotStatuses(ctx context.Context) ([]domain.SlotStatus, error) {
	sctx, cancel := s.storageCtx(ctx)
	defer cancel()
	return s.slots.ListStatus(sctx)
}

func (s *SyncEngine) OpenAlerts(ctx context.Context) ([]domain.DoubleParkingAlert, error) {
	sctx, cancel := s.storageCtx(ctx)
	defer cancel()
	return s.alerts.ListOpen(sctx)
}

func (s *SyncEngine) BookingsForSlot(ctx context.Context, slotNumber int, activeOnly bool) ([]domain.Booking, error) {
	const op = "service.Sync.BookingsForSlot"

	if slotNumber < 1 || slotNumber > s.cfg.SlotCount {
		return nil, fmt.Errorf("%s: slot %d: %w", op, slotNumber, e.ErrInvalidSlot)
	}

	var activeAfter *time.Time
	if activeOnly {
		now := time.Now().UTC()
		activeAfter = &now
	}

	sctx, cancel := s.storageCtx(ctx)
	defer cancel()
	return s.bookings.ListBySlot(sctx, slotNumber, activeAfter)
}

func (s *SyncEngine) Stats(ctx context.Context) (*domain.ParkingStats, error) {
	sctx, cancel := s.storageCtx(ctx)
	defer cancel()
	return s.stats.Get(sctx)
}

func (s *SyncEngine) refreshCache(ctx context.Context, slots []domain.Slot) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetSlots(ctx, slots, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("status cache refresh failed", slog.Any("error", err))
		// Drop the stale entry so the next snapshot falls through to
		// storage instead of serving pre-commit state for a full TTL.
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("status cache invalidate failed", slog.Any("error", err))
		}
	}
}

func (s *SyncEngine) notifyAlert(ctx context.Context, alert *domain.DoubleParkingAlert) {
	if s.queue == nil {
		return
	}
	n := domain.AlertNotification{
		AlertID:  alert.ID,
		Location: alert.Location,
		RaisedAt: alert.Timestamp,
	}
	if err := s.queue.Enqueue(ctx, n); err != nil {
		s.logger.Error("enqueue alert notification failed", slog.Any("error", err))
	}
}

// keyedMutex hands out one mutex per slot number.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func (k *keyedMutex) lock(key int) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[int]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
