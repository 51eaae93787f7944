package postgres

import (
	"context"
	"log/slog"
	"parkwatch/internal/domain"
	"parkwatch/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Stats struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *Stats {
	return &Stats{pool: pool, logger: logger}
}

func (p *Stats) Get(ctx context.Context) (*domain.ParkingStats, error) {
	const op = "postgres.Stats.Get"

	const query = `
		SELECT
			(SELECT COUNT(*) FROM parking_events WHERE occurred_at::date = now()::date) AS today_events,
			(SELECT COUNT(*) FROM parking_slots WHERE is_occupied) AS occupied_slots,
			(SELECT COUNT(*) FROM double_parking_alerts WHERE NOT resolved) AS active_alerts,
			(SELECT COUNT(*) FROM parking_slots WHERE NOT is_occupied) AS available_slots
	`

	var stats domain.ParkingStats
	err := p.pool.QueryRow(ctx, query).Scan(
		&stats.TodayEvents,
		&stats.OccupiedSlots,
		&stats.ActiveAlerts,
		&stats.AvailableSlots,
	)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &stats, nil
}
