package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"parkwatch/internal/domain"
	"parkwatch/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Events struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEvents(pool *pgxpool.Pool, logger *slog.Logger) *Events {
	return &Events{pool: pool, logger: logger}
}

func (p *Events) Append(ctx context.Context, event *domain.ParkingEvent) error {
	const op = "postgres.Events.Append"

	const query = `
		INSERT INTO parking_events (event_type, slot_number, details)
		VALUES ($1, $2, $3)
		RETURNING id, occurred_at
	`

	err := p.pool.QueryRow(ctx, query, event.EventType, event.SlotNumber, event.Details).
		Scan(&event.ID, &event.Timestamp)
	if err != nil {
		p.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *Events) List(ctx context.Context, limit int) ([]domain.ParkingEvent, error) {
	const op = "postgres.Events.List"

	if limit <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// id breaks ties for events sharing a timestamp, so the order matches
	// insertion order.
	const query = `
		SELECT id, event_type, slot_number, details, occurred_at
		FROM parking_events
		ORDER BY occurred_at DESC, id DESC
		LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var events []domain.ParkingEvent
	for rows.Next() {
		var ev domain.ParkingEvent
		if err := rows.Scan(&ev.ID, &ev.EventType, &ev.SlotNumber, &ev.Details, &ev.Timestamp); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return events, nil
}
