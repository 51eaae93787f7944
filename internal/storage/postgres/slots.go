package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"parkwatch/internal/domain"
	"parkwatch/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Slots struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSlots(pool *pgxpool.Pool, logger *slog.Logger) *Slots {
	return &Slots{pool: pool, logger: logger}
}

func (p *Slots) List(ctx context.Context) ([]domain.Slot, error) {
	const op = "postgres.Slots.List"

	const query = `
		SELECT slot_number, is_occupied, last_updated
		FROM parking_slots
		ORDER BY slot_number
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var slots []domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.SlotNumber, &s.IsOccupied, &s.LastUpdated); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return slots, nil
}

func (p *Slots) ListStatus(ctx context.Context) ([]domain.SlotStatus, error) {
	const op = "postgres.Slots.ListStatus"

	const query = `
		SELECT ps.slot_number,
			   ps.is_occupied,
			   ps.last_updated,
			   (SELECT COUNT(*) FROM parking_events pe
				WHERE pe.slot_number = ps.slot_number
				  AND pe.occurred_at::date = now()::date
			   ) AS today_events
		FROM parking_slots ps
		ORDER BY ps.slot_number
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var statuses []domain.SlotStatus
	for rows.Next() {
		var s domain.SlotStatus
		if err := rows.Scan(&s.SlotNumber, &s.IsOccupied, &s.LastUpdated, &s.TodayEvents); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		statuses = append(statuses, s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return statuses, nil
}

func (p *Slots) SetOccupancy(ctx context.Context, slotNumber int, occupied bool) error {
	const op = "postgres.Slots.SetOccupancy"

	const query = `
		UPDATE parking_slots
		SET is_occupied = $2, last_updated = now()
		WHERE slot_number = $1
	`

	cmd, err := p.pool.Exec(ctx, query, slotNumber, occupied)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int("slot", slotNumber))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
