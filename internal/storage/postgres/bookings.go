package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"parkwatch/internal/domain"
	"parkwatch/pkg/e"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Bookings struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewBookings(pool *pgxpool.Pool, logger *slog.Logger) *Bookings {
	return &Bookings{pool: pool, logger: logger}
}

func (p *Bookings) Create(ctx context.Context, booking *domain.Booking) error {
	const op = "postgres.Bookings.Create"

	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		p.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	// Locking the slot row serializes concurrent bookings for the same slot;
	// the overlap check below is then race-free. Unknown slots fail here.
	const lockQuery = `
		SELECT slot_number FROM parking_slots
		WHERE slot_number = $1
		FOR UPDATE
	`

	var slotNumber int
	if err := tx.QueryRow(ctx, lockQuery, booking.SlotNumber).Scan(&slotNumber); err != nil {
		return e.WrapError(ctx, op, err)
	}

	// Half-open windows: s1 < e2 AND s2 < e1. Bookings touching only at a
	// boundary instant do not overlap.
	const overlapQuery = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE slot_number = $1
			  AND start_time < $3
			  AND $2 < end_time
		)
	`

	var overlaps bool
	if err := tx.QueryRow(ctx, overlapQuery, booking.SlotNumber, booking.StartTime, booking.EndTime).Scan(&overlaps); err != nil {
		p.logger.Error("overlap check failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if overlaps {
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}

	const insertQuery = `
		INSERT INTO bookings (slot_number, number_plate, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err = tx.QueryRow(ctx, insertQuery,
		booking.SlotNumber,
		booking.NumberPlate,
		booking.StartTime,
		booking.EndTime,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		p.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *Bookings) ListBySlot(ctx context.Context, slotNumber int, activeAfter *time.Time) ([]domain.Booking, error) {
	const op = "postgres.Bookings.ListBySlot"

	const query = `
		SELECT id, slot_number, number_plate, start_time, end_time, created_at
		FROM bookings
		WHERE slot_number = $1
		  AND ($2::timestamptz IS NULL OR end_time > $2)
		ORDER BY start_time
	`

	rows, err := p.pool.Query(ctx, query, slotNumber, activeAfter)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.Int("slot", slotNumber))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.SlotNumber, &b.NumberPlate, &b.StartTime, &b.EndTime, &b.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return bookings, nil
}
