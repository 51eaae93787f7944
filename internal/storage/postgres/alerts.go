package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"parkwatch/internal/domain"
	"parkwatch/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Alerts struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlerts(pool *pgxpool.Pool, logger *slog.Logger) *Alerts {
	return &Alerts{pool: pool, logger: logger}
}

func (p *Alerts) Raise(ctx context.Context, location string) (*domain.DoubleParkingAlert, bool, error) {
	const op = "postgres.Alerts.Raise"

	// The partial unique index on open alerts makes the insert a no-op when
	// one is already open at this location.
	const insertQuery = `
		INSERT INTO double_parking_alerts (location)
		VALUES ($1)
		ON CONFLICT (location) WHERE NOT resolved DO NOTHING
		RETURNING id, raised_at
	`

	alert := &domain.DoubleParkingAlert{Location: location}
	err := p.pool.QueryRow(ctx, insertQuery, location).Scan(&alert.ID, &alert.Timestamp)
	if err == nil {
		return alert, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err), slog.String("location", location))
		return nil, false, e.WrapError(ctx, op, err)
	}

	const selectQuery = `
		SELECT id, location, resolved, raised_at
		FROM double_parking_alerts
		WHERE location = $1 AND NOT resolved
	`

	err = p.pool.QueryRow(ctx, selectQuery, location).
		Scan(&alert.ID, &alert.Location, &alert.Resolved, &alert.Timestamp)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("location", location))
		return nil, false, e.WrapError(ctx, op, err)
	}

	return alert, false, nil
}

func (p *Alerts) ListOpen(ctx context.Context) ([]domain.DoubleParkingAlert, error) {
	const op = "postgres.Alerts.ListOpen"

	const query = `
		SELECT id, location, resolved, raised_at
		FROM double_parking_alerts
		WHERE NOT resolved
		ORDER BY raised_at DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var alerts []domain.DoubleParkingAlert
	for rows.Next() {
		var a domain.DoubleParkingAlert
		if err := rows.Scan(&a.ID, &a.Location, &a.Resolved, &a.Timestamp); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return alerts, nil
}

func (p *Alerts) OpenLocations(ctx context.Context) (map[string]bool, error) {
	const op = "postgres.Alerts.OpenLocations"

	const query = `
		SELECT DISTINCT location
		FROM double_parking_alerts
		WHERE NOT resolved
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	open := make(map[string]bool)
	for rows.Next() {
		var location string
		if err := rows.Scan(&location); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		open[location] = true
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return open, nil
}

func (p *Alerts) Resolve(ctx context.Context, id int64) error {
	const op = "postgres.Alerts.Resolve"

	// Already-resolved alerts are immutable, so the filter makes the second
	// resolve attempt a NotFound rather than a silent rewrite.
	const query = `
		UPDATE double_parking_alerts
		SET resolved = true
		WHERE id = $1 AND NOT resolved
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
