package postgres

import (
	"context"
	"fmt"

	"log/slog"
	"parkwatch/internal/config"
	"parkwatch/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool     *pgxpool.Pool
	Slot     SlotRepository
	Event    EventRepository
	Alert    AlertRepository
	Booking  BookingRepository
	Stat     StatsRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres", "host", cfg.Postgres.Host, "db", cfg.Postgres.Database)

	configNew, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	configNew.MaxConns = cfg.Postgres.MaxConns
	configNew.MinConns = cfg.Postgres.MinConns
	configNew.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, configNew)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	logger.Info("Pinging Postgres database")
	err = pool.Ping(ctx)
	if err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if err := ensureSchema(ctx, pool, cfg.Parking.SlotCount); err != nil {
		logger.Error("Failed to init schema", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.ensureSchema", err)
	}

	pg := &Postgres{
		Pool:    pool,
		Slot:    NewSlots(pool, logger),
		Event:   NewEvents(pool, logger),
		Alert:   NewAlerts(pool, logger),
		Booking: NewBookings(pool, logger),
		Stat:    NewStats(pool, logger),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}

// ensureSchema creates the tables on first start and seeds one row per slot
// number, mirroring what the sensor gateway expects to find.
func ensureSchema(ctx context.Context, pool *pgxpool.Pool, slotCount int) error {
	_, err := pool.Exec(ctx, schemaSQL)
	if err != nil {
		return err
	}
	for n := 1; n <= slotCount; n++ {
		_, err = pool.Exec(ctx, `
			INSERT INTO parking_slots (slot_number)
			VALUES ($1)
			ON CONFLICT (slot_number) DO NOTHING
		`, n)
		if err != nil {
			return err
		}
	}
	return nil
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS parking_slots (
	slot_number  int PRIMARY KEY,
	is_occupied  boolean     NOT NULL DEFAULT false,
	last_updated timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS parking_events (
	id          bigserial PRIMARY KEY,
	event_type  text        NOT NULL,
	slot_number int,
	details     text        NOT NULL DEFAULT '',
	occurred_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS double_parking_alerts (
	id          bigserial PRIMARY KEY,
	location    text        NOT NULL,
	resolved    boolean     NOT NULL DEFAULT false,
	raised_at   timestamptz NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS double_parking_alerts_open_location
	ON double_parking_alerts (location) WHERE NOT resolved;

CREATE TABLE IF NOT EXISTS bookings (
	id           bigserial PRIMARY KEY,
	slot_number  int         NOT NULL REFERENCES parking_slots (slot_number),
	number_plate text        NOT NULL,
	start_time   timestamptz NOT NULL,
	end_time     timestamptz NOT NULL,
	created_at   timestamptz NOT NULL DEFAULT now(),
	CHECK (end_time > start_time)
);

CREATE INDEX IF NOT EXISTS bookings_slot_start
	ON bookings (slot_number, start_time);
`
