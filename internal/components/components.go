package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"parkwatch/internal/api"
	"parkwatch/internal/config"
	"parkwatch/internal/redis"
	"parkwatch/internal/service"
	"parkwatch/internal/storage/postgres"
	"parkwatch/internal/ws"
	"parkwatch/pkg/logger"
)

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	Hub         *ws.Hub
	AlertQueue  *redis.AlertQueue
	AlertSender *service.AlertSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	statusCache := redis.NewStatusCache(redisClient)
	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:queue")

	hub := ws.NewHub(logger)

	syncEngine := service.NewSyncEngine(
		logger,
		cfg.Parking,
		storage.Slots(),
		storage.Events(),
		storage.Alerts(),
		storage.Bookings(),
		storage.Stats(),
		hub,
		statusCache,
		alertQueue,
	)
	journal := service.NewJournal(storage.Events(), cfg.Parking.EventsLimit)

	srv := service.NewService(syncEngine, journal)

	wsHandler := ws.NewHandler(logger, hub, syncEngine)

	var sender *service.AlertSender
	if !cfg.Webhook.Disabled {
		sender = service.NewAlertSender(logger, cfg.Webhook, alertQueue)
	}

	httpServer := api.NewServer(cfg, logger, srv, wsHandler)
	logger.Info("Initialized server")

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		Hub:         hub,
		AlertQueue:  alertQueue,
		AlertSender: sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Hub.Shutdown()

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
