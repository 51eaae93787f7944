package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"parkwatch/internal/redis"
	"parkwatch/pkg/e"

	"net/http"
	"time"

	"log/slog"
	"parkwatch/internal/config"
	"parkwatch/internal/domain"
)

// AlertSender drains the redis alert queue and POSTs each raised alert to
// the configured webhook. Delivery is out of band: ingestion only enqueues,
// so a slow webhook endpoint never blocks sensor processing.
type AlertSender struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	queue  *redis.AlertQueue
	http   *http.Client
}

func NewAlertSender(logger *slog.Logger, cfg config.WebhookConfig, q *redis.AlertQueue) *AlertSender {
	return &AlertSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *AlertSender) Run(ctx context.Context) {
	s.logger.Info("alertSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alertSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		notification, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending alert webhook",
			slog.Int64("alert_id", notification.AlertID),
			slog.String("location", notification.Location),
		)
		s.sendWithRetry(ctx, notification)
	}
}

func (s *AlertSender) sendWithRetry(ctx context.Context, n domain.AlertNotification) {
	const maxRetries = 3

	body, err := json.Marshal(n)
	if err != nil {
		s.logger.Error("marshal alert notification failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create webhook request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("alert webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
