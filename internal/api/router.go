package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"parkwatch/internal/api/handlers/http/parking"
	"parkwatch/internal/api/handlers/http/system"
	"parkwatch/internal/config"
	"parkwatch/internal/middleware"
	"parkwatch/internal/service"
	"parkwatch/internal/ws"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, wsHandler *ws.Handler) *Server {
	parkingHandler := parking.NewHandler(logger, svc.Sync, svc.Journal)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, parkingHandler, systemHandler, wsHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, parkingHandler *parking.Handler, systemHandler *system.Handler, wsHandler *ws.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// SENSOR
		api.Route("/sensor", func(sr chi.Router) {
			sr.Use(middleware.Limit(50, 100, 5*time.Minute, logger))
			sr.Post("/update", parkingHandler.SensorUpdate)
		})

		// PARKING
		api.Route("/parking", func(pr chi.Router) {
			pr.Get("/ws", wsHandler.Serve)

			pr.Group(func(gr chi.Router) {
				gr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

				gr.Get("/status", parkingHandler.Status)
				gr.Get("/events", parkingHandler.Events)
				gr.Get("/alerts", parkingHandler.Alerts)
				gr.Post("/alerts/{id}/resolve", parkingHandler.ResolveAlert)
				gr.Get("/stats", parkingHandler.Stats)
				gr.Get("/bookings/{slot_number}", parkingHandler.Bookings)
				gr.Post("/book", parkingHandler.Book)
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
