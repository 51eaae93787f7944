package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog returns a text slog logger for local runs; JSON handlers
// are used for dev/prod (see components.SetupLogger).
func SetupPrettySlog() *slog.Logger {
	return slog.New(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}),
	)
}
