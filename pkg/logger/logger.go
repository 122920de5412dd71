package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. Init must run before any
// component logs; main does this right after config load.
var Log *slog.Logger

func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler).With("service", "talentmatch")
}
