package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"cafe-kiosk/internal/pkg/config"
	"cafe-kiosk/internal/pkg/errs"
)

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OpenOutput resolves LOG_OUTPUT. The returned cleanup closes file sinks and is never nil.
func OpenOutput(output string) (io.Writer, func(), error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr, func() {}, nil
	case "stdout":
		return os.Stdout, func() {}, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errs.Wrapf(err, "open log output %q", output)
	}
	return f, func() { _ = f.Close() }, nil
}

// New builds the process logger and installs it as the slog default.
func New(cfg config.LogConfig, w io.Writer, jsonFormat bool) *slog.Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}
