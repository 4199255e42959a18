package bootstrap

import (
	"context"
	"log/slog"

	"cafe-kiosk/internal/pkg/config"
	"cafe-kiosk/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger writes to LOG_OUTPUT so log lines never interleave with the
// kiosk screen on stdout.
func NewLogger(lc fx.Lifecycle, cfg config.Config) (*slog.Logger, error) {
	w, cleanup, err := logger.OpenOutput(cfg.Log.Output)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	jsonFormat := cfg.App.Mode == config.ModeHTTP && gin.Mode() == gin.ReleaseMode
	return logger.New(cfg.Log, w, jsonFormat), nil
}

// NewFxLogger routes fx lifecycle events through slog at debug level.
func NewFxLogger(l *slog.Logger) fxevent.Logger {
	fl := &fxevent.SlogLogger{Logger: l}
	fl.UseLogLevel(slog.LevelDebug)
	return fl
}
