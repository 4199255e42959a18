package main

import (
	"context"
	"log/slog"
	"os"

	"cafe-kiosk/cmd/bootstrap"
	"cafe-kiosk/internal/handler/console"
	"cafe-kiosk/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// never expose debug routes because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           cafe-kiosk
// @version         1.0
// @description     Single-terminal café ordering kiosk: menu, order ledger, checkout and receipt.

// @BasePath  /
// @schemes http
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	if cfg.App.Mode != config.ModeHTTP {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting kiosk server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("kiosk server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping kiosk server")
			return nil
		},
	})
}

// startKiosk runs the console loop and shuts the app down when the patron is done.
func startKiosk(lc fx.Lifecycle, shutdowner fx.Shutdowner, kiosk *console.Kiosk, cfg config.Config, logger *slog.Logger) {
	if cfg.App.Mode != config.ModeConsole {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := kiosk.Run(ctx); err != nil && ctx.Err() == nil {
					logger.Error("kiosk session ended with an error", "error", err)
				}
				_ = shutdowner.Shutdown(fx.ExitCode(0))
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
			startKiosk,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start kiosk", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop kiosk cleanly", "error", err)
	}

	os.Exit(sig.ExitCode)
}
