package components

import (
	"io"
	"os"

	"cafe-kiosk/internal/handler"
	"cafe-kiosk/internal/handler/api"
	"cafe-kiosk/internal/handler/console"
	"cafe-kiosk/internal/handler/receipt"
	"cafe-kiosk/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewReceiptRenderer,
		api.NewMenuHandler,
		api.NewOrderHandler,
		api.NewSessionHandler,
	),
	fx.Invoke(handler.NewRouter),
)

var ConsoleModule = fx.Module("console",
	fx.Provide(
		fx.Annotate(
			func() io.Reader { return os.Stdin },
			fx.ResultTags(`name:"kioskIn"`),
		),
		fx.Annotate(
			func() io.Writer { return os.Stdout },
			fx.ResultTags(`name:"kioskOut"`),
		),
		fx.Annotate(
			console.NewKiosk,
			fx.ParamTags(`name:"kioskIn"`, `name:"kioskOut"`),
		),
	),
)

func NewReceiptRenderer(cfg config.Config) (*receipt.Renderer, error) {
	return receipt.NewRenderer(cfg.Kiosk)
}
