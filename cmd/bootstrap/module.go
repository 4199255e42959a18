package bootstrap

import (
	"cafe-kiosk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	fx.WithLogger(NewFxLogger),
	components.UseCaseModule,
	components.HandlerModule,
	components.ConsoleModule,
)
