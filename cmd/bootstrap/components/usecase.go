package components

import (
	"cafe-kiosk/internal/domain/catalog"
	"cafe-kiosk/internal/pkg/clock"
	"cafe-kiosk/internal/usecase/commands"
	"cafe-kiosk/internal/usecase/queries"
	"cafe-kiosk/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	catalog.NewDefaultCatalog,
	shared.NewSurchargePolicy,
	shared.NewSession,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMenuQueries,
		queries.NewOrderQueries,
	),
)
