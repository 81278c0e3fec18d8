package components

import (
	"stockcore/internal/pkg/clock"
	"stockcore/internal/pkg/config"
	"stockcore/internal/usecase/commands"
	"stockcore/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.ReservationConfig {
		return cfg.Reservation
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewLedgerUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLedgerQueries,
		queries.NewAvailabilityQueries,
	),
)
