package components

import (
	"stockcore/internal/handler"
	"stockcore/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewLedgerHandler,
		api.NewAvailabilityHandler,
	),
	fx.Invoke(handler.NewRouter),
)
