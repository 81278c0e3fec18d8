package components

import (
	"stockcore/internal/infra/readstore"
	"stockcore/internal/infra/uow"
	"stockcore/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
	),
)
