package components

import (
	"rental-sales-api/internal/domain/timeunit"
	"rental-sales-api/internal/pkg/clock"
	"rental-sales-api/internal/pkg/config"
	"rental-sales-api/internal/usecase"
	"rental-sales-api/internal/usecase/commands"
	"rental-sales-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	timeunit.NewRegistry,
	func(cfg config.Config) config.RentalConfig {
		return cfg.Rental
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRentalLineUseCase,
		usecase.NewAuthUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewPriceListQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
