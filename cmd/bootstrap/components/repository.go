package components

import (
	repo_impl "rental-sales-api/internal/infra/repository"
	"rental-sales-api/internal/usecase/commands"
	"rental-sales-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
			fx.As(new(queries.ProductViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewVariantRepository,
			fx.As(new(commands.VariantRepository)),
		),
		fx.Annotate(
			repo_impl.NewPriceListRepository,
			fx.As(new(commands.PriceListRepository)),
			fx.As(new(queries.PriceListViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewStockRepository,
			fx.As(new(commands.StockRepository)),
		),
		fx.Annotate(
			repo_impl.NewTaxRepository,
			fx.As(new(commands.TaxRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)
