package components

import (
	"rental-sales-api/internal/handler"
	"rental-sales-api/internal/handler/api"
	"rental-sales-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRentalLineHandler,
		api.NewProductHandler,
		api.NewPriceListHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
