package components

import (
	"gift-commerce/internal/handler"
	"gift-commerce/internal/handler/api"
	"gift-commerce/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
