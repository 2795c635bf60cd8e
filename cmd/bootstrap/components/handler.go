package components

import (
	"fitbook-storefront/internal/handler"
	"fitbook-storefront/internal/handler/api"
	"fitbook-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		middleware.NewVisitorMiddleware,
		func(auth *api.AuthHandler, cart *api.CartHandler, checkout *api.CheckoutHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Cart: cart, Checkout: checkout}
		},
	),
	fx.Invoke(handler.NewRouter),
)
