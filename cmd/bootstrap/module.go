package bootstrap

import (
	"fitbook-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	BackendModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
