package bootstrap

import (
	"fitbook-storefront/internal/pkg/clock"
	"fitbook-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		clock.NewRealClock,
	),
)
