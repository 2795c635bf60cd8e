package bootstrap

import (
	"log/slog"

	"fitbook-storefront/internal/handler/middleware"
	"fitbook-storefront/internal/pkg/clock"
	"fitbook-storefront/internal/pkg/config"
	"fitbook-storefront/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewTokenInspector,
			fx.As(new(middleware.TokenInspector)),
		),
	),
)

func NewTokenInspector(cfg config.Config, clk clock.Clock, logger *slog.Logger) *jwt.Inspector {
	if cfg.JWT.Secret == "" {
		logger.Warn("BACKEND_JWT_SECRET is not set, token signatures are not verified")
	}
	return jwt.NewInspector(cfg.JWT.Secret, cfg.JWT.DefaultDuration, clk)
}
