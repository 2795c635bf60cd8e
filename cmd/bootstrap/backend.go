package bootstrap

import (
	"log/slog"

	"fitbook-storefront/internal/infra/backend"
	"fitbook-storefront/internal/pkg/config"
	"fitbook-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewBackendClient,
		func(c *backend.Client) shared.ServerCartClient { return c },
		func(c *backend.Client) shared.AuthClient { return c },
		func(c *backend.Client) shared.CourseCatalog { return c },
	),
)

func NewBackendClient(cfg config.Config, logger *slog.Logger) *backend.Client {
	logger.Info("Connecting to booking backend", "base_url", cfg.Backend.BaseURL, "timeout", cfg.Backend.Timeout)
	return backend.NewClient(cfg.Backend, logger)
}
