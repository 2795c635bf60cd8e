package components

import (
	"context"
	"log/slog"
	"time"

	"fitbook-storefront/internal/pkg/clock"
	"fitbook-storefront/internal/pkg/config"
	"fitbook-storefront/internal/usecase/shared"
	"fitbook-storefront/internal/usecase/storefront"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewStorefrontDeps,
		NewRegistry,
	),
	fx.Invoke(startVisitorSweeper),
)

func NewStorefrontDeps(
	authClient shared.AuthClient,
	cartClient shared.ServerCartClient,
	catalog shared.CourseCatalog,
	storage shared.GuestCartStorage,
	cfg config.Config,
	logger *slog.Logger,
) storefront.Deps {
	return storefront.Deps{
		AuthClient:       authClient,
		CartClient:       cartClient,
		Catalog:          catalog,
		Storage:          storage,
		MergeConcurrency: cfg.Merge.Concurrency,
		Logger:           logger,
	}
}

func NewRegistry(deps storefront.Deps, cfg config.Config, clk clock.Clock) storefront.Registry {
	return storefront.NewRegistry(deps, cfg.Storage.KeyPrefix, cfg.Visitor.IdleTTL, clk)
}

func startVisitorSweeper(lc fx.Lifecycle, registry storefront.Registry, cfg config.Config) {
	if cfg.Visitor.IdleTTL <= 0 || cfg.Visitor.SweepInterval <= 0 {
		return
	}
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.Visitor.SweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						registry.Sweep()
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(done)
			return nil
		},
	})
}
