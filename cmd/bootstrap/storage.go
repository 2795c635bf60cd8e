package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fitbook-storefront/internal/infra/db"
	"fitbook-storefront/internal/infra/repository"
	"fitbook-storefront/internal/pkg/config"
	"fitbook-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewGuestCartStorage,
	),
)

func NewGuestCartStorage(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.GuestCartStorage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		client, cleanup, err := db.ConnectRedis(cfg.Storage.Redis)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		logger.Info("Using Redis for guest cart storage", "address", cfg.Storage.Redis.Addr)
		return repository.NewRedisGuestCartStorage(client, cfg.Storage.Redis.TTL, logger), nil

	case config.StorageDriverPostgres:
		pool, cleanup, err := db.Connect(cfg.Storage.DB)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)

		storage := repository.NewPostgresGuestCartStorage(pool, logger)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := storage.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL for guest cart storage", "host", cfg.Storage.DB.Host)
		return storage, nil

	case config.StorageDriverMemory:
		logger.Warn("Guest carts are kept in memory only and are lost on restart")
		return repository.NewMemoryGuestCartStorage(), nil

	default:
		return nil, fmt.Errorf("unknown GUEST_CART_STORAGE %q", cfg.Storage.Driver)
	}
}

func appendCleanup(lc fx.Lifecycle, cleanup func()) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
}
