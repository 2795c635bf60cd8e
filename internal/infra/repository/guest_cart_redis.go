package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fitbook-storefront/internal/infra"
	"fitbook-storefront/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

var _ shared.GuestCartStorage = (*RedisGuestCartStorage)(nil)

type RedisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisGuestCartStorage keeps each guest cart as one JSON string. Every save refreshes the TTL.
type RedisGuestCartStorage struct {
	client RedisCommands
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisGuestCartStorage(client RedisCommands, ttl time.Duration, logger *slog.Logger) *RedisGuestCartStorage {
	return &RedisGuestCartStorage{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *RedisGuestCartStorage) Load(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load guest cart from redis", err)
	}
	return payload, nil
}

func (r *RedisGuestCartStorage) Save(ctx context.Context, key string, payload []byte) error {
	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to save guest cart to redis", err)
	}
	return nil
}
