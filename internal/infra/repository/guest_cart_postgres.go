package repository

import (
	"context"
	"errors"
	"log/slog"

	"fitbook-storefront/internal/infra"
	"fitbook-storefront/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ shared.GuestCartStorage = (*PostgresGuestCartStorage)(nil)

const (
	createGuestCartsTable = `
CREATE TABLE IF NOT EXISTS guest_carts (
    key        TEXT PRIMARY KEY,
    payload    JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

	selectGuestCart = `SELECT payload FROM guest_carts WHERE key = $1`

	upsertGuestCart = `
INSERT INTO guest_carts (key, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresGuestCartStorage struct {
	db     DBTX
	logger *slog.Logger
}

func NewPostgresGuestCartStorage(db DBTX, logger *slog.Logger) *PostgresGuestCartStorage {
	return &PostgresGuestCartStorage{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the guest_carts table when it is missing.
func (r *PostgresGuestCartStorage) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createGuestCartsTable); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create guest_carts table", err)
	}
	return nil
}

func (r *PostgresGuestCartStorage) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, selectGuestCart, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load guest cart", err)
	}
	return payload, nil
}

func (r *PostgresGuestCartStorage) Save(ctx context.Context, key string, payload []byte) error {
	// jsonb には文字列として渡す
	if _, err := r.db.Exec(ctx, upsertGuestCart, key, string(payload)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to save guest cart", err)
	}
	return nil
}
