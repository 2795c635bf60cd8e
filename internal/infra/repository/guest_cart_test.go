//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"fitbook-storefront/internal/infra"
	"fitbook-storefront/tests/common/testutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const cartKey = "guest_cart:visitor-1"

type MockRedisCommands struct {
	mock.Mock
}

func (m *MockRedisCommands) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *MockRedisCommands) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

type payloadRow struct {
	payload []byte
	err     error
}

func (r payloadRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.payload
	return nil
}

func TestRedisGuestCartStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("load returns the stored payload", func(t *testing.T) {
		client := new(MockRedisCommands)
		client.On("Get", mock.Anything, cartKey).Return(redis.NewStringResult(`[{"id":"a"}]`, nil))

		got, err := NewRedisGuestCartStorage(client, time.Hour, testutil.DiscardLogger()).Load(ctx, cartKey)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"a"}]`, string(got))
		client.AssertExpectations(t)
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		client := new(MockRedisCommands)
		client.On("Get", mock.Anything, cartKey).Return(redis.NewStringResult("", redis.Nil))

		got, err := NewRedisGuestCartStorage(client, time.Hour, testutil.DiscardLogger()).Load(ctx, cartKey)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("connection failure is a db failure", func(t *testing.T) {
		client := new(MockRedisCommands)
		client.On("Get", mock.Anything, cartKey).Return(redis.NewStringResult("", assert.AnError))

		_, err := NewRedisGuestCartStorage(client, time.Hour, testutil.DiscardLogger()).Load(ctx, cartKey)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("save refreshes the ttl", func(t *testing.T) {
		client := new(MockRedisCommands)
		client.On("Set", mock.Anything, cartKey, []byte(`[]`), 72*time.Hour).Return(redis.NewStatusResult("OK", nil))

		err := NewRedisGuestCartStorage(client, 72*time.Hour, testutil.DiscardLogger()).Save(ctx, cartKey, []byte(`[]`))
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("save failure", func(t *testing.T) {
		client := new(MockRedisCommands)
		client.On("Set", mock.Anything, cartKey, mock.Anything, mock.Anything).Return(redis.NewStatusResult("", assert.AnError))

		err := NewRedisGuestCartStorage(client, time.Hour, testutil.DiscardLogger()).Save(ctx, cartKey, []byte(`[]`))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestPostgresGuestCartStorage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		row      payloadRow
		want     []byte
		wantKind infra.ErrorKind
	}{
		{name: "found", row: payloadRow{payload: []byte(`[]`)}, want: []byte(`[]`)},
		{name: "missing key", row: payloadRow{err: pgx.ErrNoRows}, want: nil},
		{name: "database error", row: payloadRow{err: assert.AnError}, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run("load: "+tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, selectGuestCart, []any{cartKey}).Return(tt.row)

			got, err := NewPostgresGuestCartStorage(db, testutil.DiscardLogger()).Load(ctx, cartKey)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			db.AssertExpectations(t)
		})
	}

	t.Run("save upserts the payload as text", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, upsertGuestCart, []any{cartKey, `[{"id":"a"}]`}).
			Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

		err := NewPostgresGuestCartStorage(db, testutil.DiscardLogger()).Save(ctx, cartKey, []byte(`[{"id":"a"}]`))
		require.NoError(t, err)
		db.AssertExpectations(t)
	})

	t.Run("save failure", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, upsertGuestCart, mock.Anything).Return(pgconn.CommandTag{}, assert.AnError)

		err := NewPostgresGuestCartStorage(db, testutil.DiscardLogger()).Save(ctx, cartKey, []byte(`[]`))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("ensure schema", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, createGuestCartsTable, []any(nil)).Return(pgconn.NewCommandTag("CREATE TABLE"), nil)

		require.NoError(t, NewPostgresGuestCartStorage(db, testutil.DiscardLogger()).EnsureSchema(ctx))
		db.AssertExpectations(t)
	})
}

func TestMemoryGuestCartStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryGuestCartStorage()

	got, err := storage.Load(ctx, cartKey)
	require.NoError(t, err)
	assert.Nil(t, got)

	payload := []byte(`[{"id":"a"}]`)
	require.NoError(t, storage.Save(ctx, cartKey, payload))
	payload[0] = 'X'

	got, err = storage.Load(ctx, cartKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	got[0] = 'Y'
	again, _ := storage.Load(ctx, cartKey)
	assert.Equal(t, `[{"id":"a"}]`, string(again))
}
