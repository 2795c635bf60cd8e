package repository

import (
	"context"
	"sync"

	"fitbook-storefront/internal/usecase/shared"
)

var _ shared.GuestCartStorage = (*MemoryGuestCartStorage)(nil)

// MemoryGuestCartStorage is for tests and single-process development. Nothing survives a restart.
type MemoryGuestCartStorage struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryGuestCartStorage() *MemoryGuestCartStorage {
	return &MemoryGuestCartStorage{carts: make(map[string][]byte)}
}

func (m *MemoryGuestCartStorage) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.carts[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), payload...), nil
}

func (m *MemoryGuestCartStorage) Save(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.carts[key] = append([]byte(nil), payload...)
	return nil
}
