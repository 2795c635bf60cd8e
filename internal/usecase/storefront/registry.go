package storefront

//go:generate mockgen -source=registry.go -destination=../../../tests/mock/storefront/registry_mock.go -package=storefrontmock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fitbook-storefront/internal/pkg/clock"
)

// Registry hands out the container of each visitor, building it on first sight.
type Registry interface {
	Get(ctx context.Context, visitorID string) Storefront
	Sweep() int
	Len() int
}

type entry struct {
	storefront Storefront
	lastSeen   time.Time
}

type registryImpl struct {
	deps      Deps
	keyPrefix string
	idleTTL   time.Duration
	clock     clock.Clock
	logger    *slog.Logger

	mu       sync.Mutex
	visitors map[string]*entry
}

// NewRegistry keeps containers until they have been idle for idleTTL. Zero keeps them forever.
func NewRegistry(deps Deps, keyPrefix string, idleTTL time.Duration, clk clock.Clock) Registry {
	return &registryImpl{
		deps:      deps,
		keyPrefix: keyPrefix,
		idleTTL:   idleTTL,
		clock:     clk,
		logger:    deps.Logger,
		visitors:  make(map[string]*entry),
	}
}

func (r *registryImpl) Get(ctx context.Context, visitorID string) Storefront {
	now := r.clock.Now()

	r.mu.Lock()
	if e, ok := r.visitors[visitorID]; ok {
		e.lastSeen = now
		r.mu.Unlock()
		return e.storefront
	}
	r.mu.Unlock()

	// ストレージからの復元はロックの外で行う
	built := New(ctx, visitorID, r.GuestKey(visitorID), r.deps)

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.visitors[visitorID]; ok {
		e.lastSeen = now
		return e.storefront
	}
	r.visitors[visitorID] = &entry{storefront: built, lastSeen: now}
	return built
}

func (r *registryImpl) GuestKey(visitorID string) string {
	return r.keyPrefix + ":" + visitorID
}

// Sweep drops containers idle for longer than the TTL. Their guest cart stays in storage.
func (r *registryImpl) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}
	cutoff := r.clock.Now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.visitors {
		if e.lastSeen.Before(cutoff) {
			delete(r.visitors, id)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Debug("idle visitors swept", "removed", removed, "remaining", len(r.visitors))
	}
	return removed
}

func (r *registryImpl) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}
