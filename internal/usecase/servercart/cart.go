package servercart

import (
	"context"
	"sync"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/internal/usecase/shared"
)

// Cart is the visitor's cached view of the server cart. Every mutating call drops the cache,
// so the next View reflects what the backend holds.
type Cart struct {
	client shared.ServerCartClient

	mu       sync.Mutex
	lines    cart.Lines
	loaded   bool
	revision uint64
}

func New(client shared.ServerCartClient) *Cart {
	return &Cart{client: client}
}

// View returns the cached lines, fetching them first when the cache is cold.
func (c *Cart) View(ctx context.Context, token string) (cart.Lines, uint64, error) {
	if token == "" {
		return nil, 0, errs.ErrNotAuthenticated
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.lines, c.revision, nil
	}

	lines, err := c.client.GetCart(ctx, token)
	if err != nil {
		return nil, c.revision, err
	}
	if lines == nil {
		lines = cart.Lines{}
	}
	c.lines = lines
	c.loaded = true
	c.revision++
	return c.lines, c.revision, nil
}

// Cached returns the view without I/O. loaded is false while nothing has been fetched since the last invalidation.
func (c *Cart) Cached() (lines cart.Lines, revision uint64, loaded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lines, c.revision, c.loaded
}

func (c *Cart) Add(ctx context.Context, token, courseID string) error {
	if token == "" {
		return errs.ErrNotAuthenticated
	}
	defer c.Invalidate()
	return c.client.AddToCart(ctx, token, courseID)
}

func (c *Cart) Remove(ctx context.Context, token, courseID string) error {
	if token == "" {
		return errs.ErrNotAuthenticated
	}
	defer c.Invalidate()
	return c.client.RemoveItem(ctx, token, courseID)
}

// Checkout is not idempotent. Callers must guard against double submission.
func (c *Cart) Checkout(ctx context.Context, token string) (*cart.Order, error) {
	if token == "" {
		return nil, errs.ErrNotAuthenticated
	}
	defer c.Invalidate()
	return c.client.Checkout(ctx, token)
}

func (c *Cart) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.loaded = false
	c.revision++
}
