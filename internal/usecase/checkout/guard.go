package checkout

import (
	"context"
	"sync/atomic"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/pkg/errs"
)

type Func func(ctx context.Context) (*cart.Order, error)

// Guard prevents double submission of a checkout for one visitor.
// The backend checkout is not idempotent, so a second trigger while one is running never reaches it.
type Guard struct {
	inFlight atomic.Bool
}

func NewGuard() *Guard {
	return &Guard{}
}

func (g *Guard) InProgress() bool {
	return g.inFlight.Load()
}

// Run calls fn unless another run is in flight. fn runs detached from ctx cancellation so the flag
// is released only after the backend answered.
func (g *Guard) Run(ctx context.Context, fn Func) (*cart.Order, error) {
	if !g.inFlight.CompareAndSwap(false, true) {
		return nil, errs.ErrCheckoutInProgress
	}
	defer g.inFlight.Store(false)

	order, err := fn(context.WithoutCancel(ctx))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCheckoutFailed)
	}
	return order, nil
}
