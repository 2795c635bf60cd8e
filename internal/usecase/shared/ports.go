package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"

	"fitbook-storefront/internal/domain/auth"
	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/domain/user"
)

// ServerCartClient is the typed boundary to the authenticated cart resource of the booking backend.
// Every call needs a bearer token; calling it anonymously is a programming error.
type ServerCartClient interface {
	GetCart(ctx context.Context, token string) (cart.Lines, error)
	AddToCart(ctx context.Context, token, courseID string) error
	RemoveItem(ctx context.Context, token, courseID string) error
	Checkout(ctx context.Context, token string) (*cart.Order, error)
}

type AuthClient interface {
	Login(ctx context.Context, credentials auth.Credentials) (string, error)
	Register(ctx context.Context, registration auth.Registration) (string, error)
	CurrentUser(ctx context.Context, token string) (*user.User, error)
	Logout(ctx context.Context, token string) error
}

type CourseCatalog interface {
	GetCourse(ctx context.Context, courseID string) (*cart.Course, error)
	HasPurchased(ctx context.Context, token, courseID string) (bool, error)
}

// GuestCartStorage persists raw guest cart payloads. Load returns (nil, nil) for a missing key.
type GuestCartStorage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}
