package storefront

//go:generate mockgen -source=storefront.go -destination=../../../tests/mock/storefront/storefront_mock.go -package=storefrontmock

import (
	"context"
	"log/slog"

	"fitbook-storefront/internal/domain/auth"
	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/domain/user"
	"fitbook-storefront/internal/usecase/cartview"
	"fitbook-storefront/internal/usecase/checkout"
	"fitbook-storefront/internal/usecase/guestcart"
	"fitbook-storefront/internal/usecase/merge"
	"fitbook-storefront/internal/usecase/servercart"
	"fitbook-storefront/internal/usecase/session"
	"fitbook-storefront/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// Storefront is the application state of one visitor: auth state, both carts, the merge state machine and
// the checkout guard. Each operation is a staged sequence that stops at the first failing stage.
type Storefront interface {
	VisitorID() string
	AdoptToken(token string)
	EnsureSession(ctx context.Context) session.Snapshot
	Login(ctx context.Context, credentials auth.Credentials) (*SessionResult, error)
	Register(ctx context.Context, registration auth.Registration, addCourseID string) (*SessionResult, error)
	Logout(ctx context.Context)
	Me(ctx context.Context) (*user.User, error)
	Cart(ctx context.Context) (*CartView, error)
	AddToCart(ctx context.Context, courseID string) (bool, error)
	RemoveFromCart(ctx context.Context, courseID string) (bool, error)
	ClearGuestCart(ctx context.Context) error
	Checkout(ctx context.Context) (*cart.Order, error)
}

type SessionResult struct {
	User  *user.User
	Token string
	Merge merge.Outcome
	// AddedCourse is set when a course passed at registration ended up in the cart.
	AddedCourse bool
}

type CartView struct {
	Source             cartview.Source
	Lines              cart.Lines
	Loaded             bool
	Revision           uint64
	Subtotal           decimal.Decimal
	Authenticated      bool
	Merge              merge.State
	CheckoutInProgress bool
}

// Deps are shared by every visitor; only the state built from them is per visitor.
type Deps struct {
	AuthClient       shared.AuthClient
	CartClient       shared.ServerCartClient
	Catalog          shared.CourseCatalog
	Storage          shared.GuestCartStorage
	MergeConcurrency int
	Logger           *slog.Logger
}

type storefrontImpl struct {
	visitorID string

	authClient shared.AuthClient
	catalog    shared.CourseCatalog

	auth     *session.Auth
	guest    *guestcart.Store
	server   *servercart.Cart
	merger   *merge.Orchestrator
	guard    *checkout.Guard
	selector *cartview.Selector
	logger   *slog.Logger
}

// New builds the container for visitorID and rehydrates its guest cart from storage under guestKey.
func New(ctx context.Context, visitorID, guestKey string, deps Deps) Storefront {
	logger := deps.Logger.With("visitor_id", visitorID)

	authState := session.NewAuth(deps.AuthClient, logger)
	guest := guestcart.Open(ctx, deps.Storage, guestKey, logger)
	server := servercart.New(deps.CartClient)

	return &storefrontImpl{
		visitorID:  visitorID,
		authClient: deps.AuthClient,
		catalog:    deps.Catalog,
		auth:       authState,
		guest:      guest,
		server:     server,
		merger:     merge.NewOrchestrator(guest, server, authState, deps.MergeConcurrency, logger),
		guard:      checkout.NewGuard(),
		selector:   cartview.NewSelector(),
		logger:     logger,
	}
}

func (s *storefrontImpl) VisitorID() string {
	return s.visitorID
}
