//go:build unit

package api_test

import (
	"context"
	"time"

	"fitbook-storefront/internal/domain/auth"
	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/domain/user"
	"fitbook-storefront/internal/handler/middleware"
	"fitbook-storefront/internal/pkg/config"
	"fitbook-storefront/internal/usecase/cartview"
	"fitbook-storefront/internal/usecase/merge"
	"fitbook-storefront/internal/usecase/session"
	"fitbook-storefront/internal/usecase/storefront"
	storefrontmock "fitbook-storefront/tests/mock/storefront"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const visitorID = "0b8e6a9e-54a1-4c1d-8f0e-2f5d9f1a7c33"

type stubInspector struct {
	ttl time.Duration
	err error
}

func (s stubInspector) TTL(string) (time.Duration, error) {
	return s.ttl, s.err
}

// handlerSuite runs the real visitor middleware in front of the handlers with a mocked container.
type handlerSuite struct {
	suite.Suite
	router       *gin.Engine
	cfg          config.Config
	mockCtrl     *gomock.Controller
	mockRegistry *storefrontmock.MockRegistry
	mockSF       *storefrontmock.MockStorefront
	visitor      *middleware.VisitorMiddleware
	snapshot     session.Snapshot
}

func (s *handlerSuite) setupBase() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.cfg = config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRegistry = storefrontmock.NewMockRegistry(s.mockCtrl)
	s.mockSF = storefrontmock.NewMockStorefront(s.mockCtrl)
	s.visitor = middleware.NewVisitorMiddleware(s.mockRegistry, stubInspector{ttl: time.Hour}, s.cfg)
	s.snapshot = session.Snapshot{Status: auth.StatusIdle}

	s.mockRegistry.EXPECT().Get(gomock.Any(), gomock.Any()).Return(s.mockSF).AnyTimes()
	s.mockSF.EXPECT().AdoptToken(gomock.Any()).AnyTimes()
	s.mockSF.EXPECT().EnsureSession(gomock.Any()).DoAndReturn(func(context.Context) session.Snapshot {
		return s.snapshot
	}).AnyTimes()
}

func (s *handlerSuite) signIn() {
	s.snapshot = session.Snapshot{User: testUser(), Status: auth.StatusSucceeded, SessionID: 1, HasToken: true}
}

func testUser() *user.User {
	return user.NewUser("u1", "Mika Sato", "mika@example.com", user.RoleSubscriber, nil)
}

func guestView(ids ...string) *storefront.CartView {
	lines := make(cart.Lines, len(ids))
	for i, id := range ids {
		lines[i] = cart.Line{ID: "g-" + id, Qty: 1, Course: cart.Course{
			ID:         id,
			Title:      "Spin " + id,
			Price:      decimal.RequireFromString("12.5"),
			Instructor: cart.Instructor{Name: "Ken", Email: "ken@example.com"},
		}}
	}
	return &storefront.CartView{
		Source:   cartview.SourceGuest,
		Lines:    lines,
		Loaded:   true,
		Revision: 1,
		Subtotal: lines.Subtotal(),
		Merge:    merge.StateNoSession,
	}
}
