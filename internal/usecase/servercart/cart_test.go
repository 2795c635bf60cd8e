//go:build unit

package servercart_test

import (
	"context"
	"testing"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/internal/usecase/servercart"
	sharedmock "fitbook-storefront/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	client   *sharedmock.MockServerCartClient
	cart     *servercart.Cart
}

func (s *CartTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.client = sharedmock.NewMockServerCartClient(s.mockCtrl)
	s.cart = servercart.New(s.client)
}

func (s *CartTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartSuite(t *testing.T) {
	suite.Run(t, new(CartTestSuite))
}

func (s *CartTestSuite) TestView() {
	s.Run("anonymous never reaches the backend", func() {
		_, _, err := s.cart.View(s.ctx, "")
		s.ErrorIs(err, errs.ErrNotAuthenticated)
	})

	s.Run("fetches once until invalidated", func() {
		s.client.EXPECT().GetCart(gomock.Any(), "tok").Return(cart.Lines{{ID: "s1", Course: cart.Course{ID: "c1"}}}, nil).Times(1)

		lines, rev1, err := s.cart.View(s.ctx, "tok")
		s.Require().NoError(err)
		s.Equal([]string{"c1"}, lines.CourseIDs())

		_, rev2, err := s.cart.View(s.ctx, "tok")
		s.Require().NoError(err)
		s.Equal(rev1, rev2)

		_, _, loaded := s.cart.Cached()
		s.True(loaded)
	})

	s.Run("nil from the backend is an empty cart", func() {
		s.cart.Invalidate()
		s.client.EXPECT().GetCart(gomock.Any(), "tok").Return(nil, nil)

		lines, _, err := s.cart.View(s.ctx, "tok")
		s.Require().NoError(err)
		s.NotNil(lines)
		s.Empty(lines)
	})
}

func (s *CartTestSuite) TestMutationsInvalidate() {
	s.client.EXPECT().GetCart(gomock.Any(), "tok").Return(cart.Lines{}, nil).Times(4)
	s.client.EXPECT().AddToCart(gomock.Any(), "tok", "c1").Return(nil)
	s.client.EXPECT().RemoveItem(gomock.Any(), "tok", "c1").Return(errs.New("boom"))
	s.client.EXPECT().Checkout(gomock.Any(), "tok").Return(&cart.Order{ID: "o1"}, nil)

	mutations := []func() error{
		func() error { return s.cart.Add(s.ctx, "tok", "c1") },
		func() error { return s.cart.Remove(s.ctx, "tok", "c1") },
		func() error { _, err := s.cart.Checkout(s.ctx, "tok"); return err },
	}

	_, _, err := s.cart.View(s.ctx, "tok")
	s.Require().NoError(err)
	for _, mutate := range mutations {
		_, before, _ := s.cart.Cached()
		_ = mutate()
		_, after, loaded := s.cart.Cached()
		s.False(loaded)
		s.Greater(after, before)

		_, _, err := s.cart.View(s.ctx, "tok")
		s.Require().NoError(err)
	}
}

func (s *CartTestSuite) TestAnonymousMutations() {
	s.ErrorIs(s.cart.Add(s.ctx, "", "c1"), errs.ErrNotAuthenticated)
	s.ErrorIs(s.cart.Remove(s.ctx, "", "c1"), errs.ErrNotAuthenticated)
	_, err := s.cart.Checkout(s.ctx, "")
	s.ErrorIs(err, errs.ErrNotAuthenticated)
}
