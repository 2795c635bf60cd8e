//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/handler/api"
	resdto "fitbook-storefront/internal/handler/dto/response"
	"fitbook-storefront/internal/infra"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/tests/common/httptest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	handlerSuite
	handler *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	s.setupBase()
	s.handler = api.NewCheckoutHandler(s.cfg)

	s.router.POST("/api/checkout", s.visitor.Attach(), s.visitor.RequireSession(), s.handler.Checkout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestCheckout() {
	url := "/api/checkout"

	s.Run("success: 201 with the order", func() {
		s.signIn()
		s.mockSF.EXPECT().Me(gomock.Any()).Return(testUser(), nil)
		s.mockSF.EXPECT().Checkout(gomock.Any()).Return(&cart.Order{ID: "o-1", Paid: decimal.RequireFromString("45"), Count: 3}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("o-1", body.ID)
		s.Equal("45.00", body.Paid)
		s.Equal(3, body.Count)
	})

	s.Run("error: 401 for anonymous visitors without reaching checkout", func() {
		s.mockSF.EXPECT().Me(gomock.Any()).Return(nil, errs.ErrNotAuthenticated)
		s.mockSF.EXPECT().Checkout(gomock.Any()).Times(0)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "log in")
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "double submit", err: errs.ErrCheckoutInProgress, expectCode: http.StatusConflict, expectMsg: "already in progress"},
		{name: "empty cart", err: errs.ErrCartEmpty, expectCode: http.StatusBadRequest, expectMsg: "cart is empty"},
		{name: "backend refused", err: errs.Mark(infra.NewBackendError(infra.KindRejected, 400, "", nil), errs.ErrCheckoutFailed), expectCode: http.StatusBadGateway, expectMsg: "cart has not been changed"},
		{name: "backend down", err: errs.Mark(errs.Mark(infra.NewBackendError(infra.KindUnavailable, 503, "", nil), errs.ErrCheckoutFailed), errs.ErrBackendUnavailable), expectCode: http.StatusServiceUnavailable, expectMsg: "temporarily unavailable"},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockSF.EXPECT().Me(gomock.Any()).Return(testUser(), nil)
			s.mockSF.EXPECT().Checkout(gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}
