//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/handler/api"
	reqdto "fitbook-storefront/internal/handler/dto/request"
	resdto "fitbook-storefront/internal/handler/dto/response"
	"fitbook-storefront/internal/infra"
	"fitbook-storefront/internal/pkg/cookie"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/internal/usecase/merge"
	"fitbook-storefront/tests/common/httptest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	handlerSuite
	handler *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	s.setupBase()
	s.handler = api.NewCartHandler(s.cfg)

	group := s.router.Group("/api/cart", s.visitor.Attach())
	group.GET("", s.handler.Get)
	group.POST("", s.handler.Add)
	group.DELETE("", s.handler.ClearGuest)
	group.DELETE("/:courseId", s.handler.Remove)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: guest cart", func() {
		s.mockSF.EXPECT().Cart(gomock.Any()).Return(guestView("c1", "c2"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "")
		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("guest", body.Source)
		s.Equal(2, body.Count)
		s.Equal("25.00", body.Subtotal)
		s.Equal("12.50", body.Lines[0].Course.Price)
		s.Equal("Ken", body.Lines[0].Course.Instructor.Name)
		s.Equal("no_session", body.MergeState)
		s.False(body.MergeBusy)
	})

	s.Run("success: merge in flight is reported as busy", func() {
		view := guestView("c1")
		view.Merge = merge.StateInFlight
		s.mockSF.EXPECT().Cart(gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "")
		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("merge_in_flight", body.MergeState)
		s.True(body.MergeBusy)
	})

	s.Run("error: 401 clears the cookie when the session expired", func() {
		s.signIn()
		s.mockSF.EXPECT().Cart(gomock.Any()).
			Return(nil, errs.Mark(infra.NewBackendError(infra.KindUnauthorized, 401, "", nil), errs.ErrSessionExpired))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "session has expired")
		cleared := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	})

	s.Run("error: raw backend failures are not leaked", func() {
		s.mockSF.EXPECT().Cart(gomock.Any()).Return(nil, errs.New("dial tcp 10.0.0.3:3001: connection refused"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "10.0.0.3")
	})
}

func (s *CartHandlerTestSuite) TestAdd() {
	url := "/api/cart"

	s.Run("success: returns the flag and the updated cart", func() {
		gomock.InOrder(
			s.mockSF.EXPECT().AddToCart(gomock.Any(), "c1").Return(true, nil),
			s.mockSF.EXPECT().Cart(gomock.Any()).Return(guestView("c1"), nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.AddToCartRequest{CourseID: "c1"}, "")
		var body resdto.AddToCartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Added)
		s.Equal(1, body.Cart.Count)
	})

	s.Run("error: 400 without courseId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "blank id", err: cart.ErrInvalidCourseID, expectCode: http.StatusBadRequest, expectMsg: "Invalid course id"},
		{name: "unknown course", err: errs.Mark(infra.NewBackendError(infra.KindNotFound, 404, "", nil), errs.ErrCourseNotFound), expectCode: http.StatusNotFound, expectMsg: "Course not found"},
		{name: "already purchased", err: errs.ErrAlreadyPurchased, expectCode: http.StatusConflict, expectMsg: "already purchased"},
		{name: "rejected with backend message", err: errs.Mark(infra.NewBackendError(infra.KindRejected, 400, "Course is full", nil), errs.ErrCartItemRejected), expectCode: http.StatusUnprocessableEntity, expectMsg: "Course is full"},
		{name: "backend down", err: errs.Mark(infra.NewBackendError(infra.KindUnavailable, 503, "", nil), errs.ErrBackendUnavailable), expectCode: http.StatusServiceUnavailable, expectMsg: "temporarily unavailable"},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockSF.EXPECT().AddToCart(gomock.Any(), "c9").Return(false, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.AddToCartRequest{CourseID: "c9"}, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

func (s *CartHandlerTestSuite) TestRemove() {
	gomock.InOrder(
		s.mockSF.EXPECT().RemoveFromCart(gomock.Any(), "c1").Return(true, nil),
		s.mockSF.EXPECT().Cart(gomock.Any()).Return(guestView(), nil),
	)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/c1", nil, "")
	var body resdto.RemoveFromCartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.True(body.Removed)
	s.Equal(0, body.Cart.Count)
	s.NotNil(body.Cart.Lines)
}

func (s *CartHandlerTestSuite) TestClearGuest() {
	s.mockSF.EXPECT().ClearGuestCart(gomock.Any()).Return(nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)
}
