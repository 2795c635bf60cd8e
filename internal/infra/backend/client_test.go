//go:build unit

package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fitbook-storefront/internal/domain/auth"
	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/domain/user"
	"fitbook-storefront/internal/infra"
	"fitbook-storefront/internal/infra/backend"
	"fitbook-storefront/tests/common/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	ctx    context.Context
	mux    *http.ServeMux
	server *httptest.Server
	client *backend.Client
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.client = backend.NewClientWithHTTP(s.server.URL+"/", &http.Client{Timeout: 2 * time.Second}, testutil.DiscardLogger())
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (s *ClientTestSuite) requireBearer(r *http.Request, token string) {
	s.Equal("Bearer "+token, r.Header.Get("Authorization"))
}

const cartBody = `[
  {"id": "s1", "qty": 1, "course": {
    "id": "c1", "title": "Morning Yoga", "description": "Vinyasa flow", "price": 15.5,
    "date": "2026-11-01", "startTime": "07:30:00", "durationMinutes": 45,
    "instructor": {"user": {"full_name": "Aiko Tanaka", "email": "aiko@example.com"}, "image": "/img/aiko.png"},
    "location": {"address": "1-2-3 Shibuya", "mapLink": "https://maps.example/1"}
  }},
  {"id": "s2", "qty": 0, "course": {"id": "c2", "title": "HIIT", "price": "20.00", "instructor": {"image": ""}}},
  {"id": "s3", "qty": 1, "course": {"id": "c1", "title": "duplicate", "price": 1}}
]`

// ================================================================================
// cart
// ================================================================================

func (s *ClientTestSuite) TestGetCart() {
	s.mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		s.requireBearer(r, "tok")
		writeJSON(w, http.StatusOK, cartBody)
	})

	lines, err := s.client.GetCart(s.ctx, "tok")
	s.Require().NoError(err)

	want := cart.Lines{
		{
			ID:  "s1",
			Qty: 1,
			Course: cart.Course{
				ID:              "c1",
				Title:           "Morning Yoga",
				Description:     "Vinyasa flow",
				Price:           decimal.RequireFromString("15.5"),
				Date:            "2026-11-01",
				StartTime:       "07:30:00",
				DurationMinutes: 45,
				Instructor:      cart.Instructor{Name: "Aiko Tanaka", Email: "aiko@example.com", Image: "/img/aiko.png"},
				Location:        &cart.Location{Address: "1-2-3 Shibuya", MapLink: "https://maps.example/1"},
			},
		},
		{
			ID:     "s2",
			Qty:    1,
			Course: cart.Course{ID: "c2", Title: "HIIT", Price: decimal.RequireFromString("20")},
		},
	}
	decimalEq := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	s.Empty(cmp.Diff(want, lines, decimalEq))
}

func (s *ClientTestSuite) TestAddToCart() {
	s.mux.HandleFunc("POST /cart", func(w http.ResponseWriter, r *http.Request) {
		s.requireBearer(r, "tok")
		s.Equal("application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		switch body["courseId"] {
		case "c1":
			writeJSON(w, http.StatusCreated, `{"id":"s1"}`)
		case "dup":
			writeJSON(w, http.StatusConflict, `{"message":"Course already in cart"}`)
		default:
			writeJSON(w, http.StatusBadRequest, `{"message":["courseId must be a UUID","courseId should not be empty"]}`)
		}
	})

	s.NoError(s.client.AddToCart(s.ctx, "tok", "c1"))

	err := s.client.AddToCart(s.ctx, "tok", "dup")
	s.True(infra.IsKind(err, infra.KindConflict))
	s.Equal("Course already in cart", infra.BackendMessage(err))

	err = s.client.AddToCart(s.ctx, "tok", "bad")
	s.True(infra.IsKind(err, infra.KindRejected))
	s.Equal("courseId must be a UUID, courseId should not be empty", infra.BackendMessage(err))
}

func (s *ClientTestSuite) TestRemoveItem() {
	s.mux.HandleFunc("DELETE /cart/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.requireBearer(r, "tok")
		if r.PathValue("id") == "c1" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusNotFound, `{"message":"Cart item not found"}`)
	})

	s.NoError(s.client.RemoveItem(s.ctx, "tok", "c1"))
	s.True(infra.IsKind(s.client.RemoveItem(s.ctx, "tok", "c9"), infra.KindNotFound))
}

func (s *ClientTestSuite) TestCheckout() {
	s.mux.HandleFunc("POST /orders/checkout", func(w http.ResponseWriter, r *http.Request) {
		s.requireBearer(r, "tok")
		writeJSON(w, http.StatusCreated, `{"id":"o-1","paid":"35.50","count":2}`)
	})

	order, err := s.client.Checkout(s.ctx, "tok")
	s.Require().NoError(err)
	s.Equal("o-1", order.ID)
	s.Equal(2, order.Count)
	s.True(decimal.RequireFromString("35.5").Equal(order.Paid))
}

// ================================================================================
// error classification
// ================================================================================

func (s *ClientTestSuite) TestErrorKinds() {
	cases := []struct {
		status int
		kind   infra.ErrorKind
	}{
		{http.StatusUnauthorized, infra.KindUnauthorized},
		{http.StatusForbidden, infra.KindRejected},
		{http.StatusConflict, infra.KindConflict},
		{http.StatusUnprocessableEntity, infra.KindConflict},
		{http.StatusNotFound, infra.KindNotFound},
		{http.StatusBadRequest, infra.KindRejected},
		{http.StatusTooManyRequests, infra.KindUnavailable},
		{http.StatusInternalServerError, infra.KindUnavailable},
		{http.StatusBadGateway, infra.KindUnavailable},
		{http.StatusServiceUnavailable, infra.KindUnavailable},
	}

	var status atomic.Int32
	s.mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, int(status.Load()), `not json at all`)
	})

	for _, tc := range cases {
		s.Run(http.StatusText(tc.status), func() {
			status.Store(int32(tc.status))
			_, err := s.client.GetCart(s.ctx, "tok")
			s.True(infra.IsKind(err, tc.kind), "status %d: %v", tc.status, err)
			s.Empty(infra.BackendMessage(err))
		})
	}
}

func (s *ClientTestSuite) TestTransportFailure() {
	s.server.Close()

	_, err := s.client.GetCart(s.ctx, "tok")
	s.True(infra.IsKind(err, infra.KindUnavailable))
}

func (s *ClientTestSuite) TestMalformedBody() {
	s.mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"items": "nope"}`)
	})

	_, err := s.client.GetCart(s.ctx, "tok")
	s.True(infra.IsKind(err, infra.KindDecode))
}

// ================================================================================
// auth
// ================================================================================

func (s *ClientTestSuite) TestLogin() {
	s.mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		s.Empty(r.Header.Get("Authorization"))
		var body map[string]string
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "password123" {
			writeJSON(w, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
			return
		}
		s.Equal("mika@example.com", body["email"])
		writeJSON(w, http.StatusOK, `{"token":"jwt-token"}`)
	})

	creds, err := auth.NewCredentials("mika@example.com", "password123")
	s.Require().NoError(err)
	token, err := s.client.Login(s.ctx, creds)
	s.Require().NoError(err)
	s.Equal("jwt-token", token)

	wrong, err := auth.NewCredentials("mika@example.com", "password999")
	s.Require().NoError(err)
	_, err = s.client.Login(s.ctx, wrong)
	s.True(infra.IsKind(err, infra.KindUnauthorized))
	s.Equal("Invalid credentials", infra.BackendMessage(err))
}

func (s *ClientTestSuite) TestRegister() {
	s.mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("Mika Sato", body["full_name"])
		writeJSON(w, http.StatusCreated, `{"token":""}`)
	})

	registration, err := auth.NewRegistration("Mika Sato", "mika@example.com", "password123")
	s.Require().NoError(err)

	_, err = s.client.Register(s.ctx, registration)
	s.True(infra.IsKind(err, infra.KindDecode), "empty token is a malformed answer")
}

func (s *ClientTestSuite) TestCurrentUser() {
	s.mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		s.requireBearer(r, "tok")
		writeJSON(w, http.StatusOK, `{"id":"u1","full_name":"Mika Sato","email":"mika@example.com","role":"gym_owner"}`)
	})

	u, err := s.client.CurrentUser(s.ctx, "tok")
	s.Require().NoError(err)
	s.Equal("u1", u.ID())
	s.Equal("Mika Sato", u.FullName())
	s.Equal(user.RoleGymOwner, u.Role())
}

func (s *ClientTestSuite) TestCurrentUser_UnknownRole() {
	s.mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"u1","full_name":"Mika Sato","email":"mika@example.com","role":"owner"}`)
	})

	u, err := s.client.CurrentUser(s.ctx, "tok")
	s.Require().NoError(err)
	s.Equal(user.RoleSubscriber, u.Role())
}

func (s *ClientTestSuite) TestLogout() {
	var called atomic.Bool
	s.mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		s.requireBearer(r, "tok")
		w.WriteHeader(http.StatusNoContent)
	})

	s.NoError(s.client.Logout(s.ctx, "tok"))
	s.True(called.Load())
}

// ================================================================================
// catalog
// ================================================================================

func (s *ClientTestSuite) TestGetCourse() {
	s.mux.HandleFunc("GET /courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.Empty(r.Header.Get("Authorization"))
		if r.PathValue("id") != "c1" {
			writeJSON(w, http.StatusNotFound, `{"message":"Course not found"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"id":"c1","title":"Boxing","price":"12.00","instructor":{"user":{"full_name":"Ken","email":"ken@example.com"}}}`)
	})

	course, err := s.client.GetCourse(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal("Boxing", course.Title)
	s.Equal("Ken", course.Instructor.Name)
	s.Nil(course.Location)
	s.Equal("12.00", course.Price.StringFixed(2))

	_, err = s.client.GetCourse(s.ctx, "c404")
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *ClientTestSuite) TestHasPurchased() {
	s.mux.HandleFunc("GET /orders/check", func(w http.ResponseWriter, r *http.Request) {
		s.requireBearer(r, "tok")
		if r.URL.Query().Get("courseId") == "c1" {
			writeJSON(w, http.StatusOK, `{"purchased":true}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"purchased":false}`)
	})

	purchased, err := s.client.HasPurchased(s.ctx, "tok", "c1")
	s.Require().NoError(err)
	s.True(purchased)

	purchased, err = s.client.HasPurchased(s.ctx, "tok", "c2")
	s.Require().NoError(err)
	s.False(purchased)
}
