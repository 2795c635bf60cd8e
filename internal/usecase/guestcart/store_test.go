//go:build unit

package guestcart_test

import (
	"context"
	"encoding/json"
	"testing"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/infra/repository"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/internal/usecase/guestcart"
	"fitbook-storefront/tests/common/testutil"
	sharedmock "fitbook-storefront/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const key = "guest_cart:visitor-1"

type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	storage *repository.MemoryGuestCartStorage
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = repository.NewMemoryGuestCartStorage()
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func course(id string) cart.Course {
	return cart.Course{
		ID:              id,
		Title:           "Yoga " + id,
		Price:           decimal.RequireFromString("15.00"),
		Date:            "2026-11-01",
		StartTime:       "09:00",
		DurationMinutes: 60,
		Instructor:      cart.Instructor{Name: "Aiko Tanaka", Email: "aiko@example.com", Image: "/img/aiko.png"},
		Location:        &cart.Location{Address: "1-2-3 Shibuya", MapLink: "https://maps.example/1"},
	}
}

func (s *StoreTestSuite) newLine(id string) cart.Line {
	l, err := cart.NewGuestLine(course(id))
	s.Require().NoError(err)
	return l
}

func (s *StoreTestSuite) open() *guestcart.Store {
	return guestcart.Open(s.ctx, s.storage, key, testutil.DiscardLogger())
}

func (s *StoreTestSuite) TestAddGuest() {
	s.Run("adding the same course twice keeps one line", func() {
		store := s.open()
		first := s.newLine("c1")

		added, err := store.AddGuest(s.ctx, first)
		s.Require().NoError(err)
		s.True(added)

		added, err = store.AddGuest(s.ctx, s.newLine("c1"))
		s.Require().NoError(err)
		s.False(added)

		items, revision := store.Items()
		s.Len(items, 1)
		s.Equal(first.ID, items[0].ID)
		s.Equal(uint64(1), revision)
	})

	s.Run("every change is written through to storage", func() {
		s.storage = repository.NewMemoryGuestCartStorage()
		store := s.open()
		_, err := store.AddGuest(s.ctx, s.newLine("c1"))
		s.Require().NoError(err)
		_, err = store.AddGuest(s.ctx, s.newLine("c2"))
		s.Require().NoError(err)

		reopened := s.open()
		want, _ := store.Items()
		got, _ := reopened.Items()
		s.Empty(cmp.Diff(want, got, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })))
	})
}

func (s *StoreTestSuite) TestRemoveGuest() {
	store := s.open()
	for _, id := range []string{"c1", "c2", "c3"} {
		_, err := store.AddGuest(s.ctx, s.newLine(id))
		s.Require().NoError(err)
	}

	removed, err := store.RemoveGuest(s.ctx, "c2")
	s.Require().NoError(err)
	s.True(removed)

	removed, err = store.RemoveGuest(s.ctx, "c2")
	s.Require().NoError(err)
	s.False(removed)

	items, _ := s.open().Items()
	s.Equal([]string{"c1", "c3"}, items.CourseIDs())
}

func (s *StoreTestSuite) TestClearGuest() {
	store := s.open()
	_, err := store.AddGuest(s.ctx, s.newLine("c1"))
	s.Require().NoError(err)

	s.Require().NoError(store.ClearGuest(s.ctx))
	items, _ := store.Items()
	s.Empty(items)

	payload, err := s.storage.Load(s.ctx, key)
	s.Require().NoError(err)
	s.JSONEq(`[]`, string(payload))
}

func (s *StoreTestSuite) TestOpen() {
	cases := []struct {
		name    string
		payload string
		want    []string
	}{
		{name: "missing key", payload: "", want: []string{}},
		{name: "not json", payload: "{{{not json", want: []string{}},
		{name: "wrong shape", payload: `{"items": 3}`, want: []string{}},
		{name: "drops lines without course id", payload: `[{"id":"a","qty":1,"course":{"id":""}},{"id":"b","qty":0,"course":{"id":"c2","price":"5"}}]`, want: []string{"c2"}},
		{name: "collapses duplicates", payload: `[{"id":"a","qty":1,"course":{"id":"c1"}},{"id":"b","qty":1,"course":{"id":"c1"}}]`, want: []string{"c1"}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.storage = repository.NewMemoryGuestCartStorage()
			if tc.payload != "" {
				s.Require().NoError(s.storage.Save(s.ctx, key, []byte(tc.payload)))
			}

			store := s.open()
			items, _ := store.Items()
			s.Equal(tc.want, items.CourseIDs())
			for _, l := range items {
				s.GreaterOrEqual(l.Qty, 1)
			}
		})
	}

	s.Run("reads the legacy flat instructor form", func() {
		s.storage = repository.NewMemoryGuestCartStorage()
		legacy := `[{"id":"a","qty":1,"course":{"id":"c1","price":12.5,"instructor":{"name":"Ken","email":"ken@example.com"}}}]`
		s.Require().NoError(s.storage.Save(s.ctx, key, []byte(legacy)))

		items, _ := s.open().Items()
		s.Require().Len(items, 1)
		s.Equal("Ken", items[0].Course.Instructor.Name)
		s.Equal("ken@example.com", items[0].Course.Instructor.Email)
		s.True(decimal.RequireFromString("12.5").Equal(items[0].Course.Price))
	})

	s.Run("writes the nested instructor form", func() {
		s.storage = repository.NewMemoryGuestCartStorage()
		store := s.open()
		_, err := store.AddGuest(s.ctx, s.newLine("c1"))
		s.Require().NoError(err)

		payload, err := s.storage.Load(s.ctx, key)
		s.Require().NoError(err)
		var raw []map[string]any
		s.Require().NoError(json.Unmarshal(payload, &raw))
		instructor := raw[0]["course"].(map[string]any)["instructor"].(map[string]any)
		s.Equal("Aiko Tanaka", instructor["user"].(map[string]any)["full_name"])
	})
}

func (s *StoreTestSuite) TestStorageFailure() {
	s.Run("load failure starts empty", func() {
		ctrl := gomock.NewController(s.T())
		storage := sharedmock.NewMockGuestCartStorage(ctrl)
		storage.EXPECT().Load(gomock.Any(), key).Return(nil, errs.New("connection refused"))

		store := guestcart.Open(s.ctx, storage, key, testutil.DiscardLogger())
		items, _ := store.Items()
		s.Empty(items)
	})

	s.Run("unread cart is not overwritten while storage stays unreadable", func() {
		ctrl := gomock.NewController(s.T())
		storage := sharedmock.NewMockGuestCartStorage(ctrl)
		storage.EXPECT().Load(gomock.Any(), key).Return(nil, errs.New("connection refused")).Times(3)
		storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		store := guestcart.Open(s.ctx, storage, key, testutil.DiscardLogger())
		added, err := store.AddGuest(s.ctx, s.newLine("c1"))
		s.True(added)
		s.True(errs.Is(err, errs.ErrStorageFailed))

		err = store.ClearGuest(s.ctx)
		s.True(errs.Is(err, errs.ErrStorageFailed))
		items, _ := store.Items()
		s.Empty(items)
	})

	s.Run("stored lines are folded back in once storage answers again", func() {
		ctrl := gomock.NewController(s.T())
		storage := sharedmock.NewMockGuestCartStorage(ctrl)
		stored := `[{"id":"a","qty":1,"course":{"id":"c1","price":"15.00"}}]`

		var saved []byte
		gomock.InOrder(
			storage.EXPECT().Load(gomock.Any(), key).Return(nil, errs.New("connection refused")),
			storage.EXPECT().Load(gomock.Any(), key).Return(nil, errs.New("connection refused")),
			storage.EXPECT().Load(gomock.Any(), key).Return([]byte(stored), nil),
			storage.EXPECT().Save(gomock.Any(), key, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, payload []byte) error {
				saved = payload
				return nil
			}),
		)

		store := guestcart.Open(s.ctx, storage, key, testutil.DiscardLogger())
		_, err := store.AddGuest(s.ctx, s.newLine("c2"))
		s.True(errs.Is(err, errs.ErrStorageFailed))

		added, err := store.AddGuest(s.ctx, s.newLine("c3"))
		s.Require().NoError(err)
		s.True(added)

		items, _ := store.Items()
		s.Equal([]string{"c1", "c2", "c3"}, items.CourseIDs())

		var raw []map[string]any
		s.Require().NoError(json.Unmarshal(saved, &raw))
		s.Len(raw, 3)
	})

	s.Run("clearing keeps lines that were only just read back", func() {
		ctrl := gomock.NewController(s.T())
		storage := sharedmock.NewMockGuestCartStorage(ctrl)
		stored := `[{"id":"a","qty":1,"course":{"id":"c1","price":"15.00"}}]`

		gomock.InOrder(
			storage.EXPECT().Load(gomock.Any(), key).Return(nil, errs.New("connection refused")),
			storage.EXPECT().Load(gomock.Any(), key).Return(nil, errs.New("connection refused")),
			storage.EXPECT().Load(gomock.Any(), key).Return([]byte(stored), nil),
			storage.EXPECT().Save(gomock.Any(), key, gomock.Any()).Return(nil),
		)

		store := guestcart.Open(s.ctx, storage, key, testutil.DiscardLogger())
		_, err := store.AddGuest(s.ctx, s.newLine("c2"))
		s.True(errs.Is(err, errs.ErrStorageFailed))

		s.Require().NoError(store.ClearGuest(s.ctx))
		items, _ := store.Items()
		s.Equal([]string{"c1"}, items.CourseIDs())
	})

	s.Run("save failure is reported but memory keeps the change", func() {
		ctrl := gomock.NewController(s.T())
		storage := sharedmock.NewMockGuestCartStorage(ctrl)
		storage.EXPECT().Load(gomock.Any(), key).Return(nil, nil)
		storage.EXPECT().Save(gomock.Any(), key, gomock.Any()).Return(errs.New("connection refused"))

		store := guestcart.Open(s.ctx, storage, key, testutil.DiscardLogger())
		added, err := store.AddGuest(s.ctx, s.newLine("c1"))
		s.True(added)
		s.True(errs.Is(err, errs.ErrStorageFailed))
		items, _ := store.Items()
		s.Len(items, 1)
	})
}
