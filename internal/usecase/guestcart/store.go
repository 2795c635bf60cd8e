package guestcart

import (
	"context"
	"log/slog"
	"sync"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/internal/usecase/shared"
)

// Store holds the anonymous cart of one visitor and writes the whole list through to storage after every change.
// The slice handed out by Items is never mutated afterwards; every change swaps in a new one and bumps the revision.
type Store struct {
	mu       sync.Mutex
	storage  shared.GuestCartStorage
	key      string
	items    cart.Lines
	revision uint64
	// unread is set while storage could not be read. Nothing is written back until a read succeeds,
	// so a cart that only failed to load is never overwritten.
	unread bool
	logger *slog.Logger
}

// Open rehydrates the cart stored under key. It never fails: unreadable or corrupt data yields an empty cart.
func Open(ctx context.Context, storage shared.GuestCartStorage, key string, logger *slog.Logger) *Store {
	s := &Store{
		storage: storage,
		key:     key,
		items:   cart.Lines{},
		logger:  logger,
	}

	stored, err := s.load(ctx)
	if err != nil {
		logger.Warn("Failed to load guest cart, starting empty", "key", key, "error", err.Error())
		s.unread = true
		return s
	}
	s.items = stored
	return s
}

func (s *Store) load(ctx context.Context) (cart.Lines, error) {
	payload, err := s.storage.Load(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return cart.Lines{}, nil
	}

	lines, err := decode(payload)
	if err != nil {
		// 壊れたデータは読めたものとして扱い、次の保存で上書きする
		s.logger.Warn("Guest cart payload is corrupt, starting empty", "key", s.key, "error", err.Error())
		return cart.Lines{}, nil
	}

	normalized, dropped := lines.Normalize()
	if dropped > 0 {
		s.logger.Warn("Dropped invalid guest cart lines", "key", s.key, "dropped", dropped)
	}
	return normalized, nil
}

// retryLoadLocked folds the stored lines back in once storage answers again. Lines added in memory meanwhile are kept.
func (s *Store) retryLoadLocked(ctx context.Context) error {
	if !s.unread {
		return nil
	}
	stored, err := s.load(ctx)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "reload guest cart"), errs.ErrStorageFailed)
	}

	merged := stored
	for _, l := range s.items {
		merged, _ = merged.With(l)
	}
	s.items = merged
	s.revision++
	s.unread = false
	s.logger.Info("Guest cart storage is readable again", "key", s.key, "lines", len(merged))
	return nil
}

// Items returns the current lines and their revision.
func (s *Store) Items() (cart.Lines, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items, s.revision
}

// AddGuest inserts line unless a line for the same course exists. Returns whether the cart changed.
func (s *Store) AddGuest(ctx context.Context, line cart.Line) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loadErr := s.retryLoadLocked(ctx)

	next, added := s.items.With(line)
	if !added {
		return false, loadErr
	}
	return true, s.replace(ctx, next, loadErr)
}

// RemoveGuest drops the line for courseID. Returns whether the cart changed.
func (s *Store) RemoveGuest(ctx context.Context, courseID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loadErr := s.retryLoadLocked(ctx)

	next, removed := s.items.Without(courseID)
	if !removed {
		return false, loadErr
	}
	return true, s.replace(ctx, next, loadErr)
}

// ClearGuest drops every line the caller could see. Lines recovered from storage during the call survive.
func (s *Store) ClearGuest(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := s.items
	loadErr := s.retryLoadLocked(ctx)

	next := s.items
	for _, id := range seen.CourseIDs() {
		next, _ = next.Without(id)
	}
	return s.replace(ctx, next, loadErr)
}

// replace swaps the in-memory list first; a storage failure is reported but never rolls the memory back.
// While the stored cart is still unread, the change stays in memory only and loadErr is returned.
func (s *Store) replace(ctx context.Context, next cart.Lines, loadErr error) error {
	s.items = next
	s.revision++

	if s.unread {
		return loadErr
	}

	payload, err := encode(next)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "encode guest cart"), errs.ErrStorageFailed)
	}
	if err := s.storage.Save(ctx, s.key, payload); err != nil {
		s.logger.Warn("Failed to save guest cart", "key", s.key, "error", err.Error())
		return errs.Mark(err, errs.ErrStorageFailed)
	}
	return nil
}
