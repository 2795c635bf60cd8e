package storefront

import (
	"context"

	"fitbook-storefront/internal/domain/auth"
	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/domain/user"
	"fitbook-storefront/internal/infra"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/internal/usecase/cartview"
	"fitbook-storefront/internal/usecase/session"
)

// AdoptToken aligns the auth state with the token the browser presented.
// An absent token logs the visitor out locally; a different one starts a new session.
func (s *storefrontImpl) AdoptToken(token string) {
	held := s.auth.Token()
	switch {
	case token == held:
		return
	case token == "":
		s.auth.ClearUser()
	default:
		s.auth.SetToken(token)
	}
	s.server.Invalidate()
}

// EnsureSession resolves a held token into a user and lets the merge state machine react to the result.
func (s *storefrontImpl) EnsureSession(ctx context.Context) session.Snapshot {
	snap := s.auth.Snapshot()
	if snap.HasToken && !snap.Authenticated() {
		if _, err := s.auth.FetchCurrentUser(ctx); err != nil && !errs.Is(err, session.ErrSessionChanged) {
			s.logger.Info("Could not restore session from token", "error", err.Error())
		}
	}

	s.merger.Reconcile(ctx)
	return s.auth.Snapshot()
}

func (s *storefrontImpl) Login(ctx context.Context, credentials auth.Credentials) (*SessionResult, error) {
	token, err := s.authClient.Login(ctx, credentials)
	if err != nil {
		return nil, authErr(err)
	}
	return s.openSession(ctx, token)
}

// Register signs the visitor up and, once the guest cart is merged, adds the course they came from.
// Failing to add that course never fails the registration.
func (s *storefrontImpl) Register(ctx context.Context, registration auth.Registration, addCourseID string) (*SessionResult, error) {
	token, err := s.authClient.Register(ctx, registration)
	if err != nil {
		return nil, authErr(err)
	}

	result, err := s.openSession(ctx, token)
	if err != nil {
		return nil, err
	}

	if addCourseID != "" {
		if _, err := s.AddToCart(ctx, addCourseID); err != nil {
			s.logger.Warn("Failed to add course after registration", "course_id", addCourseID, "error", err.Error())
		} else {
			result.AddedCourse = true
		}
	}
	return result, nil
}

func (s *storefrontImpl) openSession(ctx context.Context, token string) (*SessionResult, error) {
	s.auth.SetToken(token)
	s.server.Invalidate()

	u, err := s.auth.FetchCurrentUser(ctx)
	if err != nil {
		return nil, s.classify(err)
	}

	outcome := s.merger.Reconcile(ctx)
	return &SessionResult{
		User:  u,
		Token: token,
		Merge: outcome,
	}, nil
}

// Logout revokes the token on a best-effort basis. The guest cart is kept.
func (s *storefrontImpl) Logout(ctx context.Context) {
	if token := s.auth.Token(); token != "" {
		if err := s.authClient.Logout(context.WithoutCancel(ctx), token); err != nil {
			s.logger.Info("Backend logout failed, ending local session only", "error", err.Error())
		}
	}
	s.auth.ClearUser()
	s.server.Invalidate()
	s.merger.Reconcile(ctx)
}

func (s *storefrontImpl) Me(_ context.Context) (*user.User, error) {
	snap := s.auth.Snapshot()
	if !snap.Authenticated() {
		return nil, errs.ErrNotAuthenticated
	}
	return snap.User, nil
}

func (s *storefrontImpl) Cart(ctx context.Context) (*CartView, error) {
	snap := s.auth.Snapshot()
	guest, guestRevision := s.guest.Items()

	in := cartview.Input{
		Auth:          snap,
		Guest:         guest,
		GuestRevision: guestRevision,
	}
	if snap.Authenticated() {
		lines, revision, err := s.server.View(ctx, s.auth.Token())
		if err != nil {
			return nil, s.classify(err)
		}
		in.Server = lines
		in.ServerRevision = revision
		in.ServerLoaded = true
	}

	selection := s.selector.Select(in)
	return &CartView{
		Source:             selection.Source,
		Lines:              selection.Lines,
		Loaded:             selection.Loaded,
		Revision:           selection.Revision,
		Subtotal:           selection.Lines.Subtotal(),
		Authenticated:      snap.Authenticated(),
		Merge:              s.merger.State(),
		CheckoutInProgress: s.guard.InProgress(),
	}, nil
}

// AddToCart returns false when the course was already in the active cart.
func (s *storefrontImpl) AddToCart(ctx context.Context, courseID string) (bool, error) {
	id, err := cart.NewCourseID(courseID)
	if err != nil {
		return false, err
	}

	if s.auth.Snapshot().Authenticated() {
		return s.addToServer(ctx, id)
	}
	return s.addToGuest(ctx, id)
}

func (s *storefrontImpl) addToServer(ctx context.Context, courseID string) (bool, error) {
	token := s.auth.Token()

	purchased, err := s.catalog.HasPurchased(ctx, token, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.Mark(err, errs.ErrCourseNotFound)
		}
		return false, s.classify(err)
	}
	if purchased {
		return false, errs.ErrAlreadyPurchased
	}

	lines, _, err := s.server.View(ctx, token)
	if err != nil {
		return false, s.classify(err)
	}
	if lines.Contains(courseID) {
		return false, nil
	}

	if err := s.server.Add(ctx, token, courseID); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return false, nil
		case infra.IsKind(err, infra.KindRejected), infra.IsKind(err, infra.KindNotFound):
			return false, errs.Mark(err, errs.ErrCartItemRejected)
		}
		return false, s.classify(err)
	}
	return true, nil
}

func (s *storefrontImpl) addToGuest(ctx context.Context, courseID string) (bool, error) {
	if lines, _ := s.guest.Items(); lines.Contains(courseID) {
		return false, nil
	}

	course, err := s.catalog.GetCourse(ctx, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.Mark(err, errs.ErrCourseNotFound)
		}
		return false, s.classify(err)
	}

	line, err := cart.NewGuestLine(*course)
	if err != nil {
		return false, errs.Mark(err, errs.ErrCartItemRejected)
	}

	added, err := s.guest.AddGuest(ctx, line)
	if err != nil && !errs.Is(err, errs.ErrStorageFailed) {
		return false, err
	}
	// 保存に失敗してもメモリ上のカートには反映済み
	return added, nil
}

// RemoveFromCart returns false when nothing matched courseID.
func (s *storefrontImpl) RemoveFromCart(ctx context.Context, courseID string) (bool, error) {
	id, err := cart.NewCourseID(courseID)
	if err != nil {
		return false, err
	}

	if s.auth.Snapshot().Authenticated() {
		if err := s.server.Remove(ctx, s.auth.Token(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindRejected) {
				return false, nil
			}
			return false, s.classify(err)
		}
		return true, nil
	}

	removed, err := s.guest.RemoveGuest(ctx, id)
	if err != nil && !errs.Is(err, errs.ErrStorageFailed) {
		return false, err
	}
	return removed, nil
}

func (s *storefrontImpl) ClearGuestCart(ctx context.Context) error {
	if err := s.guest.ClearGuest(ctx); err != nil && !errs.Is(err, errs.ErrStorageFailed) {
		return err
	}
	return nil
}

// Checkout places the order for the server cart. A failed checkout leaves the cart as it was.
func (s *storefrontImpl) Checkout(ctx context.Context) (*cart.Order, error) {
	if !s.auth.Snapshot().Authenticated() {
		return nil, errs.ErrNotAuthenticated
	}
	token := s.auth.Token()

	lines, _, err := s.server.View(ctx, token)
	if err != nil {
		return nil, s.classify(err)
	}
	if len(lines) == 0 {
		return nil, errs.ErrCartEmpty
	}

	order, err := s.guard.Run(ctx, func(ctx context.Context) (*cart.Order, error) {
		return s.server.Checkout(ctx, token)
	})
	if err != nil {
		if errs.Is(err, errs.ErrCheckoutInProgress) {
			return nil, err
		}
		s.logger.Warn("Checkout failed", "error", err.Error())
		return nil, s.classify(err)
	}

	s.logger.Info("Checkout completed", "order_id", order.ID, "count", order.Count, "paid", order.Paid.String())
	return order, nil
}

// classify tags backend failures for the handlers. A rejected token ends the session, like the UI's 401 interceptor.
func (s *storefrontImpl) classify(err error) error {
	switch {
	case infra.IsKind(err, infra.KindUnauthorized):
		s.auth.Invalidate()
		s.server.Invalidate()
		return errs.Mark(err, errs.ErrSessionExpired)
	case infra.IsKind(err, infra.KindUnavailable), infra.IsKind(err, infra.KindDecode):
		return errs.Mark(err, errs.ErrBackendUnavailable)
	}
	return err
}

func authErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindUnauthorized):
		return errs.Mark(err, errs.ErrInvalidCredentials)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrBackendUnavailable)
	}
	return err
}
