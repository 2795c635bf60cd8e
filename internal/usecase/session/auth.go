package session

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"fitbook-storefront/internal/domain/auth"
	"fitbook-storefront/internal/domain/user"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

var ErrSessionChanged = errs.New("session changed while fetching current user")

// Snapshot is a consistent read of the auth state.
// SessionID identifies the authenticated session and changes only across a logout/login boundary.
type Snapshot struct {
	User      *user.User
	Status    auth.Status
	SessionID uint64
	HasToken  bool
}

func (s Snapshot) Authenticated() bool {
	return s.User != nil
}

type Auth struct {
	client shared.AuthClient
	logger *slog.Logger
	flight singleflight.Group

	mu          sync.RWMutex
	token       string
	user        *user.User
	status      auth.Status
	epoch       uint64 // bumped on every local reset; stale fetches compare against it
	sessionID   uint64
	sessionOpen bool
}

func NewAuth(client shared.AuthClient, logger *slog.Logger) *Auth {
	return &Auth{
		client: client,
		logger: logger,
		status: auth.StatusIdle,
	}
}

func (a *Auth) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return Snapshot{
		User:      a.user,
		Status:    a.status,
		SessionID: a.sessionID,
		HasToken:  a.token != "",
	}
}

func (a *Auth) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// SetToken stores a bearer token. A different token starts a new session: the user is dropped and status returns to idle.
func (a *Auth) SetToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if token == a.token {
		return
	}
	a.token = token
	a.resetLocked(auth.StatusIdle)
}

// ClearUser logs the visitor out locally. The next successful fetch opens a fresh session.
func (a *Auth) ClearUser() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.token = ""
	a.resetLocked(auth.StatusIdle)
}

// Invalidate is used when the backend rejects the token.
func (a *Auth) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token == "" && a.user == nil {
		return
	}
	a.logger.Info("Backend rejected the token, ending session", "session_id", a.sessionID)
	a.token = ""
	a.resetLocked(auth.StatusFailed)
}

// FetchCurrentUser resolves the token into a user. Concurrent callers for the same session share one backend call.
// Any failure purges the token and leaves status failed.
func (a *Auth) FetchCurrentUser(ctx context.Context) (*user.User, error) {
	a.mu.Lock()
	token, epoch := a.token, a.epoch
	if token == "" {
		a.user = nil
		a.status = auth.StatusFailed
		a.mu.Unlock()
		return nil, errs.ErrNotAuthenticated
	}
	a.user = nil
	a.status = auth.StatusLoading
	a.mu.Unlock()

	v, err, _ := a.flight.Do(strconv.FormatUint(epoch, 10), func() (any, error) {
		// 呼び出し元のリクエストが切断されても、他の待機者のために取得は完了させる
		return a.client.CurrentUser(context.WithoutCancel(ctx), token)
	})

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.epoch != epoch {
		// 同じフライトの先行者がすでに失敗を反映済みの場合もここに来る
		if err != nil {
			return nil, err
		}
		return nil, ErrSessionChanged
	}

	if err != nil {
		a.logger.Warn("Failed to fetch current user", "error", err.Error())
		a.token = ""
		a.resetLocked(auth.StatusFailed)
		return nil, err
	}

	u, _ := v.(*user.User)
	if u == nil {
		a.token = ""
		a.resetLocked(auth.StatusFailed)
		return nil, errs.ErrNotAuthenticated
	}

	a.user = u
	a.status = auth.StatusSucceeded
	if !a.sessionOpen {
		a.sessionID++
		a.sessionOpen = true
		a.logger.Info("Session established", "session_id", a.sessionID, "user_id", u.ID())
	}
	return u, nil
}

func (a *Auth) resetLocked(status auth.Status) {
	a.user = nil
	a.status = status
	a.epoch++
	a.sessionOpen = false
}
