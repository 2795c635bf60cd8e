package merge

//go:generate mockgen -source=orchestrator.go -destination=../../../tests/mock/merge/orchestrator_mock.go -package=mergemock

import (
	"context"
	"log/slog"
	"sync"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/infra"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/internal/usecase/session"
)

var ErrBatchFailed = errs.New("guest cart merge failed")

type GuestCart interface {
	Items() (cart.Lines, uint64)
	ClearGuest(ctx context.Context) error
	RemoveGuest(ctx context.Context, courseID string) (bool, error)
}

type ServerCart interface {
	Add(ctx context.Context, token, courseID string) error
	Invalidate()
}

type AuthState interface {
	Snapshot() session.Snapshot
	Token() string
	Invalidate()
}

// Orchestrator moves the guest cart into the server cart at most once per authenticated session.
// The once-flag is keyed on the session id handed out by the auth state, never on the shape of the guest cart:
// an empty guest cart can mean "merged" as well as "emptied by the visitor".
type Orchestrator struct {
	guest       GuestCart
	server      ServerCart
	auth        AuthState
	concurrency int
	logger      *slog.Logger

	mu        sync.Mutex
	state     State
	sessionID uint64
	running   bool
	last      Outcome
}

func NewOrchestrator(guest GuestCart, server ServerCart, auth AuthState, concurrency int, logger *slog.Logger) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Orchestrator{
		guest:       guest,
		server:      server,
		auth:        auth,
		concurrency: concurrency,
		logger:      logger,
		state:       StateNoSession,
		last:        Outcome{State: StateNoSession},
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) Outcome() Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.last
}

type batch struct {
	sessionID uint64
	token     string
	lines     cart.Lines
	revision  uint64
}

// Reconcile drives the state machine one step from the current auth and guest cart state.
// It runs a merge batch only on the transition into MergePending and returns once that batch has settled.
// Calls that arrive while a batch is running return immediately with the in-flight outcome.
func (o *Orchestrator) Reconcile(ctx context.Context) Outcome {
	b, ok := o.arm()
	if !ok {
		return o.Outcome()
	}

	// 画面遷移などでリクエストが切れても、マージは最後まで走らせる
	results := o.send(context.WithoutCancel(ctx), b)
	return o.settle(context.WithoutCancel(ctx), b, results)
}

func (o *Orchestrator) arm() (batch, bool) {
	snap := o.auth.Snapshot()
	token := o.auth.Token()

	o.mu.Lock()
	defer o.mu.Unlock()

	if !snap.Authenticated() || token == "" {
		if !o.running {
			o.enterLocked(StateNoSession, Outcome{})
		}
		o.sessionID = 0
		return batch{}, false
	}

	if snap.SessionID != o.sessionID {
		// 新しいセッション：前セッションのフラグは引き継がない
		o.sessionID = snap.SessionID
		o.enterLocked(StateNoSession, Outcome{})
	}

	if o.running {
		return batch{}, false
	}

	switch o.state {
	case StateSucceeded, StateInFlight:
		return batch{}, false
	}

	lines, revision := o.guest.Items()
	if len(lines) == 0 {
		o.enterLocked(StateSessionEstablishedNoGuestItems, Outcome{})
		return batch{}, false
	}

	o.enterLocked(StatePending, Outcome{Attempted: len(lines)})
	o.enterLocked(StateInFlight, Outcome{Attempted: len(lines)})
	o.running = true

	o.logger.Info("Starting guest cart merge",
		"session_id", o.sessionID,
		"lines", len(lines),
	)

	return batch{
		sessionID: o.sessionID,
		token:     token,
		lines:     lines,
		revision:  revision,
	}, true
}

// send issues one add per line with bounded concurrency and waits for every call to settle.
func (o *Orchestrator) send(ctx context.Context, b batch) []error {
	results := make([]error, len(b.lines))
	sem := make(chan struct{}, o.concurrency)

	var wg sync.WaitGroup
	for i, line := range b.lines {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, courseID string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = o.server.Add(ctx, b.token, courseID)
		}(i, line.Course.ID)
	}
	wg.Wait()

	return results
}

func (o *Orchestrator) settle(ctx context.Context, b batch, results []error) Outcome {
	outcome := Outcome{Attempted: len(b.lines)}
	var fatal error
	unauthorized := false

	for i, err := range results {
		switch {
		case err == nil:
			outcome.Transferred++
		case isTolerated(err):
			outcome.Dropped++
			o.logger.Info("Skipped guest cart line during merge", "course_id", b.lines[i].Course.ID, "reason", err.Error())
		default:
			if infra.IsKind(err, infra.KindUnauthorized) {
				unauthorized = true
			}
			if fatal == nil {
				fatal = err
			}
		}
	}

	if fatal != nil {
		outcome.Err = errs.Mark(fatal, ErrBatchFailed)
		if unauthorized {
			o.auth.Invalidate()
		}
		o.server.Invalidate()
		o.logger.Warn("Guest cart merge failed, keeping guest cart",
			"session_id", b.sessionID,
			"transferred", outcome.Transferred,
			"error", fatal.Error(),
		)
		return o.finish(b, StateFailed, outcome)
	}

	if err := o.drainGuest(ctx, b); err != nil {
		// 転送は完了済み。保存失敗はメモリ上のカートには影響しない
		o.logger.Warn("Failed to persist cleared guest cart after merge", "error", err.Error())
	}
	o.server.Invalidate()

	o.logger.Info("Guest cart merge completed",
		"session_id", b.sessionID,
		"transferred", outcome.Transferred,
		"dropped", outcome.Dropped,
	)
	return o.finish(b, StateSucceeded, outcome)
}

// drainGuest clears the guest cart. If it changed while the batch was running, only the lines that were sent are removed.
func (o *Orchestrator) drainGuest(ctx context.Context, b batch) error {
	if _, revision := o.guest.Items(); revision == b.revision {
		return o.guest.ClearGuest(ctx)
	}

	o.logger.Warn("Guest cart changed during merge, removing only sent lines", "session_id", b.sessionID)
	var firstErr error
	for _, id := range b.lines.CourseIDs() {
		if _, err := o.guest.RemoveGuest(ctx, id); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (o *Orchestrator) finish(b batch, state State, outcome Outcome) Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.running = false
	if o.sessionID != b.sessionID {
		// ログアウト等でセッションが切り替わった。結果は旧セッションのもの
		o.logger.Info("Session changed before merge finished", "batch_session_id", b.sessionID, "session_id", o.sessionID)
		outcome.State = state
		outcome.SessionID = b.sessionID
		return outcome
	}

	o.enterLocked(state, outcome)
	return o.last
}

func (o *Orchestrator) enterLocked(state State, outcome Outcome) {
	if o.state != state {
		o.logger.Debug("merge state transition", "from", o.state, "to", state, "session_id", o.sessionID)
	}
	o.state = state
	outcome.State = state
	outcome.SessionID = o.sessionID
	o.last = outcome
}

// Per-line rejections (already in cart, already purchased, course gone) drop the line without failing the batch.
func isTolerated(err error) bool {
	return infra.IsKind(err, infra.KindConflict) ||
		infra.IsKind(err, infra.KindRejected) ||
		infra.IsKind(err, infra.KindNotFound)
}
