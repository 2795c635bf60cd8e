package merge

type State string

const (
	StateNoSession                      State = "no_session"
	StateSessionEstablishedNoGuestItems State = "session_established_no_guest_items"
	StatePending                        State = "merge_pending"
	StateInFlight                       State = "merge_in_flight"
	StateSucceeded                      State = "merge_succeeded"
	StateFailed                         State = "merge_failed"
)

func (s State) String() string {
	return string(s)
}

// IsBusy reports whether the UI should show a loading affordance.
func (s State) IsBusy() bool {
	return s == StatePending || s == StateInFlight
}

// Outcome describes the latest reconcile for the current session.
type Outcome struct {
	State       State
	SessionID   uint64
	Attempted   int
	Transferred int
	Dropped     int
	Err         error
}
