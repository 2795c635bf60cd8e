package infra

import (
	"errors"
	"log/slog"

	"fitbook-storefront/internal/pkg/errs"
)

type ErrorKind string

type RepositoryError struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func (e RepositoryError) kind() ErrorKind {
	return e.Kind
}

func WrapRepoErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// BackendError describes a failed call to the booking backend.
// Message holds the backend's own user-facing message when it sent one.
type BackendError struct {
	Kind    ErrorKind
	Status  int
	Message string
	err     error
}

func NewBackendError(kind ErrorKind, status int, message string, err error) error {
	return BackendError{Kind: kind, Status: status, Message: message, err: err}
}

func (e BackendError) Error() string {
	s := string(e.Kind)
	if e.Message != "" {
		s += ": " + e.Message
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e BackendError) Unwrap() error {
	return e.err
}

func (e BackendError) kind() ErrorKind {
	return e.Kind
}

type kinded interface {
	kind() ErrorKind
}

func IsKind(err error, kind ErrorKind) bool {
	var k kinded
	if errors.As(err, &k) {
		return k.kind() == kind
	}
	return false
}

// BackendMessage returns the backend's message, if any.
func BackendMessage(err error) string {
	var e BackendError
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindDBFailure    ErrorKind = "DB_FAILURE"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindConflict     ErrorKind = "CONFLICT"
	KindRejected     ErrorKind = "REJECTED"
	KindUnavailable  ErrorKind = "UNAVAILABLE"
	KindDecode       ErrorKind = "DECODE"
)
