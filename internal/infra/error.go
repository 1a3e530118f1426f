package infra

import (
	"errors"

	"github.com/steven-the-qa/coach-wire/internal/pkg/errs"
)

type ErrorKind string

// Infrastructure-specific error kinds. Repositories and the gateway client
// classify low-level failures with these; use cases translate them to
// caller-facing sentinels without inspecting driver errors themselves.
const (
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindConflict        ErrorKind = "CONFLICT"
	KindDuplicateKey    ErrorKind = "DUPLICATE_KEY"
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	KindUnavailable     ErrorKind = "UNAVAILABLE"
	KindDBFailure       ErrorKind = "DB_FAILURE"
)

type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

// WrapErr classifies err under the given kind; KindDBFailure when omitted.
func WrapErr(msg string, err error, kinds ...ErrorKind) error {
	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
