// Package errs is a thin layer over cockroachdb/errors. Use cases mark
// infra failures with sentinel errors so handlers can branch on errors.Is
// without losing the wrapped stack trace.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg, preserving its stack. Wrapping nil stays nil
// so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark ties err to a sentinel for errors.Is matching. A nil err collapses to
// the sentinel itself.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}
