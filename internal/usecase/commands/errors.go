package commands

import (
	"fmt"

	"github.com/steven-the-qa/coach-wire/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// Pre-payment: fully recoverable, no side effects occurred.
	ErrClassNotFound = errs.New("class not found")
	ErrGymNotFound   = errs.New("gym not found")
	ErrSoldOut       = errs.New("class sold out")
	ErrInvalidAmount = errs.New("invalid payment amount")

	// Gateway outcomes. Declined and cancelled are expected user outcomes,
	// not system faults; unavailable is a retryable infrastructure fault.
	ErrGatewayUnavailable = errs.New("payment gateway unavailable")
	ErrPaymentDeclined    = errs.New("payment declined")
	ErrPaymentCancelled   = errs.New("payment cancelled")

	// Authoritative write-time verdicts.
	ErrCapacityExceeded = errs.New("class capacity exceeded")
	ErrDuplicateBooking = errs.New("duplicate booking")

	// Post-charge persistence failure: money was collected without a
	// matching reservation. Never swallowed.
	ErrPaymentNeedsReversal = errs.New("payment needs reversal")

	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ReversalError carries the authorization reference for a charge the store
// refused to match with a booking. errors.Is(err, ErrPaymentNeedsReversal)
// holds for every ReversalError.
type ReversalError struct {
	PaymentRef string
	ClassID    uuid.UUID
	ClientID   uuid.UUID
	Cause      error
}

func (e *ReversalError) Error() string {
	return fmt.Sprintf("payment %s needs reversal (class %s, client %s): %v",
		e.PaymentRef, e.ClassID, e.ClientID, e.Cause)
}

func (e *ReversalError) Unwrap() error {
	return e.Cause
}

func (e *ReversalError) Is(target error) bool {
	return target == ErrPaymentNeedsReversal
}
