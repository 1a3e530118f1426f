// Package booking models a client's paid reservation against a class
// offering. At most one confirmed booking may exist per (class, client)
// pair; that uniqueness is enforced at write time by the store, not here.
package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingPaymentRef = errors.New("confirmed booking requires a payment reference")
	ErrInvalidStatus     = errors.New("invalid booking status")
)

type Booking struct {
	id         uuid.UUID
	classID    uuid.UUID
	clientID   uuid.UUID
	status     Status
	paymentRef *string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewConfirmed builds a booking that is confirmed from birth. The caller
// must already hold an authorized payment; the reserve-one-spot flow never
// persists a booking before money has moved.
func NewConfirmed(classID, clientID uuid.UUID, paymentRef string) (*Booking, error) {
	if paymentRef == "" {
		return nil, ErrMissingPaymentRef
	}
	ref := paymentRef
	return &Booking{
		id:         uuid.New(),
		classID:    classID,
		clientID:   clientID,
		status:     StatusConfirmed,
		paymentRef: &ref,
	}, nil
}

func Reconstruct(
	id, classID, clientID uuid.UUID,
	status Status,
	paymentRef *string,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:         id,
		classID:    classID,
		clientID:   clientID,
		status:     status,
		paymentRef: paymentRef,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) ClassID() uuid.UUID  { return b.classID }
func (b *Booking) ClientID() uuid.UUID { return b.clientID }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) PaymentRef() *string { return b.paymentRef }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
