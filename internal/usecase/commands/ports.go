package commands

import (
	"context"

	"github.com/steven-the-qa/coach-wire/internal/domain/booking"
	"github.com/steven-the-qa/coach-wire/internal/domain/class"
	"github.com/steven-the-qa/coach-wire/internal/infra/db"
	"github.com/steven-the-qa/coach-wire/internal/usecase/shared"

	"github.com/google/uuid"
)

// Ports the command layer depends on. Infra provides implementations; tests
// substitute gomock doubles generated under tests/mock.

// ClassReads is the Capacity Gate: an advisory, lock-free availability read.
type ClassReads interface {
	Availability(ctx context.Context, classID uuid.UUID) (*shared.AvailabilitySnapshot, error)
}

type BookingReads interface {
	HasConfirmed(ctx context.Context, classID, clientID uuid.UUID) (bool, error)
}

// BookingRepository is the Booking Recorder. CreateConfirmed must re-check
// capacity and duplicates inside the supplied transaction; its verdict is
// authoritative where the Capacity Gate's was advisory.
type BookingRepository interface {
	CreateConfirmed(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
}

type ClassRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *class.ClassOffering) (uuid.UUID, error)
}

type GymReads interface {
	FindByCoach(ctx context.Context, coachID uuid.UUID) (*shared.GymSnapshot, error)
}

type PaymentDisposition string

const (
	DispositionAuthorized PaymentDisposition = "authorized"
	DispositionDeclined   PaymentDisposition = "declined"
	DispositionCancelled  PaymentDisposition = "cancelled"
)

// PaymentIntent is the gateway-side handle for an in-flight charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentAuthorization is the transient result of one gateway round trip.
// It is never persisted; bookings reference it only via the intent id.
type PaymentAuthorization struct {
	IntentID     string
	ClientSecret string
	Status       PaymentDisposition
}

// PaymentGateway wraps the external processor's two-phase flow. It is the
// only place money moves and it never touches the relational store.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*PaymentIntent, error)
	// AwaitConfirmation blocks until the user-facing confirmation step
	// resolves the intent to a terminal disposition.
	AwaitConfirmation(ctx context.Context, intentID string) (PaymentDisposition, error)
}

// IntentStore remembers the un-confirmed intent for a (client, class) pair
// so a retry after a network fault reuses it instead of authorizing the
// client's card twice.
type IntentStore interface {
	Pending(ctx context.Context, clientID, classID uuid.UUID) (*PaymentIntent, error)
	Save(ctx context.Context, clientID, classID uuid.UUID, intent *PaymentIntent) error
	Clear(ctx context.Context, clientID, classID uuid.UUID) error
}

type ReversalAlert struct {
	PaymentRef string    `json:"payment_ref"`
	ClassID    uuid.UUID `json:"class_id"`
	ClientID   uuid.UUID `json:"client_id"`
	Reason     string    `json:"reason"`
}

// ReversalAlerts notifies operational tooling that an authorized charge has
// no matching booking and needs manual or automated reversal.
type ReversalAlerts interface {
	PublishReversal(ctx context.Context, alert ReversalAlert) error
}
