//go:build unit || e2e

package builder

import (
	"time"

	dombooking "github.com/steven-the-qa/coach-wire/internal/domain/booking"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	ClassID    uuid.UUID
	ClassName  string
	StartTime  time.Time
	ClientID   uuid.UUID
	Status     string
	PaymentRef string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:         uuid.New(),
		ClassID:    uuid.New(),
		ClassName:  "Morning HIIT",
		StartTime:  now.Add(48 * time.Hour),
		ClientID:   uuid.New(),
		Status:     string(dombooking.StatusConfirmed),
		PaymentRef: "pi_test_123",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithPaymentRef(ref string) *BookingBuilder {
	b.PaymentRef = ref
	return b
}

func (b *BookingBuilder) WithClass(classID uuid.UUID) *BookingBuilder {
	b.ClassID = classID
	return b
}

func (b *BookingBuilder) WithClient(clientID uuid.UUID) *BookingBuilder {
	b.ClientID = clientID
	return b
}

// Build methods

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewConfirmed(b.ClassID, b.ClientID, b.PaymentRef)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	ref := b.PaymentRef
	return &queries.BookingView{
		ID:         b.ID,
		ClassID:    b.ClassID,
		ClassName:  b.ClassName,
		StartTime:  b.StartTime,
		ClientID:   b.ClientID,
		Status:     b.Status,
		PaymentRef: &ref,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
