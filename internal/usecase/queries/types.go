package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ClassView struct {
	ID          uuid.UUID `json:"id"`
	GymID       uuid.UUID `json:"gym_id"`
	GymName     string    `json:"gym_name"`
	CoachName   *string   `json:"coach_name,omitempty"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	DurationMin int32     `json:"duration_min"`
	Capacity    int32     `json:"capacity"`
	Remaining   int32     `json:"remaining"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ClassListItem struct {
	ID          uuid.UUID `json:"id"`
	GymName     string    `json:"gym_name"`
	Name        string    `json:"name"`
	StartTime   time.Time `json:"start_time"`
	DurationMin int32     `json:"duration_min"`
	Remaining   int32     `json:"remaining"`
	PriceCents  int64     `json:"price_cents"`
}

type BookingView struct {
	ID         uuid.UUID `json:"id"`
	ClassID    uuid.UUID `json:"class_id"`
	ClassName  string    `json:"class_name"`
	StartTime  time.Time `json:"start_time"`
	ClientID   uuid.UUID `json:"client_id"`
	Status     string    `json:"status"`
	PaymentRef *string   `json:"payment_ref,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
