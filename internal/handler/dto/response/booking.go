package response

import (
	"time"

	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	ClassID    uuid.UUID `json:"classId"`
	ClassName  string    `json:"className"`
	StartTime  time.Time `json:"startTime"`
	ClientID   uuid.UUID `json:"clientId"`
	Status     string    `json:"status"`
	PaymentRef *string   `json:"paymentRef,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         view.ID,
		ClassID:    view.ClassID,
		ClassName:  view.ClassName,
		StartTime:  view.StartTime,
		ClientID:   view.ClientID,
		Status:     view.Status,
		PaymentRef: view.PaymentRef,
		CreatedAt:  view.CreatedAt,
		UpdatedAt:  view.UpdatedAt,
	}
}

// ReversalDetail rides on the error payload when a charge was authorized but
// the reservation could not be recorded; the reference must reach the caller.
type ReversalDetail struct {
	PaymentRef string `json:"paymentRef"`
}
