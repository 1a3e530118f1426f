package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ClassID uuid.UUID `json:"class_id" binding:"required"`
}
