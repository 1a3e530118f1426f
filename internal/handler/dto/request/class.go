package request

import (
	"time"

	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"
)

type CreateClassRequest struct {
	Name        string    `json:"name" binding:"required,max=200"`
	Description string    `json:"description" binding:"max=2000"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	DurationMin int32     `json:"duration_min" binding:"required,min=1"`
	Capacity    int32     `json:"capacity" binding:"min=0"`
	PriceCents  int64     `json:"price_cents" binding:"min=0"`
}

func (r CreateClassRequest) ToParams() commands.CreateClassParams {
	return commands.CreateClassParams{
		Name:        r.Name,
		Description: r.Description,
		StartTime:   r.StartTime,
		Duration:    time.Duration(r.DurationMin) * time.Minute,
		Capacity:    r.Capacity,
		PriceCents:  r.PriceCents,
	}
}
