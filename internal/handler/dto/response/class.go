package response

import (
	"time"

	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClassResponse struct {
	ID          uuid.UUID `json:"id"`
	GymID       uuid.UUID `json:"gymId"`
	GymName     string    `json:"gymName"`
	CoachName   *string   `json:"coachName,omitempty"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime"`
	DurationMin int32     `json:"durationMin"`
	Capacity    int32     `json:"capacity"`
	Remaining   int32     `json:"remaining"`
	PriceCents  int64     `json:"priceCents"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ClassListResponse struct {
	ID          uuid.UUID `json:"id"`
	GymName     string    `json:"gymName"`
	Name        string    `json:"name"`
	StartTime   time.Time `json:"startTime"`
	DurationMin int32     `json:"durationMin"`
	Remaining   int32     `json:"remaining"`
	PriceCents  int64     `json:"priceCents"`
}

func FromClassView(view *queries.ClassView) *ClassResponse {
	return &ClassResponse{
		ID:          view.ID,
		GymID:       view.GymID,
		GymName:     view.GymName,
		CoachName:   view.CoachName,
		Name:        view.Name,
		Description: view.Description,
		StartTime:   view.StartTime,
		DurationMin: view.DurationMin,
		Capacity:    view.Capacity,
		Remaining:   view.Remaining,
		PriceCents:  view.PriceCents,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

func FromClassListItem(item *queries.ClassListItem) *ClassListResponse {
	return &ClassListResponse{
		ID:          item.ID,
		GymName:     item.GymName,
		Name:        item.Name,
		StartTime:   item.StartTime,
		DurationMin: item.DurationMin,
		Remaining:   item.Remaining,
		PriceCents:  item.PriceCents,
	}
}
