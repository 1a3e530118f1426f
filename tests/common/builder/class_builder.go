//go:build unit || e2e

package builder

import (
	"time"

	domclass "github.com/steven-the-qa/coach-wire/internal/domain/class"
	reqdto "github.com/steven-the-qa/coach-wire/internal/handler/dto/request"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"
	"github.com/steven-the-qa/coach-wire/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClassBuilder struct {
	ID          uuid.UUID
	GymID       uuid.UUID
	GymName     string
	Name        string
	Description string
	StartTime   time.Time
	Duration    time.Duration
	Capacity    int32
	Remaining   int32
	PriceCents  int64
	Now         time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewClassBuilder() *ClassBuilder {
	now := time.Now()
	return &ClassBuilder{
		ID:          uuid.New(),
		GymID:       uuid.New(),
		GymName:     "Test Gym",
		Name:        "Morning HIIT",
		Description: "High intensity interval training",
		StartTime:   now.Add(48 * time.Hour),
		Duration:    60 * time.Minute,
		Capacity:    10,
		Remaining:   10,
		PriceCents:  2500,
		Now:         now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ClassBuilder) With(mutate func(*ClassBuilder)) *ClassBuilder {
	mutate(b)
	return b
}

func (b *ClassBuilder) WithCapacity(seats int32) *ClassBuilder {
	b.Capacity = seats
	return b
}

func (b *ClassBuilder) WithRemaining(seats int32) *ClassBuilder {
	b.Remaining = seats
	return b
}

func (b *ClassBuilder) WithPriceCents(cents int64) *ClassBuilder {
	b.PriceCents = cents
	return b
}

func (b *ClassBuilder) WithStartTime(t time.Time) *ClassBuilder {
	b.StartTime = t
	return b
}

func (b *ClassBuilder) WithDuration(d time.Duration) *ClassBuilder {
	b.Duration = d
	return b
}

func (b *ClassBuilder) WithName(name string) *ClassBuilder {
	b.Name = name
	return b
}

// Build methods

func (b *ClassBuilder) BuildDomain() (*domclass.ClassOffering, error) {
	schedule, err := domclass.NewSchedule(b.StartTime, b.Duration, b.Now)
	if err != nil {
		return nil, err
	}
	capacity, err := domclass.NewCapacity(b.Capacity)
	if err != nil {
		return nil, err
	}
	price, err := domclass.NewMoney(b.PriceCents)
	if err != nil {
		return nil, err
	}
	return domclass.NewClassOffering(b.GymID, b.Name, b.Description, schedule, capacity, price)
}

func (b *ClassBuilder) BuildAvailability() *shared.AvailabilitySnapshot {
	return &shared.AvailabilitySnapshot{
		ClassID:    b.ID,
		Capacity:   b.Capacity,
		Remaining:  b.Remaining,
		PriceCents: b.PriceCents,
		StartTime:  b.StartTime,
	}
}

func (b *ClassBuilder) BuildCreateRequestDTO() reqdto.CreateClassRequest {
	return reqdto.CreateClassRequest{
		Name:        b.Name,
		Description: b.Description,
		StartTime:   b.StartTime,
		DurationMin: int32(b.Duration / time.Minute),
		Capacity:    b.Capacity,
		PriceCents:  b.PriceCents,
	}
}

func (b *ClassBuilder) BuildCreateParams() commands.CreateClassParams {
	return commands.CreateClassParams{
		Name:        b.Name,
		Description: b.Description,
		StartTime:   b.StartTime,
		Duration:    b.Duration,
		Capacity:    b.Capacity,
		PriceCents:  b.PriceCents,
	}
}

func (b *ClassBuilder) BuildView() *queries.ClassView {
	desc := b.Description
	return &queries.ClassView{
		ID:          b.ID,
		GymID:       b.GymID,
		GymName:     b.GymName,
		Name:        b.Name,
		Description: &desc,
		StartTime:   b.StartTime,
		DurationMin: int32(b.Duration / time.Minute),
		Capacity:    b.Capacity,
		Remaining:   b.Remaining,
		PriceCents:  b.PriceCents,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *ClassBuilder) BuildListItem() *queries.ClassListItem {
	return &queries.ClassListItem{
		ID:          b.ID,
		GymName:     b.GymName,
		Name:        b.Name,
		StartTime:   b.StartTime,
		DurationMin: int32(b.Duration / time.Minute),
		Remaining:   b.Remaining,
		PriceCents:  b.PriceCents,
	}
}
