// Package class models a ClassOffering: a scheduled, priced, capacity-limited
// session a coach publishes. Immutable once a booking references it, except
// capacity accounting, which is always derived from confirmed bookings at
// read time and never cached on the entity.
package class

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("class name cannot be empty")

type ClassOffering struct {
	id          uuid.UUID
	gymID       uuid.UUID
	name        string
	description string
	schedule    Schedule
	capacity    Capacity
	price       Money
	createdAt   time.Time
	updatedAt   time.Time
}

func NewClassOffering(
	gymID uuid.UUID,
	name, description string,
	schedule Schedule,
	capacity Capacity,
	price Money,
) (*ClassOffering, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	return &ClassOffering{
		id:          uuid.New(),
		gymID:       gymID,
		name:        name,
		description: description,
		schedule:    schedule,
		capacity:    capacity,
		price:       price,
	}, nil
}

func ReconstructClassOffering(
	id, gymID uuid.UUID,
	name, description string,
	schedule Schedule,
	capacity Capacity,
	price Money,
	createdAt, updatedAt time.Time,
) *ClassOffering {
	return &ClassOffering{
		id:          id,
		gymID:       gymID,
		name:        name,
		description: description,
		schedule:    schedule,
		capacity:    capacity,
		price:       price,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *ClassOffering) HasStarted(now time.Time) bool {
	return now.After(c.schedule.StartTime())
}

func (c *ClassOffering) ID() uuid.UUID        { return c.id }
func (c *ClassOffering) GymID() uuid.UUID     { return c.gymID }
func (c *ClassOffering) Name() string         { return c.name }
func (c *ClassOffering) Description() string  { return c.description }
func (c *ClassOffering) Schedule() Schedule   { return c.schedule }
func (c *ClassOffering) Capacity() Capacity   { return c.capacity }
func (c *ClassOffering) Price() Money         { return c.price }
func (c *ClassOffering) CreatedAt() time.Time { return c.createdAt }
func (c *ClassOffering) UpdatedAt() time.Time { return c.updatedAt }
