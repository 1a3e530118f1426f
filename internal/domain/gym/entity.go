package gym

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("gym name cannot be empty")

type Gym struct {
	id          uuid.UUID
	coachID     uuid.UUID
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewGym(coachID uuid.UUID, name, description string) (*Gym, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Gym{
		id:          uuid.New(),
		coachID:     coachID,
		name:        name,
		description: description,
	}, nil
}

func ReconstructGym(id, coachID uuid.UUID, name, description string, createdAt, updatedAt time.Time) *Gym {
	return &Gym{
		id:          id,
		coachID:     coachID,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (g *Gym) ID() uuid.UUID        { return g.id }
func (g *Gym) CoachID() uuid.UUID   { return g.coachID }
func (g *Gym) Name() string         { return g.name }
func (g *Gym) Description() string  { return g.description }
func (g *Gym) CreatedAt() time.Time { return g.createdAt }
func (g *Gym) UpdatedAt() time.Time { return g.updatedAt }
