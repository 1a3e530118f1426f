package repository

import (
	"context"

	"github.com/steven-the-qa/coach-wire/internal/domain/class"
	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/infra/db"

	"github.com/google/uuid"
)

type ClassRepository struct{}

func NewClassRepository() *ClassRepository {
	return &ClassRepository{}
}

func (r *ClassRepository) Create(ctx context.Context, tx db.DBTX, c *class.ClassOffering) (uuid.UUID, error) {
	const query = `
INSERT INTO classes (id, gym_id, name, description, start_time, duration_min, capacity, price_cents, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
RETURNING id`

	durationMin := int32(c.Schedule().Duration().Minutes())

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		c.ID(), c.GymID(), c.Name(), nullableText(c.Description()),
		c.Schedule().StartTime(), durationMin,
		c.Capacity().Seats(), c.Price().Cents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapErr("failed to insert class", err)
	}

	return id, nil
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
