package readstore

import (
	"context"

	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/infra/db"
	"github.com/steven-the-qa/coach-wire/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GymReadStore struct {
	db db.DBTX
}

func NewGymReadStore(db db.DBTX) *GymReadStore {
	return &GymReadStore{db: db}
}

func (r *GymReadStore) FindByCoach(ctx context.Context, coachID uuid.UUID) (*shared.GymSnapshot, error) {
	const query = `SELECT id, coach_id, name FROM gyms WHERE coach_id = $1`

	snap := &shared.GymSnapshot{}
	err := r.db.QueryRow(ctx, query, coachID).Scan(&snap.ID, &snap.CoachID, &snap.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapErr("gym not found for coach", err, infra.KindNotFound)
		}
		return nil, infra.WrapErr("failed to find gym by coach", err)
	}

	return snap, nil
}
