package readstore

import (
	"context"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/infra/db"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"
	"github.com/steven-the-qa/coach-wire/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jinzhu/copier"
)

// remaining is always recomputed from the authoritative count of confirmed
// bookings; it is never cached or maintained as a counter column.
const classViewQuery = `
SELECT c.id, c.gym_id, g.name AS gym_name, p.full_name AS coach_name,
       c.name, c.description, c.start_time, c.duration_min,
       c.capacity,
       c.capacity - (
           SELECT count(*) FROM bookings b
           WHERE b.class_id = c.id AND b.status = 'confirmed'
       )::int AS remaining,
       c.price_cents, c.created_at, c.updated_at
FROM classes c
JOIN gyms g ON g.id = c.gym_id
JOIN profiles p ON p.id = g.coach_id
`

type classViewRow struct {
	ID          uuid.UUID
	GymID       uuid.UUID
	GymName     string
	CoachName   *string
	Name        string
	Description *string
	StartTime   time.Time
	DurationMin int32
	Capacity    int32
	Remaining   int32
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ClassReadStore struct {
	db db.DBTX
}

func NewClassReadStore(db db.DBTX) *ClassReadStore {
	return &ClassReadStore{db: db}
}

func (r *ClassReadStore) FindUpcoming(ctx context.Context) ([]*queries.ClassListItem, error) {
	rows, err := r.db.Query(ctx, classViewQuery+` WHERE c.start_time > now() ORDER BY c.start_time`)
	if err != nil {
		return nil, infra.WrapErr("failed to list upcoming classes", err)
	}
	defer rows.Close()

	var result []*queries.ClassListItem
	for rows.Next() {
		row, scanErr := scanClassRow(rows)
		if scanErr != nil {
			return nil, infra.WrapErr("failed to scan class row", scanErr)
		}
		item := &queries.ClassListItem{}
		if copyErr := copier.Copy(item, row); copyErr != nil {
			return nil, infra.WrapErr("failed to convert class row", copyErr)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapErr("failed to read class rows", err)
	}

	return result, nil
}

func (r *ClassReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClassView, error) {
	rows, err := r.db.Query(ctx, classViewQuery+` WHERE c.id = $1`, id)
	if err != nil {
		return nil, infra.WrapErr("failed to find class by id", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapErr("failed to find class by id", err)
		}
		return nil, infra.WrapErr("class not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	row, err := scanClassRow(rows)
	if err != nil {
		return nil, infra.WrapErr("failed to scan class row", err)
	}

	view := &queries.ClassView{}
	if err := copier.Copy(view, row); err != nil {
		return nil, infra.WrapErr("failed to convert class row", err)
	}
	return view, nil
}

// Availability is the Capacity Gate read: a plain select with no locks.
func (r *ClassReadStore) Availability(ctx context.Context, classID uuid.UUID) (*shared.AvailabilitySnapshot, error) {
	const query = `
SELECT c.id, c.capacity,
       c.capacity - (
           SELECT count(*) FROM bookings b
           WHERE b.class_id = c.id AND b.status = 'confirmed'
       )::int AS remaining,
       c.price_cents, c.start_time
FROM classes c
WHERE c.id = $1`

	snap := &shared.AvailabilitySnapshot{}
	err := r.db.QueryRow(ctx, query, classID).Scan(
		&snap.ClassID, &snap.Capacity, &snap.Remaining, &snap.PriceCents, &snap.StartTime,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapErr("class not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapErr("failed to read class availability", err)
	}

	return snap, nil
}

func scanClassRow(rows pgx.Rows) (*classViewRow, error) {
	row := &classViewRow{}
	err := rows.Scan(
		&row.ID, &row.GymID, &row.GymName, &row.CoachName,
		&row.Name, &row.Description, &row.StartTime, &row.DurationMin,
		&row.Capacity, &row.Remaining, &row.PriceCents,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}
