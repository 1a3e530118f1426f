package repository

import (
	"context"
	"errors"

	"github.com/steven-the-qa/coach-wire/internal/domain/booking"
	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// CreateConfirmed is the authoritative exclusivity check. It locks the class
// row to serialize concurrent attempts on the same class, re-counts confirmed
// bookings under the lock, and inserts only while seats remain. The partial
// unique index on (class_id, client_id) for confirmed rows refuses repeat
// clients the count cannot see.
func (r *BookingRepository) CreateConfirmed(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const lockQuery = `SELECT capacity FROM classes WHERE id = $1 FOR UPDATE`

	var capacity int32
	if err := tx.QueryRow(ctx, lockQuery, b.ClassID()).Scan(&capacity); err != nil {
		return uuid.Nil, infra.WrapErr("failed to lock class row", err)
	}

	const countQuery = `SELECT count(*) FROM bookings WHERE class_id = $1 AND status = 'confirmed'`

	var confirmed int32
	if err := tx.QueryRow(ctx, countQuery, b.ClassID()).Scan(&confirmed); err != nil {
		return uuid.Nil, infra.WrapErr("failed to count confirmed bookings", err)
	}

	if confirmed >= capacity {
		return uuid.Nil, infra.WrapErr("class capacity exhausted at write time", nil, infra.KindConflict)
	}

	const insertQuery = `
INSERT INTO bookings (id, class_id, client_id, status, payment_ref, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, insertQuery,
		b.ID(), b.ClassID(), b.ClientID(), b.Status().String(), b.PaymentRef(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapErr("client already holds a confirmed booking", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapErr("failed to insert booking", err)
	}

	return id, nil
}
