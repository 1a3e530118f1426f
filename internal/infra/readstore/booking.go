package readstore

import (
	"context"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/infra/db"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jinzhu/copier"
)

const bookingViewQuery = `
SELECT b.id, b.class_id, c.name AS class_name, c.start_time,
       b.client_id, b.status, b.payment_ref, b.created_at, b.updated_at
FROM bookings b
JOIN classes c ON c.id = b.class_id
`

type bookingViewRow struct {
	ID         uuid.UUID
	ClassID    uuid.UUID
	ClassName  string
	StartTime  time.Time
	ClientID   uuid.UUID
	Status     string
	PaymentRef *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewQuery+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, infra.WrapErr("failed to find booking by id", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapErr("failed to find booking by id", err)
		}
		return nil, infra.WrapErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	row, err := scanBookingRow(rows)
	if err != nil {
		return nil, infra.WrapErr("failed to scan booking row", err)
	}

	view := &queries.BookingView{}
	if err := copier.Copy(view, row); err != nil {
		return nil, infra.WrapErr("failed to convert booking row", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewQuery+` WHERE b.client_id = $1 ORDER BY b.created_at DESC`, clientID)
	if err != nil {
		return nil, infra.WrapErr("failed to list bookings by client", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		row, scanErr := scanBookingRow(rows)
		if scanErr != nil {
			return nil, infra.WrapErr("failed to scan booking row", scanErr)
		}
		view := &queries.BookingView{}
		if copyErr := copier.Copy(view, row); copyErr != nil {
			return nil, infra.WrapErr("failed to convert booking row", copyErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapErr("failed to read booking rows", err)
	}

	return result, nil
}

func (r *BookingReadStore) HasConfirmed(ctx context.Context, classID, clientID uuid.UUID) (bool, error) {
	const query = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE class_id = $1 AND client_id = $2 AND status = 'confirmed'
)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, classID, clientID).Scan(&exists); err != nil {
		return false, infra.WrapErr("failed to check for confirmed booking", err)
	}
	return exists, nil
}

func scanBookingRow(rows pgx.Rows) (*bookingViewRow, error) {
	row := &bookingViewRow{}
	err := rows.Scan(
		&row.ID, &row.ClassID, &row.ClassName, &row.StartTime,
		&row.ClientID, &row.Status, &row.PaymentRef,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}
