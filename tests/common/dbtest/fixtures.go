//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProfile(t *testing.T, db Querier, email, role string) uuid.UUID {
	t.Helper()

	profileID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO profiles (id, email, full_name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		profileID, email, "Test "+role, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM profiles WHERE email = $1", email).Scan(&profileID)
	}

	return profileID
}

func CreateTestGym(t *testing.T, db Querier, coachID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	gymID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO gyms (id, coach_id, name, address) VALUES ($1, $2, $3, $4)",
		gymID, coachID, name, "1 Test Street")
	require.NoError(t, err)

	return gymID
}

func CreateTestClass(t *testing.T, db Querier, gymID uuid.UUID, startTime time.Time, capacity int32, priceCents int64) uuid.UUID {
	t.Helper()

	classID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO classes (id, gym_id, name, description, start_time, duration_min, capacity, price_cents)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		classID, gymID, "Test Class", "Fixture class", startTime, 60, capacity, priceCents)
	require.NoError(t, err)

	return classID
}

func CreateConfirmedBooking(t *testing.T, db Querier, classID, clientID uuid.UUID, paymentRef string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO bookings (id, class_id, client_id, status, payment_ref) VALUES ($1, $2, $3, 'confirmed', $4)",
		bookingID, classID, clientID, paymentRef)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
