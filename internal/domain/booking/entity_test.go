//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmed(t *testing.T) {
	classID := uuid.New()
	clientID := uuid.New()

	t.Run("confirmed from birth with a payment reference", func(t *testing.T) {
		b, err := booking.NewConfirmed(classID, clientID, "pi_test_123")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, classID, b.ClassID())
		assert.Equal(t, clientID, b.ClientID())
		assert.True(t, b.IsConfirmed())
		require.NotNil(t, b.PaymentRef())
		assert.Equal(t, "pi_test_123", *b.PaymentRef())
	})

	t.Run("refuses an empty payment reference", func(t *testing.T) {
		_, err := booking.NewConfirmed(classID, clientID, "")
		require.ErrorIs(t, err, booking.ErrMissingPaymentRef)
	})
}

func TestReconstruct(t *testing.T) {
	now := time.Now()
	ref := "pi_test_123"

	t.Run("round-trips stored fields", func(t *testing.T) {
		id := uuid.New()
		b, err := booking.Reconstruct(id, uuid.New(), uuid.New(), booking.StatusConfirmed, &ref, now, now)
		require.NoError(t, err)
		assert.Equal(t, id, b.ID())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := booking.Reconstruct(uuid.New(), uuid.New(), uuid.New(), booking.Status("refunded"), &ref, now, now)
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

func TestStatus(t *testing.T) {
	valid := []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusFailed}
	for _, s := range valid {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, booking.Status("refunded").IsValid())
}
