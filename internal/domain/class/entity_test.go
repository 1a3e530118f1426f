//go:build unit

package class_test

import (
	"testing"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/domain/class"
	"github.com/steven-the-qa/coach-wire/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ClassBuilder)
	errIs  error
}

func TestClassOffering(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewClassBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.GymID, actual.GymID())
		assert.Equal(t, b.Name, actual.Name())
		assert.Equal(t, b.Capacity, actual.Capacity().Seats())
		assert.Equal(t, b.PriceCents, actual.Price().Cents())
		assert.Equal(t, b.StartTime.Add(b.Duration), actual.Schedule().EndTime())
	})

	t.Run("schedule validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "start time in the past",
				mutate: func(b *builder.ClassBuilder) { b.WithStartTime(b.Now.Add(-time.Minute)) },
				errIs:  class.ErrPastStartTime,
			},
			{
				name:   "start time right now is allowed",
				mutate: func(b *builder.ClassBuilder) { b.WithStartTime(b.Now) },
			},
			{
				name:   "zero duration",
				mutate: func(b *builder.ClassBuilder) { b.WithDuration(0) },
				errIs:  class.ErrInvalidDuration,
			},
			{
				name:   "negative duration",
				mutate: func(b *builder.ClassBuilder) { b.WithDuration(-time.Hour) },
				errIs:  class.ErrInvalidDuration,
			},
		})
	})

	t.Run("capacity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero capacity is a valid sold-out-from-birth class",
				mutate: func(b *builder.ClassBuilder) { b.WithCapacity(0) },
			},
			{
				name:   "negative capacity",
				mutate: func(b *builder.ClassBuilder) { b.WithCapacity(-1) },
				errIs:  class.ErrNegativeCapacity,
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "free class",
				mutate: func(b *builder.ClassBuilder) { b.WithPriceCents(0) },
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ClassBuilder) { b.WithPriceCents(-1) },
				errIs:  class.ErrNegativePrice,
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ClassBuilder) { b.WithName("") },
				errIs:  class.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.ClassBuilder) { b.WithName("   ") },
				errIs:  class.ErrEmptyName,
			},
		})
	})

	t.Run("HasStarted", func(t *testing.T) {
		b := builder.NewClassBuilder()
		offering, err := b.BuildDomain()
		require.NoError(t, err)

		assert.False(t, offering.HasStarted(b.StartTime.Add(-time.Minute)))
		assert.True(t, offering.HasStarted(b.StartTime.Add(time.Minute)))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewClassBuilder().With(tc.mutate)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
