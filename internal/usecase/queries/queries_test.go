//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"
	"github.com/steven-the-qa/coach-wire/tests/common/builder"
	queriesmock "github.com/steven-the-qa/coach-wire/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClassQueries(t *testing.T) {
	t.Run("GetByID translates store not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClassReadStore(ctrl)
		q := queries.NewClassQueries(store)

		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapErr("class not found", errors.New("no rows"), infra.KindNotFound))

		_, err := q.GetByID(context.Background(), id)
		require.ErrorIs(t, err, queries.ErrClassNotFound)
	})

	t.Run("List passes through upcoming classes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClassReadStore(ctrl)
		q := queries.NewClassQueries(store)

		items := []*queries.ClassListItem{builder.NewClassBuilder().BuildListItem()}
		store.EXPECT().FindUpcoming(gomock.Any()).Return(items, nil)

		got, err := q.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})
}

func TestBookingQueries(t *testing.T) {
	t.Run("GetByID returns the caller's own booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		view := builder.NewBookingBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(context.Background(), view.ClientID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("GetByID hides another client's booking behind not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		view := builder.NewBookingBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetByID(context.Background(), uuid.New(), view.ID)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("GetByID translates store not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapErr("booking not found", errors.New("no rows"), infra.KindNotFound))

		_, err := q.GetByID(context.Background(), uuid.New(), id)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}
