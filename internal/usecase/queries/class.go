package queries

import (
	"context"

	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrClassNotFound = errs.New("class not found")

type ClassQueries interface {
	List(ctx context.Context) ([]*ClassListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ClassView, error)
}

type ClassReadStore interface {
	FindUpcoming(ctx context.Context) ([]*ClassListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ClassView, error)
}

type classQueriesImpl struct {
	store ClassReadStore
}

func NewClassQueries(store ClassReadStore) ClassQueries {
	return &classQueriesImpl{store: store}
}

func (q *classQueriesImpl) List(ctx context.Context) ([]*ClassListItem, error) {
	return q.store.FindUpcoming(ctx)
}

func (q *classQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClassView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return view, nil
}
