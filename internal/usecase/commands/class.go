package commands

import (
	"context"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/domain/class"
	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/infra/db"
	"github.com/steven-the-qa/coach-wire/internal/pkg/clock"
	"github.com/steven-the-qa/coach-wire/internal/pkg/errs"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"
	"github.com/steven-the-qa/coach-wire/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateClassParams struct {
	Name        string
	Description string
	StartTime   time.Time
	Duration    time.Duration
	Capacity    int32
	PriceCents  int64
}

type ClassCommands interface {
	// CreateClass publishes a new offering under the coach's gym.
	CreateClass(ctx context.Context, coachID uuid.UUID, params CreateClassParams) (*queries.ClassView, error)
}

type classUseCaseImpl struct {
	gymReads   GymReads
	classRepo  ClassRepository
	classStore queries.ClassReadStore
	txm        shared.TxManager
	clock      clock.Clock
}

func NewClassUseCase(
	gymReads GymReads,
	classRepo ClassRepository,
	classStore queries.ClassReadStore,
	txm shared.TxManager,
	clock clock.Clock,
) ClassCommands {
	return &classUseCaseImpl{
		gymReads:   gymReads,
		classRepo:  classRepo,
		classStore: classStore,
		txm:        txm,
		clock:      clock,
	}
}

func (u *classUseCaseImpl) CreateClass(ctx context.Context, coachID uuid.UUID, params CreateClassParams) (*queries.ClassView, error) {
	gymSnap, err := u.gymReads.FindByCoach(ctx, coachID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := u.toDomain(gymSnap.ID, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var classID uuid.UUID
	err = u.txm.Within(ctx, func(tx db.DBTX) error {
		id, txErr := u.classRepo.Create(ctx, tx, entity)
		if txErr != nil {
			return txErr
		}
		classID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.classStore.FindByID(ctx, classID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *classUseCaseImpl) toDomain(gymID uuid.UUID, params CreateClassParams) (*class.ClassOffering, error) {
	schedule, err := class.NewSchedule(params.StartTime, params.Duration, u.clock.Now())
	if err != nil {
		return nil, err
	}

	capacity, err := class.NewCapacity(params.Capacity)
	if err != nil {
		return nil, err
	}

	price, err := class.NewMoney(params.PriceCents)
	if err != nil {
		return nil, err
	}

	return class.NewClassOffering(gymID, params.Name, params.Description, schedule, capacity, price)
}
