//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/domain/class"
	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/infra/db"
	"github.com/steven-the-qa/coach-wire/internal/pkg/clock"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"
	"github.com/steven-the-qa/coach-wire/internal/usecase/shared"
	"github.com/steven-the-qa/coach-wire/tests/common/builder"
	commandsmock "github.com/steven-the-qa/coach-wire/tests/mock/commands"
	queriesmock "github.com/steven-the-qa/coach-wire/tests/mock/queries"
	sharedmock "github.com/steven-the-qa/coach-wire/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClassUseCaseTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	gymReads   *commandsmock.MockGymReads
	classRepo  *commandsmock.MockClassRepository
	classStore *queriesmock.MockClassReadStore
	txm        *sharedmock.MockTxManager
	clock      *clock.MockClock
	uc         commands.ClassCommands

	coachID uuid.UUID
	gym     *shared.GymSnapshot
}

func (s *ClassUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gymReads = commandsmock.NewMockGymReads(s.ctrl)
	s.classRepo = commandsmock.NewMockClassRepository(s.ctrl)
	s.classStore = queriesmock.NewMockClassReadStore(s.ctrl)
	s.txm = sharedmock.NewMockTxManager(s.ctrl)
	s.clock = clock.NewMockClock(time.Now())

	s.uc = commands.NewClassUseCase(s.gymReads, s.classRepo, s.classStore, s.txm, s.clock)

	s.coachID = uuid.New()
	s.gym = &shared.GymSnapshot{ID: uuid.New(), CoachID: s.coachID, Name: "Test Gym"}
}

func TestClassUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ClassUseCaseTestSuite))
}

func (s *ClassUseCaseTestSuite) TestCreateClass() {
	s.Run("success: persists under the coach's gym and returns the view", func() {
		s.SetupTest()
		b := builder.NewClassBuilder()
		view := b.BuildView()

		s.gymReads.EXPECT().FindByCoach(gomock.Any(), s.coachID).Return(s.gym, nil)
		s.txm.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fn func(db.DBTX) error) error {
				return fn(nil)
			})
		s.classRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.DBTX, c *class.ClassOffering) (uuid.UUID, error) {
				s.Equal(s.gym.ID, c.GymID())
				s.Equal(b.Name, c.Name())
				return view.ID, nil
			})
		s.classStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.uc.CreateClass(context.Background(), s.coachID, b.BuildCreateParams())
		s.Require().NoError(err)
		s.Equal(view.ID, got.ID)
	})

	s.Run("coach without a gym cannot publish", func() {
		s.SetupTest()
		s.gymReads.EXPECT().FindByCoach(gomock.Any(), s.coachID).
			Return(nil, infra.WrapErr("gym not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.uc.CreateClass(context.Background(), s.coachID, builder.NewClassBuilder().BuildCreateParams())
		s.Require().ErrorIs(err, commands.ErrGymNotFound)
	})

	s.Run("domain validation failures", func() {
		invalid := []struct {
			name   string
			mutate func(*builder.ClassBuilder)
		}{
			{"past start time", func(b *builder.ClassBuilder) { b.WithStartTime(s.clock.Now().Add(-time.Hour)) }},
			{"zero duration", func(b *builder.ClassBuilder) { b.WithDuration(0) }},
			{"negative capacity", func(b *builder.ClassBuilder) { b.WithCapacity(-1) }},
			{"negative price", func(b *builder.ClassBuilder) { b.WithPriceCents(-100) }},
			{"blank name", func(b *builder.ClassBuilder) { b.WithName("   ") }},
		}

		for _, tc := range invalid {
			s.Run(tc.name, func() {
				s.SetupTest()
				b := builder.NewClassBuilder().With(tc.mutate)

				s.gymReads.EXPECT().FindByCoach(gomock.Any(), s.coachID).Return(s.gym, nil)

				_, err := s.uc.CreateClass(context.Background(), s.coachID, b.BuildCreateParams())
				s.Require().ErrorIs(err, commands.ErrDomainValidation)
			})
		}
	})

	s.Run("insert failure surfaces as database operation failed", func() {
		s.SetupTest()
		s.gymReads.EXPECT().FindByCoach(gomock.Any(), s.coachID).Return(s.gym, nil)
		s.txm.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := s.uc.CreateClass(context.Background(), s.coachID, builder.NewClassBuilder().BuildCreateParams())
		s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}
