//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/infra/db"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"
	"github.com/steven-the-qa/coach-wire/tests/common/builder"
	commandsmock "github.com/steven-the-qa/coach-wire/tests/mock/commands"
	queriesmock "github.com/steven-the-qa/coach-wire/tests/mock/queries"
	sharedmock "github.com/steven-the-qa/coach-wire/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	classReads   *commandsmock.MockClassReads
	bookingReads *commandsmock.MockBookingReads
	bookingRepo  *commandsmock.MockBookingRepository
	gateway      *commandsmock.MockPaymentGateway
	intents      *commandsmock.MockIntentStore
	alerts       *commandsmock.MockReversalAlerts
	bookingStore *queriesmock.MockBookingReadStore
	txm          *sharedmock.MockTxManager
	uc           commands.BookingCommands

	classID  uuid.UUID
	clientID uuid.UUID
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.classReads = commandsmock.NewMockClassReads(s.ctrl)
	s.bookingReads = commandsmock.NewMockBookingReads(s.ctrl)
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.intents = commandsmock.NewMockIntentStore(s.ctrl)
	s.alerts = commandsmock.NewMockReversalAlerts(s.ctrl)
	s.bookingStore = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.txm = sharedmock.NewMockTxManager(s.ctrl)

	s.uc = commands.NewBookingUseCase(
		s.classReads,
		s.bookingReads,
		s.bookingRepo,
		s.gateway,
		s.intents,
		s.alerts,
		s.bookingStore,
		s.txm,
		"usd",
	)

	s.classID = uuid.New()
	s.clientID = uuid.New()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func (s *BookingUseCaseTestSuite) availability(remaining int32) {
	snap := builder.NewClassBuilder().WithRemaining(remaining).BuildAvailability()
	snap.ClassID = s.classID
	s.classReads.EXPECT().Availability(gomock.Any(), s.classID).Return(snap, nil)
}

// passThroughTx makes the mock tx manager run the closure so the repository
// mock inside it actually fires.
func (s *BookingUseCaseTestSuite) passThroughTx() {
	s.txm.EXPECT().WithinRetry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(db.DBTX) error) error {
			return fn(nil)
		})
}

func (s *BookingUseCaseTestSuite) TestBookClass() {
	intent := &commands.PaymentIntent{ID: "pi_test_123", ClientSecret: "secret"}

	s.Run("success: charges, records and returns the booking view", func() {
		s.SetupTest()
		view := builder.NewBookingBuilder().
			WithClass(s.classID).WithClient(s.clientID).
			WithPaymentRef(intent.ID).BuildView()

		s.availability(3)
		s.bookingReads.EXPECT().HasConfirmed(gomock.Any(), s.classID, s.clientID).Return(false, nil)
		s.intents.EXPECT().Pending(gomock.Any(), s.clientID, s.classID).Return(nil, nil)
		s.gateway.EXPECT().CreateIntent(gomock.Any(), int64(2500), "usd", gomock.Any()).Return(intent, nil)
		s.intents.EXPECT().Save(gomock.Any(), s.clientID, s.classID, intent).Return(nil)
		s.gateway.EXPECT().AwaitConfirmation(gomock.Any(), intent.ID).Return(commands.DispositionAuthorized, nil)
		s.passThroughTx()
		s.bookingRepo.EXPECT().CreateConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).Return(view.ID, nil)
		s.bookingStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.intents.EXPECT().Clear(gomock.Any(), s.clientID, s.classID).Return(nil)

		got, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().NoError(err)
		s.Equal(view.ID, got.ID)
		s.Require().NotNil(got.PaymentRef)
		s.Equal(intent.ID, *got.PaymentRef)
	})

	s.Run("sold out: no charge is attempted", func() {
		s.SetupTest()
		s.availability(0)

		_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().ErrorIs(err, commands.ErrSoldOut)
	})

	s.Run("class not found", func() {
		s.SetupTest()
		s.classReads.EXPECT().Availability(gomock.Any(), s.classID).
			Return(nil, infra.WrapErr("class not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().ErrorIs(err, commands.ErrClassNotFound)
	})

	s.Run("duplicate booking refused before payment", func() {
		s.SetupTest()
		s.availability(3)
		s.bookingReads.EXPECT().HasConfirmed(gomock.Any(), s.classID, s.clientID).Return(true, nil)

		_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().ErrorIs(err, commands.ErrDuplicateBooking)
	})

	s.Run("zero price is rejected before the gateway is touched", func() {
		s.SetupTest()
		snap := builder.NewClassBuilder().WithPriceCents(0).BuildAvailability()
		snap.ClassID = s.classID
		s.classReads.EXPECT().Availability(gomock.Any(), s.classID).Return(snap, nil)
		s.bookingReads.EXPECT().HasConfirmed(gomock.Any(), s.classID, s.clientID).Return(false, nil)

		_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().ErrorIs(err, commands.ErrInvalidAmount)
	})

	s.Run("gateway outage surfaces as gateway unavailable", func() {
		s.SetupTest()
		s.availability(3)
		s.bookingReads.EXPECT().HasConfirmed(gomock.Any(), s.classID, s.clientID).Return(false, nil)
		s.intents.EXPECT().Pending(gomock.Any(), s.clientID, s.classID).Return(nil, nil)
		s.gateway.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapErr("stripe request failed", errors.New("connection refused"), infra.KindUnavailable))

		_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().ErrorIs(err, commands.ErrGatewayUnavailable)
	})

	s.Run("gateway rejects the amount as invalid", func() {
		s.SetupTest()
		s.availability(3)
		s.bookingReads.EXPECT().HasConfirmed(gomock.Any(), s.classID, s.clientID).Return(false, nil)
		s.intents.EXPECT().Pending(gomock.Any(), s.clientID, s.classID).Return(nil, nil)
		s.gateway.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapErr("invalid amount", errors.New("parameter_invalid_integer"), infra.KindInvalidArgument))

		_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().ErrorIs(err, commands.ErrInvalidAmount)
	})

	s.Run("pending intent is reused instead of charging twice", func() {
		s.SetupTest()
		view := builder.NewBookingBuilder().WithPaymentRef(intent.ID).BuildView()

		s.availability(3)
		s.bookingReads.EXPECT().HasConfirmed(gomock.Any(), s.classID, s.clientID).Return(false, nil)
		s.intents.EXPECT().Pending(gomock.Any(), s.clientID, s.classID).Return(intent, nil)
		// No CreateIntent, no Save.
		s.gateway.EXPECT().AwaitConfirmation(gomock.Any(), intent.ID).Return(commands.DispositionAuthorized, nil)
		s.passThroughTx()
		s.bookingRepo.EXPECT().CreateConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).Return(view.ID, nil)
		s.bookingStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.intents.EXPECT().Clear(gomock.Any(), s.clientID, s.classID).Return(nil)

		_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().NoError(err)
	})

	s.Run("declined payment clears the intent", func() {
		s.SetupTest()
		s.availability(3)
		s.bookingReads.EXPECT().HasConfirmed(gomock.Any(), s.classID, s.clientID).Return(false, nil)
		s.intents.EXPECT().Pending(gomock.Any(), s.clientID, s.classID).Return(intent, nil)
		s.gateway.EXPECT().AwaitConfirmation(gomock.Any(), intent.ID).Return(commands.DispositionDeclined, nil)
		s.intents.EXPECT().Clear(gomock.Any(), s.clientID, s.classID).Return(nil)

		_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().ErrorIs(err, commands.ErrPaymentDeclined)
	})

	s.Run("cancelled payment clears the intent", func() {
		s.SetupTest()
		s.availability(3)
		s.bookingReads.EXPECT().HasConfirmed(gomock.Any(), s.classID, s.clientID).Return(false, nil)
		s.intents.EXPECT().Pending(gomock.Any(), s.clientID, s.classID).Return(intent, nil)
		s.gateway.EXPECT().AwaitConfirmation(gomock.Any(), intent.ID).Return(commands.DispositionCancelled, nil)
		s.intents.EXPECT().Clear(gomock.Any(), s.clientID, s.classID).Return(nil)

		_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().ErrorIs(err, commands.ErrPaymentCancelled)
	})

	s.Run("abandoned confirmation keeps the intent for a retry", func() {
		s.SetupTest()
		s.availability(3)
		s.bookingReads.EXPECT().HasConfirmed(gomock.Any(), s.classID, s.clientID).Return(false, nil)
		s.intents.EXPECT().Pending(gomock.Any(), s.clientID, s.classID).Return(intent, nil)
		s.gateway.EXPECT().AwaitConfirmation(gomock.Any(), intent.ID).Return(commands.PaymentDisposition(""), context.DeadlineExceeded)
		// No Clear: the stored intent must survive for the next attempt.

		_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().ErrorIs(err, commands.ErrPaymentCancelled)
	})
}

func (s *BookingUseCaseTestSuite) TestBookClassReversal() {
	intent := &commands.PaymentIntent{ID: "pi_reversal_42", ClientSecret: "secret"}

	expectAuthorized := func() {
		s.availability(1)
		s.bookingReads.EXPECT().HasConfirmed(gomock.Any(), s.classID, s.clientID).Return(false, nil)
		s.intents.EXPECT().Pending(gomock.Any(), s.clientID, s.classID).Return(intent, nil)
		s.gateway.EXPECT().AwaitConfirmation(gomock.Any(), intent.ID).Return(commands.DispositionAuthorized, nil)
	}

	cases := []struct {
		name     string
		storeErr error
		causeIs  error
	}{
		{
			name:     "capacity exceeded at write time",
			storeErr: infra.WrapErr("class is full", errors.New("capacity check failed"), infra.KindConflict),
			causeIs:  commands.ErrCapacityExceeded,
		},
		{
			name:     "duplicate surfaced by the unique index",
			storeErr: infra.WrapErr("duplicate booking", errors.New("23505"), infra.KindDuplicateKey),
			causeIs:  commands.ErrDuplicateBooking,
		},
		{
			name:     "unclassified store failure",
			storeErr: infra.WrapErr("insert failed", errors.New("connection reset")),
			causeIs:  commands.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			expectAuthorized()
			s.passThroughTx()
			s.bookingRepo.EXPECT().CreateConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(uuid.Nil, tc.storeErr)
			s.alerts.EXPECT().PublishReversal(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, alert commands.ReversalAlert) error {
					s.Equal(intent.ID, alert.PaymentRef)
					s.Equal(s.classID, alert.ClassID)
					s.Equal(s.clientID, alert.ClientID)
					return nil
				})
			s.intents.EXPECT().Clear(gomock.Any(), s.clientID, s.classID).Return(nil)

			_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
			s.Require().ErrorIs(err, commands.ErrPaymentNeedsReversal)
			s.Require().ErrorIs(err, tc.causeIs)

			var revErr *commands.ReversalError
			s.Require().ErrorAs(err, &revErr)
			s.Equal(intent.ID, revErr.PaymentRef)
		})
	}

	s.Run("alert publish failure never masks the reversal", func() {
		s.SetupTest()
		expectAuthorized()
		s.passThroughTx()
		s.bookingRepo.EXPECT().CreateConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapErr("class is full", errors.New("capacity check failed"), infra.KindConflict))
		s.alerts.EXPECT().PublishReversal(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		s.intents.EXPECT().Clear(gomock.Any(), s.clientID, s.classID).Return(nil)

		_, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().ErrorIs(err, commands.ErrPaymentNeedsReversal)
	})

	s.Run("intent clear failure after success does not fail the booking", func() {
		s.SetupTest()
		view := builder.NewBookingBuilder().WithPaymentRef(intent.ID).BuildView()

		expectAuthorized()
		s.passThroughTx()
		s.bookingRepo.EXPECT().CreateConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).Return(view.ID, nil)
		s.bookingStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.intents.EXPECT().Clear(gomock.Any(), s.clientID, s.classID).Return(errors.New("redis down"))

		got, err := s.uc.BookClass(context.Background(), s.classID, s.clientID)
		s.Require().NoError(err)
		s.Equal(view.ID, got.ID)
	})
}
