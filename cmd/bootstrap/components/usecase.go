package components

import (
	"github.com/steven-the-qa/coach-wire/internal/pkg/clock"
	"github.com/steven-the-qa/coach-wire/internal/pkg/config"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"
	"github.com/steven-the-qa/coach-wire/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewClassQueries,
		queries.NewBookingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBookingCommands,
		commands.NewClassUseCase,
	),
)

func NewBookingCommands(
	classReads commands.ClassReads,
	bookingReads commands.BookingReads,
	bookingRepo commands.BookingRepository,
	gateway commands.PaymentGateway,
	intents commands.IntentStore,
	alerts commands.ReversalAlerts,
	bookingStore queries.BookingReadStore,
	txm shared.TxManager,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingUseCase(
		classReads,
		bookingReads,
		bookingRepo,
		gateway,
		intents,
		alerts,
		bookingStore,
		txm,
		cfg.Stripe.Currency,
	)
}
