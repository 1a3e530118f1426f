package components

import (
	"github.com/steven-the-qa/coach-wire/internal/infra/db"
	"github.com/steven-the-qa/coach-wire/internal/infra/readstore"
	"github.com/steven-the-qa/coach-wire/internal/infra/repository"
	"github.com/steven-the-qa/coach-wire/internal/infra/uow"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPgxTxManager,
	),
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Class
		fx.Annotate(
			readstore.NewClassReadStore,
			fx.As(new(queries.ClassReadStore)),
			fx.As(new(commands.ClassReads)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.BookingReads)),
		),
		// Gym
		fx.Annotate(
			readstore.NewGymReadStore,
			fx.As(new(commands.GymReads)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewClassRepository,
			fx.As(new(commands.ClassRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
