package components

import (
	"laundromat-api/internal/infra/db"
	"laundromat-api/internal/infra/readstore"
	"laundromat-api/internal/infra/uow"
	"laundromat-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Contract
		fx.Annotate(
			readstore.NewContractReadStore,
			fx.As(new(queries.ContractReadStore)),
		),
		// Availability
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		// Ledger
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
	),
)

// Write-side repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
