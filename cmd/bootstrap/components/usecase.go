package components

import (
	"laundromat-api/internal/domain/slot"
	"laundromat-api/internal/pkg/clock"
	"laundromat-api/internal/pkg/config"
	"laundromat-api/internal/usecase/commands"
	"laundromat-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCalendar,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLedgerUseCase,
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewContractQueries,
		queries.NewAvailabilityQueries,
		queries.NewLedgerQueries,
	),
)

func NewCalendar(cfg config.Config) (slot.Calendar, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return slot.Calendar{}, err
	}
	return slot.NewCalendar(loc), nil
}
