package bootstrap

import (
	"context"
	"log/slog"

	"laundromat-api/internal/pkg/config"
	"laundromat-api/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(ScheduleFinishSweep),
)

func NewScheduler(lc fx.Lifecycle) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return s.Shutdown()
		},
	})

	return s, nil
}

// ScheduleFinishSweep marks ongoing contracts whose session has ended as finished.
func ScheduleFinishSweep(s gocron.Scheduler, cfg config.Config, booking commands.BookingCommands, logger *slog.Logger) error {
	interval := cfg.Booking.FinishSweepInterval
	_, err := s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()

			n, err := booking.FinishElapsed(ctx)
			if err != nil {
				logger.Error("finish sweep failed", "error", err.Error())
				return
			}
			if n > 0 {
				logger.Info("finished elapsed contracts", "count", n)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	return err
}
