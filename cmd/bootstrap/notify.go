package bootstrap

import (
	"context"

	"laundromat-api/internal/infra/notify"
	"laundromat-api/internal/pkg/config"
	"laundromat-api/internal/usecase/commands"
	"laundromat-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewRegistry,
		NewKafkaPublisher,
		NewNotifier,
	),
	fx.Invoke(DrainNotifications),
)

func NewRegistry(lc fx.Lifecycle) *notify.Registry {
	registry := notify.NewRegistry()
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			registry.CloseAll()
			return nil
		},
	})
	return registry
}

func NewKafkaPublisher(lc fx.Lifecycle, cfg config.Config) *notify.KafkaPublisher {
	publisher := notify.NewKafkaPublisher(cfg.Kafka)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}

// NewNotifier delivers every event to live websockets and to Kafka.
func NewNotifier(registry *notify.Registry, publisher *notify.KafkaPublisher) shared.Notifier {
	return notify.NewFanout(registry, publisher)
}

// DrainNotifications waits for in-flight booking notifications on shutdown,
// before the Kafka writer and the websocket registry are closed.
func DrainNotifications(lc fx.Lifecycle, booking commands.BookingCommands) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return booking.WaitDeliveries(ctx)
		},
	})
}
