package components

import (
	"laundromat-api/internal/handler"
	"laundromat-api/internal/handler/api"
	"laundromat-api/internal/handler/middleware"
	"laundromat-api/internal/infra/notify"
	"laundromat-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewContractHandler,
		api.NewAvailabilityHandler,
		api.NewBalanceHandler,
		NewNotificationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewNotificationHandler(registry *notify.Registry, cfg config.Config) *api.NotificationHandler {
	return api.NewNotificationHandler(registry, cfg.CORS)
}

func NewHandlers(
	contract *api.ContractHandler,
	availability *api.AvailabilityHandler,
	balance *api.BalanceHandler,
	notification *api.NotificationHandler,
) handler.Handlers {
	return handler.Handlers{
		Contract:     contract,
		Availability: availability,
		Balance:      balance,
		Notification: notification,
	}
}
