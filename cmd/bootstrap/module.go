package bootstrap

import (
	"laundromat-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	NotifyModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
