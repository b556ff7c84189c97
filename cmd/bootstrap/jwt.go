package bootstrap

import (
	"time"

	"laundromat-api/internal/handler/middleware"
	"laundromat-api/internal/pkg/config"
	"laundromat-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration)
}
