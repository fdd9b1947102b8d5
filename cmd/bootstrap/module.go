package bootstrap

import (
	"loyaltybot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	SessionModule,
	BotModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
