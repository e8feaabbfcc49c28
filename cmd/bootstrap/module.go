package bootstrap

import (
	"quoteshare/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	CryptoModule,
	NotionModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
