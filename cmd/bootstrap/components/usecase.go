package components

import (
	"quoteshare/internal/notion"
	"quoteshare/internal/pkg/clock"
	"quoteshare/internal/pkg/crypto"
	"quoteshare/internal/usecase"
	"quoteshare/internal/usecase/commands"
	"quoteshare/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(f *notion.Fetcher) commands.PageFetcher { return f },
	func(u *notion.Updater) commands.StatusWriter { return u },
	func(c *crypto.Cipher) commands.Cipher { return c },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewSyncCommands,
		commands.NewSettingsCommands,
		commands.NewQuoteCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewQuoteQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
