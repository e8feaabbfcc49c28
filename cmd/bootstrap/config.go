package bootstrap

import (
	"quoteshare/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.NotionConfig { return cfg.Notion },
		func(cfg config.Config) config.SyncConfig { return cfg.Sync },
	),
)
