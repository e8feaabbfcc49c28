package bootstrap

import (
	"log/slog"
	"time"

	"quoteshare/internal/notion"
	"quoteshare/internal/pkg/config"

	"go.uber.org/fx"
)

var NotionModule = fx.Module("notion",
	fx.Provide(
		NewNotionClient,
		NewNotionLimiter,
		notion.NewFetcher,
		notion.NewUpdater,
	),
)

func NewNotionClient(cfg config.NotionConfig) *notion.Client {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		panic("invalid NOTION_TIMEOUT: " + err.Error())
	}
	return notion.NewClient(cfg.Version, timeout)
}

// NewNotionLimiter builds the process-wide limiter; all outbound Notion
// traffic shares this one pacing clock.
func NewNotionLimiter(logger *slog.Logger) *notion.Limiter {
	return notion.NewLimiter(notion.LimiterConfig{}, logger)
}
