package components

import (
	"quoteshare/internal/handler"
	"quoteshare/internal/handler/api"
	"quoteshare/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewQuoteHandler,
		api.NewShareHandler,
		api.NewSettingsHandler,
		api.NewSyncHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	quote *api.QuoteHandler,
	share *api.ShareHandler,
	settings *api.SettingsHandler,
	sync *api.SyncHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Quote:    quote,
		Share:    share,
		Settings: settings,
		Sync:     sync,
	}
}
