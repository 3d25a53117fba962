package components

import (
	"chatorder/internal/handler"
	"chatorder/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewChatHandler,
		api.NewFulfillmentHandler,
		api.NewIngredientHandler,
		api.NewCatalogHandler,
		api.NewMenuHandler,
	),
	fx.Invoke(handler.NewRouter),
)
