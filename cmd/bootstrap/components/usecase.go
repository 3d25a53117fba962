package components

import (
	"chatorder/internal/pkg/clock"
	"chatorder/internal/usecase/commands"
	"chatorder/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewChatCommands,
		commands.NewFulfillmentCommands,
		commands.NewIngredientCommands,
		commands.NewCatalogCommands,
		commands.NewMenuCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewIngredientQueries,
	),
)
