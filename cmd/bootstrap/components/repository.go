package components

import (
	repo_impl "chatorder/internal/infra/repository"
	"chatorder/internal/usecase/commands"
	"chatorder/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewIngredientRepository,
			fx.As(new(commands.IngredientRepository)),
		),
		// Read side of the same table
		fx.Annotate(
			repo_impl.NewIngredientRepository,
			fx.As(new(queries.IngredientReadStore)),
		),
	),
)
