package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type IngredientView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	Unit          string    `json:"unit"`
	ShelfLifeDays int       `json:"shelf_life_days"`
	Type          string    `json:"ingredient_type"`
	SubType       string    `json:"ingredient_sub_type"`
	CreatedAt     time.Time `json:"-"`
}

type IngredientReadStore interface {
	List(ctx context.Context) ([]IngredientView, error)
	FindByName(ctx context.Context, name string) (*IngredientView, error)
}

type IngredientQueries interface {
	List(ctx context.Context) ([]IngredientView, error)
	GetByName(ctx context.Context, name string) (*IngredientView, error)
}

type ingredientQueriesImpl struct {
	store IngredientReadStore
}

func NewIngredientQueries(store IngredientReadStore) IngredientQueries {
	return &ingredientQueriesImpl{store: store}
}

func (q *ingredientQueriesImpl) List(ctx context.Context) ([]IngredientView, error) {
	return q.store.List(ctx)
}

func (q *ingredientQueriesImpl) GetByName(ctx context.Context, name string) (*IngredientView, error) {
	return q.store.FindByName(ctx, name)
}
