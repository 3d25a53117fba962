package commands

import (
	"context"

	"chatorder/internal/domain/ingredient"
	"chatorder/internal/pkg/clock"
	"chatorder/internal/pkg/errs"
)

type CreateIngredientInput struct {
	Name          string
	Quantity      int
	Unit          string
	ShelfLifeDays int
	Type          string
	SubType       string
}

type IngredientCommands interface {
	Create(ctx context.Context, in CreateIngredientInput) error
	Update(ctx context.Context, in CreateIngredientInput) error
	UpdateQuantity(ctx context.Context, name string, quantity int) error
	UpdateShelfLife(ctx context.Context, name string, days int) error
	Delete(ctx context.Context, name string) error
}

type ingredientUseCaseImpl struct {
	repo  IngredientRepository
	clock clock.Clock
}

func NewIngredientCommands(repo IngredientRepository, clock clock.Clock) IngredientCommands {
	return &ingredientUseCaseImpl{repo: repo, clock: clock}
}

func (i *ingredientUseCaseImpl) Create(ctx context.Context, in CreateIngredientInput) error {
	ing, err := ingredient.New(in.Name, in.Quantity, in.Unit, in.ShelfLifeDays, in.Type, in.SubType, i.clock.Now())
	if err != nil {
		return err
	}
	return i.repo.Create(ctx, ing)
}

func (i *ingredientUseCaseImpl) Update(ctx context.Context, in CreateIngredientInput) error {
	ing, err := ingredient.New(in.Name, in.Quantity, in.Unit, in.ShelfLifeDays, in.Type, in.SubType, i.clock.Now())
	if err != nil {
		return err
	}
	return i.repo.Update(ctx, ing)
}

func (i *ingredientUseCaseImpl) UpdateQuantity(ctx context.Context, name string, quantity int) error {
	if quantity < 0 {
		return errs.New("quantity cannot be negative")
	}
	return i.repo.UpdateQuantity(ctx, name, quantity)
}

func (i *ingredientUseCaseImpl) UpdateShelfLife(ctx context.Context, name string, days int) error {
	if days < 0 {
		return errs.New("shelf life cannot be negative")
	}
	return i.repo.UpdateShelfLife(ctx, name, days)
}

func (i *ingredientUseCaseImpl) Delete(ctx context.Context, name string) error {
	return i.repo.Delete(ctx, name)
}
