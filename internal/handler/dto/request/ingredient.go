package request

import "chatorder/internal/usecase/commands"

type CreateIngredientRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Quantity      int    `json:"quantity" binding:"min=0"`
	Unit          string `json:"unit" binding:"required,max=20"`
	ShelfLifeDays int    `json:"shelf_life_days" binding:"min=0"`
	Type          string `json:"ingredient_type" binding:"max=50"`
	SubType       string `json:"ingredient_sub_type" binding:"max=50"`
}

func (r *CreateIngredientRequest) ToInput() commands.CreateIngredientInput {
	return commands.CreateIngredientInput{
		Name:          r.Name,
		Quantity:      r.Quantity,
		Unit:          r.Unit,
		ShelfLifeDays: r.ShelfLifeDays,
		Type:          r.Type,
		SubType:       r.SubType,
	}
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

type UpdateShelfLifeRequest struct {
	ShelfLifeDays int `json:"shelf_life_days" binding:"min=0"`
}
