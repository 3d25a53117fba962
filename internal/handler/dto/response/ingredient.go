package response

import (
	"chatorder/internal/usecase/queries"
)

type IngredientResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	Unit          string `json:"unit"`
	ShelfLifeDays int    `json:"shelf_life_days"`
	Type          string `json:"ingredient_type"`
	SubType       string `json:"ingredient_sub_type"`
}

func FromIngredientView(v *queries.IngredientView) *IngredientResponse {
	return &IngredientResponse{
		ID:            v.ID.String(),
		Name:          v.Name,
		Quantity:      v.Quantity,
		Unit:          v.Unit,
		ShelfLifeDays: v.ShelfLifeDays,
		Type:          v.Type,
		SubType:       v.SubType,
	}
}

func FromIngredientList(views []queries.IngredientView) []*IngredientResponse {
	res := make([]*IngredientResponse, len(views))
	for i := range views {
		res[i] = FromIngredientView(&views[i])
	}
	return res
}
