package response

import (
	"chatorder/internal/usecase/commands"
)

type MenuResponse struct {
	Menu string `json:"menu"`
}

type DishSuggestionResponse struct {
	DishName string        `json:"dish_name"`
	Price    MoneyResponse `json:"price"`
}

func FromDishSuggestion(s commands.DishSuggestion) *DishSuggestionResponse {
	return &DishSuggestionResponse{
		DishName: s.DishName,
		Price: MoneyResponse{
			Amount:   s.Price.Amount(),
			Currency: s.Price.Currency(),
		},
	}
}
