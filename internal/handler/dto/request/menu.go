package request

import "chatorder/internal/usecase/commands"

type RecommendMenuRequest struct {
	Cuisine           string `json:"cuisine" binding:"required,max=50"`
	PrepTimeBreakfast string `json:"prep_time_breakfast" binding:"required"`
	PrepTimeLunch     string `json:"prep_time_lunch" binding:"required"`
	PrepTimeDinner    string `json:"prep_time_dinner" binding:"required"`
	CookTimeBreakfast string `json:"cook_time_breakfast" binding:"required"`
	CookTimeLunch     string `json:"cook_time_lunch" binding:"required"`
	CookTimeDinner    string `json:"cook_time_dinner" binding:"required"`
}

func (r *RecommendMenuRequest) ToInput() commands.RecommendMenuInput {
	return commands.RecommendMenuInput{
		Cuisine:           r.Cuisine,
		PrepTimeBreakfast: r.PrepTimeBreakfast,
		PrepTimeLunch:     r.PrepTimeLunch,
		PrepTimeDinner:    r.PrepTimeDinner,
		CookTimeBreakfast: r.CookTimeBreakfast,
		CookTimeLunch:     r.CookTimeLunch,
		CookTimeDinner:    r.CookTimeDinner,
	}
}

type ReengineerDishRequest struct {
	DishName string `json:"dish_name" binding:"required,max=100"`
	Cuisine  string `json:"cuisine" binding:"required,max=50"`
}
