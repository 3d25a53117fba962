package commands

import (
	"context"
	"log/slog"

	"chatorder/internal/pkg/config"
	"chatorder/internal/pkg/errs"
	"chatorder/internal/usecase/queries"
)

type RecommendMenuInput struct {
	Cuisine           string
	PrepTimeBreakfast string
	PrepTimeLunch     string
	PrepTimeDinner    string
	CookTimeBreakfast string
	CookTimeLunch     string
	CookTimeDinner    string
}

// MenuCommands is the sibling seller flow: menu planning and dish
// reengineering through the same agent collaborator.
type MenuCommands interface {
	Recommend(ctx context.Context, in RecommendMenuInput) (string, error)
	ReengineerDish(ctx context.Context, dishName, cuisine string) (DishSuggestion, error)
}

type menuUseCaseImpl struct {
	agent       AgentGateway
	ingredients queries.IngredientQueries
	agentCfg    config.AgentConfig
}

func NewMenuCommands(agent AgentGateway, ingredients queries.IngredientQueries, cfg config.Config) MenuCommands {
	return &menuUseCaseImpl{
		agent:       agent,
		ingredients: ingredients,
		agentCfg:    cfg.Agent,
	}
}

func (m *menuUseCaseImpl) Recommend(ctx context.Context, in RecommendMenuInput) (string, error) {
	req := MenuRequest{
		Cuisine:           in.Cuisine,
		PrepTimeBreakfast: in.PrepTimeBreakfast,
		PrepTimeLunch:     in.PrepTimeLunch,
		PrepTimeDinner:    in.PrepTimeDinner,
		CookTimeBreakfast: in.CookTimeBreakfast,
		CookTimeLunch:     in.CookTimeLunch,
		CookTimeDinner:    in.CookTimeDinner,
	}

	if views, err := m.ingredients.List(ctx); err != nil {
		slog.Warn("inventory unavailable for menu recommendation", "error", err)
	} else {
		req.Inventory = formatInventory(views)
	}

	callCtx, cancel := context.WithTimeout(ctx, m.agentCfg.Timeout)
	defer cancel()
	menu, err := m.agent.RecommendMenu(callCtx, req)
	if err != nil {
		return "", errs.Mark(err, errs.ErrAgentUnavailable)
	}
	return menu, nil
}

func (m *menuUseCaseImpl) ReengineerDish(ctx context.Context, dishName, cuisine string) (DishSuggestion, error) {
	callCtx, cancel := context.WithTimeout(ctx, m.agentCfg.Timeout)
	defer cancel()
	suggestion, err := m.agent.ReengineerDish(callCtx, dishName, cuisine)
	if err != nil {
		return DishSuggestion{}, errs.Mark(err, errs.ErrAgentUnavailable)
	}
	return suggestion, nil
}
