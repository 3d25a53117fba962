package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"chatorder/internal/domain/chat"
	"chatorder/internal/domain/order"
	"chatorder/internal/pkg/config"
	"chatorder/internal/usecase/commands"

	"google.golang.org/genai"
)

const (
	// concludedMarker is how the agent signals the end of the ordering
	// dialogue inside its reply text.
	concludedMarker = "stopping chat"

	stopReply = "STOPPING CHAT - Thank you for your order. Your order will be delivered in a few minutes. Have a nice day."
)

// VertexGateway implements the AI Agent Service collaborator on Vertex AI.
type VertexGateway struct {
	client    *genai.Client
	modelName string
}

func NewVertexGateway(ctx context.Context, cfg config.AgentConfig) (*VertexGateway, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  cfg.Project,
		Location: cfg.Location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}
	return &VertexGateway{client: client, modelName: cfg.Model}, nil
}

// The continuation token is minted here and is opaque above this gateway:
// a JSON-encoded list of prior exchanges.
type tokenTurn struct {
	Customer string `json:"customer"`
	Agent    string `json:"agent"`
}

func decodeToken(token string) []tokenTurn {
	if token == "" {
		return nil
	}
	var turns []tokenTurn
	if err := json.Unmarshal([]byte(token), &turns); err != nil {
		// A token we cannot read is treated as a fresh conversation rather
		// than an error; the caller never inspects it.
		return nil
	}
	return turns
}

func encodeToken(turns []tokenTurn) string {
	b, _ := json.Marshal(turns)
	return string(b)
}

func (g *VertexGateway) Converse(ctx context.Context, message, historyToken string, pctx commands.PromptContext) (commands.ConverseResult, error) {
	turns := decodeToken(historyToken)

	reply, concluded := shortCircuitReply(message)
	if !concluded {
		history := pctx.CondensedHistory
		if history == "" {
			b, _ := json.Marshal(turns)
			history = string(b)
		}
		prompt := buildConversePrompt(history, message, pctx.Menu, pctx.Inventory)

		text, err := g.generate(ctx, prompt)
		if err != nil {
			return commands.ConverseResult{}, err
		}
		reply = text
		concluded = strings.Contains(strings.ToLower(text), concludedMarker)
	}

	turns = append(turns, tokenTurn{Customer: message, Agent: reply})
	return commands.ConverseResult{
		Reply:        reply,
		HistoryToken: encodeToken(turns),
		Concluded:    concluded,
	}, nil
}

// shortCircuitReply reproduces the agent service's keyword handling: a turn
// carrying the stop keyword concludes the dialogue without a model call.
func shortCircuitReply(message string) (string, bool) {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "stop") {
		return stopReply, true
	}
	if strings.Contains(lower, "pay") {
		return "Please pay for your order.", true
	}
	return "", false
}

func (g *VertexGateway) SummarizeOrder(ctx context.Context, transcript []chat.Turn) (string, error) {
	prompt := fmt.Sprintf(summarizeOrderPrompt, formatTranscript(transcript))
	return g.generate(ctx, prompt)
}

func (g *VertexGateway) SummarizeHistory(ctx context.Context, transcript []chat.Turn) (string, error) {
	prompt := fmt.Sprintf(summarizeHistoryPrompt, formatTranscript(transcript))
	return g.generate(ctx, prompt)
}

func (g *VertexGateway) ReengineerDish(ctx context.Context, dishName, cuisine string) (commands.DishSuggestion, error) {
	prompt := fmt.Sprintf(reengineerDishPrompt, cuisine, dishName)
	text, err := g.generate(ctx, prompt)
	if err != nil {
		return commands.DishSuggestion{}, err
	}

	var out struct {
		DishName string `json:"dish_name"`
		Price    struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		} `json:"price"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &out); err != nil {
		return commands.DishSuggestion{}, fmt.Errorf("unusable dish suggestion %q: %w", text, err)
	}
	price, err := order.NewMoney(out.Price.Amount, out.Price.Currency)
	if err != nil {
		return commands.DishSuggestion{}, fmt.Errorf("unusable dish price: %w", err)
	}
	return commands.DishSuggestion{DishName: out.DishName, Price: price}, nil
}

func (g *VertexGateway) RecommendMenu(ctx context.Context, req commands.MenuRequest) (string, error) {
	inventory := req.Inventory
	if inventory == "" {
		inventory = "[]"
	}
	prompt := fmt.Sprintf(recommendMenuPrompt,
		req.Cuisine, inventory, req.Cuisine,
		req.PrepTimeBreakfast, req.PrepTimeLunch, req.PrepTimeDinner,
		req.CookTimeBreakfast, req.CookTimeLunch, req.CookTimeDinner,
	)
	return g.generate(ctx, prompt)
}

func (g *VertexGateway) generate(ctx context.Context, prompt string) (string, error) {
	temp := float32(0.3)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: 4000,
	}
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("vertex generate content: %w", err)
	}
	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("vertex returned empty text")
	}
	return text, nil
}

// Models occasionally wrap JSON answers in a markdown fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
