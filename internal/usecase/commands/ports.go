package commands

import (
	"context"

	"chatorder/internal/domain/chat"
	"chatorder/internal/domain/fulfillment"
	"chatorder/internal/domain/ingredient"
	"chatorder/internal/domain/order"

	"github.com/google/uuid"
)

// Collaborator ports are declared here, next to the commands that consume
// them. Implementations live under internal/infra.

type SessionStore interface {
	Create(ctx context.Context, s *chat.Session) error
	Get(ctx context.Context, id uuid.UUID) (*chat.Session, error)
	Save(ctx context.Context, s *chat.Session) error
}

// PromptContext is the side information the agent needs to answer a turn:
// the current menu, the kitchen inventory, and (when the transcript grew past
// the history limit) a condensed form of the earlier conversation.
type PromptContext struct {
	Menu             string
	Inventory        string
	CondensedHistory string
}

type ConverseResult struct {
	Reply string
	// HistoryToken is the continuation value to thread into the next turn,
	// opaque to everything above the gateway.
	HistoryToken string
	// Concluded is set when the agent ended the ordering dialogue.
	Concluded bool
}

type DishSuggestion struct {
	DishName string
	Price    order.Money
}

type MenuRequest struct {
	Cuisine           string
	PrepTimeBreakfast string
	PrepTimeLunch     string
	PrepTimeDinner    string
	CookTimeBreakfast string
	CookTimeLunch     string
	CookTimeDinner    string
	Inventory         string
}

// AgentGateway is the AI Agent Service collaborator.
type AgentGateway interface {
	Converse(ctx context.Context, message, historyToken string, pctx PromptContext) (ConverseResult, error)
	SummarizeOrder(ctx context.Context, transcript []chat.Turn) (string, error)
	SummarizeHistory(ctx context.Context, transcript []chat.Turn) (string, error)
	ReengineerDish(ctx context.Context, dishName, cuisine string) (DishSuggestion, error)
	RecommendMenu(ctx context.Context, req MenuRequest) (string, error)
}

type CatalogItem struct {
	ID    string
	Name  string
	Price *order.Money
}

// CommerceGateway is the commerce platform collaborator. The three creation
// calls each return the opaque identifier the next call needs.
type CommerceGateway interface {
	CreateCustomer(ctx context.Context, intake fulfillment.CustomerIntake) (customerID string, err error)
	CreateOrder(ctx context.Context, summary order.Summary, customerID string) (orderID string, err error)
	CreateInvoice(ctx context.Context, orderID, customerID string) (invoiceID string, err error)
	ListCatalog(ctx context.Context) ([]CatalogItem, error)
	UpsertCatalogItem(ctx context.Context, name string, price order.Money) (CatalogItem, error)
}

type IngredientRepository interface {
	Create(ctx context.Context, ing *ingredient.Ingredient) error
	Update(ctx context.Context, ing *ingredient.Ingredient) error
	UpdateQuantity(ctx context.Context, name string, quantity int) error
	UpdateShelfLife(ctx context.Context, name string, days int) error
	Delete(ctx context.Context, name string) error
}
