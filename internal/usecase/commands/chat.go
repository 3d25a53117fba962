package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"chatorder/internal/domain/chat"
	"chatorder/internal/pkg/clock"
	"chatorder/internal/pkg/config"
	"chatorder/internal/pkg/errs"
	"chatorder/internal/usecase/queries"

	"github.com/google/uuid"
)

type TurnResult struct {
	Reply     string
	Concluded bool
}

type ChatCommands interface {
	StartSession(ctx context.Context) (uuid.UUID, error)
	// AppendTurn sends one customer message. When stop is set the literal
	// stop sentinel is sent regardless of the draft text.
	AppendTurn(ctx context.Context, sessionID uuid.UUID, draft string, stop bool) (*TurnResult, error)
	Transcript(ctx context.Context, sessionID uuid.UUID) ([]chat.Turn, error)
}

type chatUseCaseImpl struct {
	sessions    SessionStore
	agent       AgentGateway
	commerce    CommerceGateway
	ingredients queries.IngredientQueries
	clock       clock.Clock
	cfg         config.ChatConfig
	timeout     config.AgentConfig
}

func NewChatCommands(
	sessions SessionStore,
	agent AgentGateway,
	commerce CommerceGateway,
	ingredients queries.IngredientQueries,
	clock clock.Clock,
	cfg config.Config,
) ChatCommands {
	return &chatUseCaseImpl{
		sessions:    sessions,
		agent:       agent,
		commerce:    commerce,
		ingredients: ingredients,
		clock:       clock,
		cfg:         cfg.Chat,
		timeout:     cfg.Agent,
	}
}

func (c *chatUseCaseImpl) StartSession(ctx context.Context) (uuid.UUID, error) {
	sess := chat.NewSession(uuid.New(), c.clock.Now())
	if err := c.sessions.Create(ctx, sess); err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create chat session")
	}
	return sess.ID(), nil
}

func (c *chatUseCaseImpl) AppendTurn(ctx context.Context, sessionID uuid.UUID, draft string, stop bool) (*TurnResult, error) {
	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSessionNotFound)
	}

	text := draft
	if stop {
		text = chat.StopSentinel
	}
	if strings.TrimSpace(text) == "" {
		return nil, errs.New("empty message")
	}

	pctx := c.buildPromptContext(ctx, sess)

	callCtx, cancel := context.WithTimeout(ctx, c.timeout.Timeout)
	defer cancel()
	res, err := c.agent.Converse(callCtx, text, sess.HistoryToken(), pctx)
	if err != nil {
		// Session is deliberately left untouched: the token still reflects
		// the turns sent so far and a retry resends the same message.
		return nil, errs.Mark(err, errs.ErrAgentUnavailable)
	}

	sess.AppendTurn(text, res.Reply, res.HistoryToken, res.Concluded, c.clock.Now())
	if err := c.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Wrap(err, "failed to save chat session")
	}

	return &TurnResult{Reply: res.Reply, Concluded: res.Concluded}, nil
}

func (c *chatUseCaseImpl) Transcript(ctx context.Context, sessionID uuid.UUID) ([]chat.Turn, error) {
	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSessionNotFound)
	}
	return sess.Transcript(), nil
}

// buildPromptContext gathers the menu and inventory the agent answers from.
// Either source failing degrades the reply quality but must not block the
// turn, so failures are logged and the field stays empty.
func (c *chatUseCaseImpl) buildPromptContext(ctx context.Context, sess *chat.Session) PromptContext {
	var pctx PromptContext

	if items, err := c.commerce.ListCatalog(ctx); err != nil {
		slog.Warn("catalog unavailable for prompt context", "error", err)
	} else {
		pctx.Menu = formatCatalog(items)
	}

	if views, err := c.ingredients.List(ctx); err != nil {
		slog.Warn("inventory unavailable for prompt context", "error", err)
	} else {
		pctx.Inventory = formatInventory(views)
	}

	if sess.TurnCount() >= c.cfg.HistoryLimit {
		condensed, err := c.agent.SummarizeHistory(ctx, sess.Transcript())
		if err != nil {
			slog.Warn("history condensation failed, sending full token", "error", err)
		} else {
			pctx.CondensedHistory = condensed
		}
	}

	return pctx
}

func formatCatalog(items []CatalogItem) string {
	type entry struct {
		Name  string `json:"name"`
		Price string `json:"price,omitempty"`
	}
	entries := make([]entry, 0, len(items))
	for _, it := range items {
		e := entry{Name: it.Name}
		if it.Price != nil {
			e.Price = it.Price.String()
		}
		entries = append(entries, e)
	}
	b, _ := json.Marshal(entries)
	return string(b)
}

func formatInventory(views []queries.IngredientView) string {
	b, _ := json.Marshal(views)
	return string(b)
}
