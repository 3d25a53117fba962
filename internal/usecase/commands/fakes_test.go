//go:build unit

package commands_test

import (
	"context"
	"sync"

	"chatorder/internal/domain/chat"
	"chatorder/internal/domain/fulfillment"
	"chatorder/internal/domain/order"
	"chatorder/internal/pkg/errs"
	"chatorder/internal/usecase/commands"
	"chatorder/internal/usecase/queries"

	"github.com/google/uuid"
)

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*chat.Session
	saveErr  error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[uuid.UUID]*chat.Session)}
}

func (s *fakeSessionStore) Create(_ context.Context, sess *chat.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID()] = sess
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, id uuid.UUID) (*chat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	return sess, nil
}

func (s *fakeSessionStore) Save(_ context.Context, sess *chat.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID()] = sess
	return nil
}

type converseCall struct {
	Message      string
	HistoryToken string
	PromptCtx    commands.PromptContext
}

type fakeAgent struct {
	converseResult    commands.ConverseResult
	converseErr       error
	converseCalls     []converseCall
	summarizeOrderRes string
	summarizeOrderErr error
	summarizeCalls    int
	summarizeSeen     []chat.Turn
	historySummary    string
	historyErr        error
	historyCalls      int
	suggestion        commands.DishSuggestion
	suggestionErr     error
	menu              string
	menuErr           error
}

func (a *fakeAgent) Converse(_ context.Context, message, historyToken string, pctx commands.PromptContext) (commands.ConverseResult, error) {
	a.converseCalls = append(a.converseCalls, converseCall{Message: message, HistoryToken: historyToken, PromptCtx: pctx})
	if a.converseErr != nil {
		return commands.ConverseResult{}, a.converseErr
	}
	return a.converseResult, nil
}

func (a *fakeAgent) SummarizeOrder(_ context.Context, transcript []chat.Turn) (string, error) {
	a.summarizeCalls++
	a.summarizeSeen = append([]chat.Turn(nil), transcript...)
	if a.summarizeOrderErr != nil {
		return "", a.summarizeOrderErr
	}
	return a.summarizeOrderRes, nil
}

func (a *fakeAgent) SummarizeHistory(_ context.Context, _ []chat.Turn) (string, error) {
	a.historyCalls++
	if a.historyErr != nil {
		return "", a.historyErr
	}
	return a.historySummary, nil
}

func (a *fakeAgent) ReengineerDish(_ context.Context, _, _ string) (commands.DishSuggestion, error) {
	if a.suggestionErr != nil {
		return commands.DishSuggestion{}, a.suggestionErr
	}
	return a.suggestion, nil
}

func (a *fakeAgent) RecommendMenu(_ context.Context, _ commands.MenuRequest) (string, error) {
	if a.menuErr != nil {
		return "", a.menuErr
	}
	return a.menu, nil
}

type fakeCommerce struct {
	mu    sync.Mutex
	calls []string

	customerID  string
	customerErr error
	intakeSeen  fulfillment.CustomerIntake
	// customerEntered receives one value per CreateCustomer entry when set;
	// customerGate, when set, blocks CreateCustomer until it is closed.
	customerEntered chan struct{}
	customerGate    chan struct{}

	orderID       string
	orderErr      error
	orderSummary  order.Summary
	orderCustomer string

	invoiceID  string
	invoiceErr error

	catalog    []commands.CatalogItem
	catalogErr error

	upserted   commands.CatalogItem
	upsertErr  error
	upsertName string
}

func (c *fakeCommerce) CreateCustomer(_ context.Context, intake fulfillment.CustomerIntake) (string, error) {
	c.mu.Lock()
	c.calls = append(c.calls, "create_customer")
	c.intakeSeen = intake
	entered, gate := c.customerEntered, c.customerGate
	c.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	if c.customerErr != nil {
		return "", c.customerErr
	}
	return c.customerID, nil
}

func (c *fakeCommerce) CreateOrder(_ context.Context, summary order.Summary, customerID string) (string, error) {
	c.mu.Lock()
	c.calls = append(c.calls, "create_order")
	c.orderSummary = summary
	c.orderCustomer = customerID
	c.mu.Unlock()
	if c.orderErr != nil {
		return "", c.orderErr
	}
	return c.orderID, nil
}

func (c *fakeCommerce) CreateInvoice(_ context.Context, _, _ string) (string, error) {
	c.mu.Lock()
	c.calls = append(c.calls, "create_invoice")
	c.mu.Unlock()
	if c.invoiceErr != nil {
		return "", c.invoiceErr
	}
	return c.invoiceID, nil
}

func (c *fakeCommerce) ListCatalog(_ context.Context) ([]commands.CatalogItem, error) {
	if c.catalogErr != nil {
		return nil, c.catalogErr
	}
	return c.catalog, nil
}

func (c *fakeCommerce) UpsertCatalogItem(_ context.Context, name string, _ order.Money) (commands.CatalogItem, error) {
	c.upsertName = name
	if c.upsertErr != nil {
		return commands.CatalogItem{}, c.upsertErr
	}
	return c.upserted, nil
}

type fakeIngredientQueries struct {
	views   []queries.IngredientView
	listErr error
}

func (q *fakeIngredientQueries) List(_ context.Context) ([]queries.IngredientView, error) {
	if q.listErr != nil {
		return nil, q.listErr
	}
	return q.views, nil
}

func (q *fakeIngredientQueries) GetByName(_ context.Context, name string) (*queries.IngredientView, error) {
	for i := range q.views {
		if q.views[i].Name == name {
			return &q.views[i], nil
		}
	}
	return nil, errs.ErrIngredientNotFound
}
