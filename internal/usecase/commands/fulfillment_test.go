//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"chatorder/internal/domain/fulfillment"
	"chatorder/internal/pkg/clock"
	"chatorder/internal/pkg/config"
	"chatorder/internal/pkg/errs"
	"chatorder/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const padThaiPayload = `{"order": [{"name": "Pad Thai", "quantity": "2", "base_price_money": {"amount": 1200, "currency": "CAD"}}]}`

func encodedSummary(t *testing.T, payload string) string {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(b)
}

type fulfillmentFixture struct {
	store *fakeSessionStore
	agent *fakeAgent
	comm  *fakeCommerce
	chat  commands.ChatCommands
	cmds  commands.FulfillmentCommands
}

func newFulfillmentFixture(t *testing.T) *fulfillmentFixture {
	t.Helper()
	cfg := config.NewTestConfig()
	store := newFakeSessionStore()
	agent := &fakeAgent{
		converseResult:    commands.ConverseResult{Reply: "noted", HistoryToken: "tok-1"},
		summarizeOrderRes: encodedSummary(t, padThaiPayload),
	}
	comm := &fakeCommerce{
		customerID: "cust-1",
		orderID:    "ord-1",
		invoiceID:  "inv-1",
	}
	mockClock := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return &fulfillmentFixture{
		store: store,
		agent: agent,
		comm:  comm,
		chat:  commands.NewChatCommands(store, agent, comm, &fakeIngredientQueries{}, mockClock, cfg),
		cmds:  commands.NewFulfillmentCommands(store, agent, comm, mockClock, cfg),
	}
}

// startConversation creates a session with one completed turn so fulfillment
// has a transcript to work with.
func (f *fulfillmentFixture) startConversation(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := f.chat.StartSession(context.Background())
	require.NoError(t, err)
	_, err = f.chat.AppendTurn(context.Background(), id, "pad thai please", false)
	require.NoError(t, err)
	return id
}

func TestFulfillmentBegin(t *testing.T) {
	t.Run("summarizes and parses the order", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := f.startConversation(t)

		sum, err := f.cmds.Begin(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Pad Thai", sum.DishName)
		assert.Equal(t, "2", sum.Quantity)
		assert.Equal(t, int64(1200), sum.Price.Amount())

		view, err := f.cmds.State(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, fulfillment.StateReadyToConfirm, view.State)
	})

	t.Run("empty transcript is rejected", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id, err := f.chat.StartSession(context.Background())
		require.NoError(t, err)

		_, err = f.cmds.Begin(context.Background(), id)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrEmptyTranscript))
		assert.Zero(t, f.agent.summarizeCalls)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		_, err := f.cmds.Begin(context.Background(), uuid.New())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound))
	})

	t.Run("agent failure fails the summarize stage", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := f.startConversation(t)
		f.agent.summarizeOrderErr = errs.New("model down")

		_, err := f.cmds.Begin(context.Background(), id)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAgentUnavailable))

		view, err := f.cmds.State(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, fulfillment.StateFailed, view.State)
		assert.Equal(t, fulfillment.StageSummarize, view.FailedStage)
	})

	t.Run("malformed summary fails before any commerce call", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := f.startConversation(t)
		f.agent.summarizeOrderRes = `"utter nonsense"`
		f.comm.calls = nil

		_, err := f.cmds.Begin(context.Background(), id)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrMalformedSummary))
		assert.Empty(t, f.comm.calls)

		view, err := f.cmds.State(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, fulfillment.StateFailed, view.State)
	})

	t.Run("second begin while active is rejected", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := f.startConversation(t)

		_, err := f.cmds.Begin(context.Background(), id)
		require.NoError(t, err)

		_, err = f.cmds.Begin(context.Background(), id)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConcurrentFulfillment))
	})

	t.Run("summarize receives the full transcript in order", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id, err := f.chat.StartSession(context.Background())
		require.NoError(t, err)
		for _, msg := range []string{"pad thai please", "make it spicy", "that is all"} {
			_, err = f.chat.AppendTurn(context.Background(), id, msg, false)
			require.NoError(t, err)
		}

		_, err = f.cmds.Begin(context.Background(), id)
		require.NoError(t, err)

		require.Len(t, f.agent.summarizeSeen, 3)
		assert.Equal(t, "pad thai please", f.agent.summarizeSeen[0].Customer)
		assert.Equal(t, "make it spicy", f.agent.summarizeSeen[1].Customer)
		assert.Equal(t, "that is all", f.agent.summarizeSeen[2].Customer)
	})

	t.Run("begin is allowed again after a failed attempt", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := f.startConversation(t)
		f.agent.summarizeOrderErr = errs.New("model down")
		_, err := f.cmds.Begin(context.Background(), id)
		require.Error(t, err)

		f.agent.summarizeOrderErr = nil
		_, err = f.cmds.Begin(context.Background(), id)
		require.NoError(t, err)
	})
}

func TestFulfillmentSubmitCustomer(t *testing.T) {
	begin := func(t *testing.T, f *fulfillmentFixture) uuid.UUID {
		t.Helper()
		id := f.startConversation(t)
		_, err := f.cmds.Begin(context.Background(), id)
		require.NoError(t, err)
		require.NoError(t, f.cmds.Confirm(context.Background(), id))
		return id
	}

	t.Run("runs the three commerce calls in order", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := begin(t, f)

		view, err := f.cmds.SubmitCustomer(context.Background(), id, "Ada", "Lovelace", "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, fulfillment.StateInvoiceSent, view.State)
		assert.Equal(t, "cust-1", view.Record.CustomerID)
		assert.Equal(t, "ord-1", view.Record.OrderID)
		assert.Equal(t, "inv-1", view.Record.InvoiceID)
		assert.True(t, view.Record.InvoiceSent)

		assert.Equal(t, []string{"create_customer", "create_order", "create_invoice"}, f.comm.calls)
		assert.Equal(t, "cust-1", f.comm.orderCustomer)
		assert.Equal(t, "Pad Thai", f.comm.orderSummary.DishName)
	})

	t.Run("intake combines operator fields with fixed defaults", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := begin(t, f)

		_, err := f.cmds.SubmitCustomer(context.Background(), id, "Ada", "Lovelace", "ada@example.com")
		require.NoError(t, err)

		intake := f.comm.intakeSeen
		assert.Equal(t, "Ada", intake.FirstName)
		assert.Equal(t, "Lovelace", intake.LastName)
		assert.Equal(t, "ada@example.com", intake.Email)
		assert.Equal(t, "5145832589", intake.PhoneNumber)
		assert.Equal(t, "11 - 3795", intake.AddressLine1)
		assert.Equal(t, "H3T 1H", intake.PostalCode)
		assert.Equal(t, "CA", intake.Country)
		assert.Equal(t, "1992-02-19", intake.Birthday)
	})

	t.Run("second submission while one is in flight is rejected", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := begin(t, f)
		f.comm.calls = nil
		f.comm.customerEntered = make(chan struct{}, 1)
		f.comm.customerGate = make(chan struct{})

		firstDone := make(chan error, 1)
		go func() {
			_, err := f.cmds.SubmitCustomer(context.Background(), id, "Ada", "Lovelace", "ada@example.com")
			firstDone <- err
		}()
		<-f.comm.customerEntered

		_, err := f.cmds.SubmitCustomer(context.Background(), id, "Grace", "Hopper", "grace@example.com")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConcurrentFulfillment))

		close(f.comm.customerGate)
		require.NoError(t, <-firstDone)

		customerCalls := 0
		for _, call := range f.comm.calls {
			if call == "create_customer" {
				customerCalls++
			}
		}
		assert.Equal(t, 1, customerCalls)
	})

	t.Run("confirm while a submission is in flight is rejected", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := begin(t, f)
		f.comm.customerEntered = make(chan struct{}, 1)
		f.comm.customerGate = make(chan struct{})

		firstDone := make(chan error, 1)
		go func() {
			_, err := f.cmds.SubmitCustomer(context.Background(), id, "Ada", "Lovelace", "ada@example.com")
			firstDone <- err
		}()
		<-f.comm.customerEntered

		err := f.cmds.Confirm(context.Background(), id)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConcurrentFulfillment))

		close(f.comm.customerGate)
		require.NoError(t, <-firstDone)
	})

	t.Run("submit without confirm is rejected", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := f.startConversation(t)
		_, err := f.cmds.Begin(context.Background(), id)
		require.NoError(t, err)

		_, err = f.cmds.SubmitCustomer(context.Background(), id, "Ada", "Lovelace", "ada@example.com")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("customer creation failure stops the sequence", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := begin(t, f)
		f.comm.calls = nil
		f.comm.customerErr = errs.New("platform rejected customer")

		_, err := f.cmds.SubmitCustomer(context.Background(), id, "Ada", "Lovelace", "ada@example.com")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCommerceCallFailed))
		assert.Equal(t, []string{"create_customer"}, f.comm.calls)

		view, err := f.cmds.State(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, fulfillment.StateFailed, view.State)
		assert.Equal(t, fulfillment.StageCreateCustomer, view.FailedStage)
		assert.Empty(t, view.Record.CustomerID)
	})

	t.Run("order creation failure keeps the customer id", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := begin(t, f)
		f.comm.calls = nil
		f.comm.orderErr = errs.New("platform rejected order")

		_, err := f.cmds.SubmitCustomer(context.Background(), id, "Ada", "Lovelace", "ada@example.com")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCommerceCallFailed))
		assert.Equal(t, []string{"create_customer", "create_order"}, f.comm.calls)

		view, err := f.cmds.State(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, fulfillment.StateFailed, view.State)
		assert.Equal(t, fulfillment.StageCreateOrder, view.FailedStage)
		assert.Equal(t, "cust-1", view.Record.CustomerID)
		assert.Empty(t, view.Record.OrderID)
	})

	t.Run("invoice failure keeps customer and order ids", func(t *testing.T) {
		f := newFulfillmentFixture(t)
		id := begin(t, f)
		f.comm.invoiceErr = errs.New("invoice service down")

		_, err := f.cmds.SubmitCustomer(context.Background(), id, "Ada", "Lovelace", "ada@example.com")
		require.Error(t, err)

		view, err := f.cmds.State(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, fulfillment.StageCreateInvoice, view.FailedStage)
		assert.Equal(t, "cust-1", view.Record.CustomerID)
		assert.Equal(t, "ord-1", view.Record.OrderID)
		assert.False(t, view.Record.InvoiceSent)
	})
}

func TestFulfillmentState(t *testing.T) {
	f := newFulfillmentFixture(t)
	_, err := f.cmds.State(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNoActiveFulfillment))
}
