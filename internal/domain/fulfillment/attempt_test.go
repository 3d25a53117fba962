//go:build unit

package fulfillment_test

import (
	"testing"
	"time"

	"chatorder/internal/domain/fulfillment"
	"chatorder/internal/domain/order"
	"chatorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummary(t *testing.T) order.Summary {
	t.Helper()
	price, err := order.NewMoney(1200, "CAD")
	require.NoError(t, err)
	return order.Summary{DishName: "Pad Thai", Quantity: "2", Price: price}
}

func TestAttemptHappyPath(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	att := fulfillment.NewAttempt(uuid.New(), now)
	require.Equal(t, fulfillment.StateIdle, att.State())

	require.NoError(t, att.BeginSummarizing())
	require.NoError(t, att.SummaryReady(testSummary(t)))
	require.Equal(t, fulfillment.StateReadyToConfirm, att.State())
	require.NotNil(t, att.Summary())

	require.NoError(t, att.Confirm())
	require.NoError(t, att.CustomerCreated("cust-1"))
	require.NoError(t, att.OrderCreated("ord-1"))
	require.NoError(t, att.InvoiceSent("inv-1"))

	assert.Equal(t, fulfillment.StateInvoiceSent, att.State())
	assert.True(t, att.Terminal())
	rec := att.Record()
	assert.Equal(t, "cust-1", rec.CustomerID)
	assert.Equal(t, "ord-1", rec.OrderID)
	assert.Equal(t, "inv-1", rec.InvoiceID)
	assert.True(t, rec.InvoiceSent)
}

func TestAttemptInvalidTransitions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		run  func(att *fulfillment.Attempt) error
	}{
		{
			name: "summary before summarizing",
			run: func(att *fulfillment.Attempt) error {
				return att.SummaryReady(testSummary(t))
			},
		},
		{
			name: "confirm from idle",
			run: func(att *fulfillment.Attempt) error {
				return att.Confirm()
			},
		},
		{
			name: "customer created without confirm",
			run: func(att *fulfillment.Attempt) error {
				require.NoError(t, att.BeginSummarizing())
				require.NoError(t, att.SummaryReady(testSummary(t)))
				return att.CustomerCreated("cust-1")
			},
		},
		{
			name: "invoice before order",
			run: func(att *fulfillment.Attempt) error {
				require.NoError(t, att.BeginSummarizing())
				require.NoError(t, att.SummaryReady(testSummary(t)))
				require.NoError(t, att.Confirm())
				require.NoError(t, att.CustomerCreated("cust-1"))
				return att.InvoiceSent("inv-1")
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			att := fulfillment.NewAttempt(uuid.New(), now)
			err := tc.run(att)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		})
	}
}

func TestAttemptFail(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("identifiers survive a downstream failure", func(t *testing.T) {
		att := fulfillment.NewAttempt(uuid.New(), now)
		require.NoError(t, att.BeginSummarizing())
		require.NoError(t, att.SummaryReady(testSummary(t)))
		require.NoError(t, att.Confirm())
		require.NoError(t, att.CustomerCreated("cust-1"))

		stageErr := &fulfillment.StageError{Stage: fulfillment.StageCreateOrder, Err: errs.New("boom")}
		att.Fail(stageErr)

		assert.Equal(t, fulfillment.StateFailed, att.State())
		assert.True(t, att.Terminal())
		assert.Equal(t, "cust-1", att.Record().CustomerID)
		assert.Empty(t, att.Record().OrderID)
		assert.Equal(t, stageErr, att.Failure())
	})

	t.Run("fail after terminal is a no-op", func(t *testing.T) {
		att := fulfillment.NewAttempt(uuid.New(), now)
		require.NoError(t, att.BeginSummarizing())
		att.Fail(errs.New("first"))
		first := att.Failure()

		att.Fail(errs.New("second"))
		assert.Equal(t, first, att.Failure())
	})

	t.Run("summary accessor returns a copy", func(t *testing.T) {
		att := fulfillment.NewAttempt(uuid.New(), now)
		require.NoError(t, att.BeginSummarizing())
		require.NoError(t, att.SummaryReady(testSummary(t)))

		s := att.Summary()
		s.DishName = "mutated"
		assert.Equal(t, "Pad Thai", att.Summary().DishName)
	})
}
