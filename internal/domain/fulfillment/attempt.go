package fulfillment

import (
	"fmt"
	"time"

	"chatorder/internal/domain/order"
	"chatorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// One fulfillment attempt walks a fixed state machine. Commerce calls are
// strictly sequential because each call's output is a mandatory input to the
// next; the record is built forward-only and never rolled back on partial
// failure (the operator is shown which upstream records already exist).

type State string

const (
	StateIdle               State = "idle"
	StateSummarizing        State = "summarizing"
	StateReadyToConfirm     State = "ready_to_confirm"
	StateCollectingCustomer State = "collecting_customer"
	StateCustomerCreated    State = "customer_created"
	StateOrderCreated       State = "order_created"
	StateInvoiceSent        State = "invoice_sent"
	StateFailed             State = "failed"
)

// Stage names the external call that failed; it is surfaced verbatim to the
// operator.
type Stage string

const (
	StageSummarize      Stage = "summarize"
	StageCreateCustomer Stage = "create_customer"
	StageCreateOrder    Stage = "create_order"
	StageCreateInvoice  Stage = "create_invoice"
)

type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("fulfillment stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Record accumulates the identifiers returned by the commerce platform.
// Fields stay set after a downstream failure.
type Record struct {
	CustomerID  string
	OrderID     string
	InvoiceID   string
	InvoiceSent bool
}

// CustomerIntake combines the operator-supplied fields with the fixed
// deployment fields.
type CustomerIntake struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	AddressLine1 string
	PostalCode   string
	Country      string
	Birthday     string
}

type Attempt struct {
	sessionID uuid.UUID
	state     State
	summary   *order.Summary
	record    Record
	failure   error
	startedAt time.Time
}

func NewAttempt(sessionID uuid.UUID, now time.Time) *Attempt {
	return &Attempt{
		sessionID: sessionID,
		state:     StateIdle,
		startedAt: now,
	}
}

func (a *Attempt) SessionID() uuid.UUID { return a.sessionID }
func (a *Attempt) State() State         { return a.state }
func (a *Attempt) Record() Record       { return a.record }
func (a *Attempt) Failure() error       { return a.failure }
func (a *Attempt) StartedAt() time.Time { return a.startedAt }

// Summary returns the parsed order summary once the attempt reached
// ReadyToConfirm, nil before that.
func (a *Attempt) Summary() *order.Summary {
	if a.summary == nil {
		return nil
	}
	s := *a.summary
	return &s
}

// Terminal reports whether the attempt can no longer progress. A new attempt
// for the same session may only start once the previous one is terminal.
func (a *Attempt) Terminal() bool {
	return a.state == StateInvoiceSent || a.state == StateFailed
}

func (a *Attempt) transition(from, to State) error {
	if a.state != from {
		return errs.Mark(
			fmt.Errorf("cannot move %s -> %s from %s", from, to, a.state),
			errs.ErrInvalidTransition,
		)
	}
	a.state = to
	return nil
}

func (a *Attempt) BeginSummarizing() error {
	return a.transition(StateIdle, StateSummarizing)
}

func (a *Attempt) SummaryReady(s order.Summary) error {
	if err := a.transition(StateSummarizing, StateReadyToConfirm); err != nil {
		return err
	}
	a.summary = &s
	return nil
}

func (a *Attempt) Confirm() error {
	return a.transition(StateReadyToConfirm, StateCollectingCustomer)
}

func (a *Attempt) CustomerCreated(customerID string) error {
	if err := a.transition(StateCollectingCustomer, StateCustomerCreated); err != nil {
		return err
	}
	a.record.CustomerID = customerID
	return nil
}

func (a *Attempt) OrderCreated(orderID string) error {
	if err := a.transition(StateCustomerCreated, StateOrderCreated); err != nil {
		return err
	}
	a.record.OrderID = orderID
	return nil
}

func (a *Attempt) InvoiceSent(invoiceID string) error {
	if err := a.transition(StateOrderCreated, StateInvoiceSent); err != nil {
		return err
	}
	a.record.InvoiceID = invoiceID
	a.record.InvoiceSent = true
	return nil
}

// Fail is legal from any non-terminal state. Identifiers already recorded are
// kept.
func (a *Attempt) Fail(err error) {
	if a.Terminal() {
		return
	}
	a.state = StateFailed
	a.failure = err
}
