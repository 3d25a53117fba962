package commands

import (
	"context"
	"sync"

	"chatorder/internal/domain/fulfillment"
	"chatorder/internal/domain/order"
	"chatorder/internal/domain/summary"
	"chatorder/internal/pkg/clock"
	"chatorder/internal/pkg/config"
	"chatorder/internal/pkg/errs"

	"github.com/google/uuid"
)

type AttemptView struct {
	State       fulfillment.State
	Summary     *order.Summary
	Record      fulfillment.Record
	FailedStage fulfillment.Stage
}

// FulfillmentCommands drives one order from finalized transcript to dispatched
// invoice. The three commerce calls run strictly in sequence because each
// identifier feeds the next call; nothing is compensated on partial failure.
type FulfillmentCommands interface {
	// Begin summarizes the session transcript and parses it into an order
	// summary ready for operator confirmation.
	Begin(ctx context.Context, sessionID uuid.UUID) (order.Summary, error)
	Confirm(ctx context.Context, sessionID uuid.UUID) error
	// SubmitCustomer runs create-customer, create-order, create-invoice with
	// the operator intake.
	SubmitCustomer(ctx context.Context, sessionID uuid.UUID, firstName, lastName, email string) (*AttemptView, error)
	State(ctx context.Context, sessionID uuid.UUID) (*AttemptView, error)
}

type fulfillmentUseCaseImpl struct {
	sessions SessionStore
	agent    AgentGateway
	commerce CommerceGateway
	clock    clock.Clock
	intake   config.IntakeConfig
	agentCfg config.AgentConfig
	commCfg  config.CommerceConfig

	// mu guards the attempt map, the inflight set, and every read or write
	// of an Attempt. Stage execution holds an inflight reservation instead
	// of the lock so a second caller is rejected, never blocked, while the
	// external calls run.
	mu       sync.Mutex
	attempts map[uuid.UUID]*fulfillment.Attempt
	inflight map[uuid.UUID]struct{}
}

func NewFulfillmentCommands(
	sessions SessionStore,
	agent AgentGateway,
	commerce CommerceGateway,
	clock clock.Clock,
	cfg config.Config,
) FulfillmentCommands {
	return &fulfillmentUseCaseImpl{
		sessions: sessions,
		agent:    agent,
		commerce: commerce,
		clock:    clock,
		intake:   cfg.Intake,
		agentCfg: cfg.Agent,
		commCfg:  cfg.Commerce,
		attempts: make(map[uuid.UUID]*fulfillment.Attempt),
		inflight: make(map[uuid.UUID]struct{}),
	}
}

func (f *fulfillmentUseCaseImpl) Begin(ctx context.Context, sessionID uuid.UUID) (order.Summary, error) {
	sess, err := f.sessions.Get(ctx, sessionID)
	if err != nil {
		return order.Summary{}, errs.Mark(err, errs.ErrSessionNotFound)
	}
	transcript := sess.Transcript()
	if len(transcript) == 0 {
		return order.Summary{}, errs.ErrEmptyTranscript
	}

	att, err := f.startAttempt(sessionID)
	if err != nil {
		return order.Summary{}, err
	}
	defer f.release(sessionID)

	callCtx, cancel := context.WithTimeout(ctx, f.agentCfg.Timeout)
	defer cancel()
	raw, err := f.agent.SummarizeOrder(callCtx, transcript)
	if err != nil {
		f.fail(att, &fulfillment.StageError{Stage: fulfillment.StageSummarize, Err: err})
		return order.Summary{}, errs.Mark(err, errs.ErrAgentUnavailable)
	}

	sum, err := summary.ParseOrderSummary(raw)
	if err != nil {
		// Already marked ErrMalformedSummary by the parser. No external side
		// effects have happened yet.
		f.fail(att, err)
		return order.Summary{}, err
	}

	if err := f.locked(func() error { return att.SummaryReady(sum) }); err != nil {
		return order.Summary{}, err
	}
	return sum, nil
}

func (f *fulfillmentUseCaseImpl) Confirm(_ context.Context, sessionID uuid.UUID) error {
	att, err := f.acquire(sessionID)
	if err != nil {
		return err
	}
	defer f.release(sessionID)
	return f.locked(att.Confirm)
}

func (f *fulfillmentUseCaseImpl) SubmitCustomer(ctx context.Context, sessionID uuid.UUID, firstName, lastName, email string) (*AttemptView, error) {
	att, err := f.acquire(sessionID)
	if err != nil {
		return nil, err
	}
	defer f.release(sessionID)

	f.mu.Lock()
	state := att.State()
	sum := att.Summary()
	f.mu.Unlock()
	if state != fulfillment.StateCollectingCustomer {
		return nil, errs.Mark(
			errs.New("customer intake submitted in state "+string(state)),
			errs.ErrInvalidTransition,
		)
	}

	intake := fulfillment.CustomerIntake{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PhoneNumber:  f.intake.PhoneNumber,
		AddressLine1: f.intake.AddressLine1,
		PostalCode:   f.intake.PostalCode,
		Country:      f.intake.Country,
		Birthday:     f.intake.Birthday,
	}

	customerID, err := f.call(ctx, func(cctx context.Context) (string, error) {
		return f.commerce.CreateCustomer(cctx, intake)
	})
	if err != nil {
		return nil, f.failStage(att, fulfillment.StageCreateCustomer, err)
	}
	if err := f.locked(func() error { return att.CustomerCreated(customerID) }); err != nil {
		return nil, err
	}

	orderID, err := f.call(ctx, func(cctx context.Context) (string, error) {
		return f.commerce.CreateOrder(cctx, *sum, customerID)
	})
	if err != nil {
		return nil, f.failStage(att, fulfillment.StageCreateOrder, err)
	}
	if err := f.locked(func() error { return att.OrderCreated(orderID) }); err != nil {
		return nil, err
	}

	invoiceID, err := f.call(ctx, func(cctx context.Context) (string, error) {
		return f.commerce.CreateInvoice(cctx, orderID, customerID)
	})
	if err != nil {
		return nil, f.failStage(att, fulfillment.StageCreateInvoice, err)
	}
	if err := f.locked(func() error { return att.InvoiceSent(invoiceID) }); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return viewOf(att), nil
}

func (f *fulfillmentUseCaseImpl) State(_ context.Context, sessionID uuid.UUID) (*AttemptView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	att, ok := f.attempts[sessionID]
	if !ok {
		return nil, errs.ErrNoActiveFulfillment
	}
	return viewOf(att), nil
}

// startAttempt registers a fresh attempt unless a non-terminal one exists,
// and reserves it for the caller.
func (f *fulfillmentUseCaseImpl) startAttempt(sessionID uuid.UUID) (*fulfillment.Attempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.inflight[sessionID]; busy {
		return nil, errs.ErrConcurrentFulfillment
	}
	if cur, ok := f.attempts[sessionID]; ok && !cur.Terminal() {
		return nil, errs.ErrConcurrentFulfillment
	}
	att := fulfillment.NewAttempt(sessionID, f.clock.Now())
	if err := att.BeginSummarizing(); err != nil {
		return nil, err
	}
	f.attempts[sessionID] = att
	f.inflight[sessionID] = struct{}{}
	return att, nil
}

// acquire reserves the session's active attempt for the caller until release.
// A second caller gets ErrConcurrentFulfillment while the reservation is held.
func (f *fulfillmentUseCaseImpl) acquire(sessionID uuid.UUID) (*fulfillment.Attempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	att, ok := f.attempts[sessionID]
	if !ok || att.Terminal() {
		return nil, errs.ErrNoActiveFulfillment
	}
	if _, busy := f.inflight[sessionID]; busy {
		return nil, errs.ErrConcurrentFulfillment
	}
	f.inflight[sessionID] = struct{}{}
	return att, nil
}

func (f *fulfillmentUseCaseImpl) release(sessionID uuid.UUID) {
	f.mu.Lock()
	delete(f.inflight, sessionID)
	f.mu.Unlock()
}

func (f *fulfillmentUseCaseImpl) locked(fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn()
}

func (f *fulfillmentUseCaseImpl) fail(att *fulfillment.Attempt, err error) {
	f.mu.Lock()
	att.Fail(err)
	f.mu.Unlock()
}

// call applies the per-call timeout required for every commerce operation;
// a timeout is indistinguishable from any other stage failure.
func (f *fulfillmentUseCaseImpl) call(ctx context.Context, op func(context.Context) (string, error)) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, f.commCfg.Timeout)
	defer cancel()
	return op(callCtx)
}

func (f *fulfillmentUseCaseImpl) failStage(att *fulfillment.Attempt, stage fulfillment.Stage, err error) error {
	stageErr := &fulfillment.StageError{Stage: stage, Err: err}
	f.fail(att, stageErr)
	return errs.Mark(stageErr, errs.ErrCommerceCallFailed)
}

func viewOf(att *fulfillment.Attempt) *AttemptView {
	v := &AttemptView{
		State:   att.State(),
		Summary: att.Summary(),
		Record:  att.Record(),
	}
	var stageErr *fulfillment.StageError
	if errs.As(att.Failure(), &stageErr) {
		v.FailedStage = stageErr.Stage
	}
	return v
}
