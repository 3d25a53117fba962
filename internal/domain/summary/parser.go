package summary

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"chatorder/internal/domain/order"
	"chatorder/internal/pkg/errs"
)

// The agent's summary text is JSON-encoded twice: the raw payload is
// stringified once before being embedded in the response document. Parsing is
// therefore an explicit two-stage pipeline with a named stage per failure so
// schema drift upstream shows up as a parser error, never as silent
// tolerance.

type ParseStage string

const (
	StageOuterDecode ParseStage = "outer_decode"
	StageInnerDecode ParseStage = "inner_decode"
	StageExtract     ParseStage = "extract"
)

type ParseError struct {
	Stage ParseStage
	err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("order summary parse failed at %s: %v", e.Stage, e.err)
}

func (e *ParseError) Unwrap() error { return e.err }

func parseErr(stage ParseStage, err error) error {
	return errs.Mark(&ParseError{Stage: stage, err: err}, errs.ErrMalformedSummary)
}

type rawPayload struct {
	Order []rawItem `json:"order"`
}

type rawItem struct {
	Name           string    `json:"name"`
	Quantity       flexInt   `json:"quantity"`
	BasePriceMoney *rawMoney `json:"base_price_money"`
}

type rawMoney struct {
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency"`
}

// flexInt tolerates the agent emitting quantities as either a number or a
// quoted string.
type flexInt struct {
	value string
	set   bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		f.value = n.String()
		f.set = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("quantity is neither number nor string: %w", err)
	}
	f.value = s
	f.set = true
	return nil
}

// ParseOrderSummary converts the agent's raw summary text into a structured
// record. Only order[0] is retained: the pipeline fulfills exactly one dish
// per cycle (the full array is decoded, so multi-item support is a local
// change here).
func ParseOrderSummary(raw string) (order.Summary, error) {
	clean := Sanitize(raw)

	var inner string
	if err := json.Unmarshal([]byte(clean), &inner); err != nil {
		return order.Summary{}, parseErr(StageOuterDecode, err)
	}

	var payload rawPayload
	if err := json.Unmarshal([]byte(inner), &payload); err != nil {
		return order.Summary{}, parseErr(StageInnerDecode, err)
	}

	if len(payload.Order) == 0 {
		return order.Summary{}, parseErr(StageExtract, errs.New("order is missing or empty"))
	}
	item := payload.Order[0]
	if item.Name == "" {
		return order.Summary{}, parseErr(StageExtract, errs.New("line item has no name"))
	}
	if !item.Quantity.set || item.Quantity.value == "" {
		return order.Summary{}, parseErr(StageExtract, errs.New("line item has no quantity"))
	}
	if item.BasePriceMoney == nil {
		return order.Summary{}, parseErr(StageExtract, errs.New("line item has no base_price_money"))
	}

	amount, err := minorUnits(item.BasePriceMoney.Amount)
	if err != nil {
		return order.Summary{}, parseErr(StageExtract, err)
	}
	price, err := order.NewMoney(amount, item.BasePriceMoney.Currency)
	if err != nil {
		return order.Summary{}, parseErr(StageExtract, err)
	}

	return order.Summary{
		DishName: item.Name,
		Quantity: item.Quantity.value,
		Price:    price,
	}, nil
}

// minorUnits floors fractional amounts: Money is always a whole number of
// minor units.
func minorUnits(n json.Number) (int64, error) {
	if v, err := n.Int64(); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not numeric: %w", n.String(), err)
	}
	return int64(math.Floor(f)), nil
}
