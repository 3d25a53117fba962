package order

import (
	"errors"
	"fmt"
	"strings"
)

// Money is an amount in minor units plus a 3-letter uppercase currency code.
// Currency is normalized on construction so downstream calls never see the
// lowercase variants the agent emits.
type Money struct {
	amount   int64
	currency string
}

func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	code := strings.ToUpper(strings.TrimSpace(currency))
	if len(code) != 3 {
		return Money{}, fmt.Errorf("invalid currency code %q", currency)
	}
	return Money{amount: amount, currency: code}, nil
}

func (m Money) Amount() int64    { return m.amount }
func (m Money) Currency() string { return m.currency }

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
