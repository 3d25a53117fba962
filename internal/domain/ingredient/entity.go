package ingredient

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidIngredient = errors.New("invalid ingredient")

// Ingredient is one inventory row. Name is the natural key the kitchen uses;
// quantities are whole units of Unit.
type Ingredient struct {
	ID            uuid.UUID
	Name          string
	Quantity      int
	Unit          string
	ShelfLifeDays int
	Type          string
	SubType       string
	CreatedAt     time.Time
}

func New(name string, quantity int, unit string, shelfLifeDays int, typ, subType string, now time.Time) (*Ingredient, error) {
	if name == "" {
		return nil, ErrInvalidIngredient
	}
	if quantity < 0 || shelfLifeDays < 0 {
		return nil, ErrInvalidIngredient
	}
	return &Ingredient{
		ID:            uuid.New(),
		Name:          name,
		Quantity:      quantity,
		Unit:          unit,
		ShelfLifeDays: shelfLifeDays,
		Type:          typ,
		SubType:       subType,
		CreatedAt:     now,
	}, nil
}
