package order

// Summary is the structured record extracted from the agent's free-text order
// summary. Only one dish per fulfillment cycle is supported; Quantity stays a
// stringified integer because the downstream platform takes it as text.
type Summary struct {
	DishName string
	Quantity string
	Price    Money
}
