package response

import (
	"chatorder/internal/domain/order"
	"chatorder/internal/usecase/commands"
)

type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type OrderSummaryResponse struct {
	DishName string        `json:"dish_name"`
	Quantity string        `json:"quantity"`
	Price    MoneyResponse `json:"base_price_money"`
}

func FromOrderSummary(s order.Summary) *OrderSummaryResponse {
	return &OrderSummaryResponse{
		DishName: s.DishName,
		Quantity: s.Quantity,
		Price: MoneyResponse{
			Amount:   s.Price.Amount(),
			Currency: s.Price.Currency(),
		},
	}
}

type AttemptResponse struct {
	State       string                `json:"state"`
	Summary     *OrderSummaryResponse `json:"summary,omitempty"`
	CustomerID  string                `json:"customer_id,omitempty"`
	OrderID     string                `json:"order_id,omitempty"`
	InvoiceID   string                `json:"invoice_id,omitempty"`
	InvoiceSent bool                  `json:"invoice_sent"`
	FailedStage string                `json:"failed_stage,omitempty"`
}

func FromAttemptView(v *commands.AttemptView) *AttemptResponse {
	resp := &AttemptResponse{
		State:       string(v.State),
		CustomerID:  v.Record.CustomerID,
		OrderID:     v.Record.OrderID,
		InvoiceID:   v.Record.InvoiceID,
		InvoiceSent: v.Record.InvoiceSent,
		FailedStage: string(v.FailedStage),
	}
	if v.Summary != nil {
		resp.Summary = FromOrderSummary(*v.Summary)
	}
	return resp
}
