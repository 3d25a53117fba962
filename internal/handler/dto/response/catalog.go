package response

import (
	"chatorder/internal/usecase/commands"
)

type CatalogItemResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Price *MoneyResponse `json:"price,omitempty"`
}

func FromCatalogItem(it commands.CatalogItem) *CatalogItemResponse {
	resp := &CatalogItemResponse{ID: it.ID, Name: it.Name}
	if it.Price != nil {
		resp.Price = &MoneyResponse{
			Amount:   it.Price.Amount(),
			Currency: it.Price.Currency(),
		}
	}
	return resp
}

func FromCatalogList(items []commands.CatalogItem) []*CatalogItemResponse {
	res := make([]*CatalogItemResponse, len(items))
	for i, it := range items {
		res[i] = FromCatalogItem(it)
	}
	return res
}
