package request

type UpsertCatalogItemRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Amount   int64  `json:"amount" binding:"min=0"`
	Currency string `json:"currency" binding:"required,len=3"`
}
