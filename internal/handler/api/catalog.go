package api

import (
	"net/http"

	reqdto "chatorder/internal/handler/dto/request"
	resdto "chatorder/internal/handler/dto/response"
	"chatorder/internal/handler/httperr"
	"chatorder/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
}

func NewCatalogHandler(cmds commands.CatalogCommands) *CatalogHandler {
	return &CatalogHandler{cmds: cmds}
}

func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.cmds.List(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": resdto.FromCatalogList(items)})
}

func (h *CatalogHandler) Upsert(c *gin.Context) {
	var req reqdto.UpsertCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	item, err := h.cmds.Upsert(c.Request.Context(), req.Name, req.Amount, req.Currency)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalogItem(item))
}
