package api

import (
	"net/http"

	reqdto "chatorder/internal/handler/dto/request"
	resdto "chatorder/internal/handler/dto/response"
	"chatorder/internal/handler/httperr"
	"chatorder/internal/usecase/commands"
	"chatorder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type IngredientHandler struct {
	cmds commands.IngredientCommands
	q    queries.IngredientQueries
}

func NewIngredientHandler(cmds commands.IngredientCommands, q queries.IngredientQueries) *IngredientHandler {
	return &IngredientHandler{cmds: cmds, q: q}
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var req reqdto.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Create(c.Request.Context(), req.ToInput()); err != nil {
		abortDomainError(c, err)
		return
	}
	view, err := h.q.GetByName(c.Request.Context(), req.Name)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIngredientView(view))
}

func (h *IngredientHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": resdto.FromIngredientList(views)})
}

func (h *IngredientHandler) Get(c *gin.Context) {
	view, err := h.q.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIngredientView(view))
}

func (h *IngredientHandler) Update(c *gin.Context) {
	var req reqdto.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in := req.ToInput()
	in.Name = c.Param("name")
	if err := h.cmds.Update(c.Request.Context(), in); err != nil {
		abortDomainError(c, err)
		return
	}
	view, err := h.q.GetByName(c.Request.Context(), in.Name)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIngredientView(view))
}

func (h *IngredientHandler) UpdateQuantity(c *gin.Context) {
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateQuantity(c.Request.Context(), c.Param("name"), req.Quantity); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *IngredientHandler) UpdateShelfLife(c *gin.Context) {
	var req reqdto.UpdateShelfLifeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateShelfLife(c.Request.Context(), c.Param("name"), req.ShelfLifeDays); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("name")); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
