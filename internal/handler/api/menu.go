package api

import (
	"net/http"

	reqdto "chatorder/internal/handler/dto/request"
	resdto "chatorder/internal/handler/dto/response"
	"chatorder/internal/handler/httperr"
	"chatorder/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	cmds commands.MenuCommands
}

func NewMenuHandler(cmds commands.MenuCommands) *MenuHandler {
	return &MenuHandler{cmds: cmds}
}

func (h *MenuHandler) Recommend(c *gin.Context) {
	var req reqdto.RecommendMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	menu, err := h.cmds.Recommend(c.Request.Context(), req.ToInput())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MenuResponse{Menu: menu})
}

func (h *MenuHandler) ReengineerDish(c *gin.Context) {
	var req reqdto.ReengineerDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	suggestion, err := h.cmds.ReengineerDish(c.Request.Context(), req.DishName, req.Cuisine)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDishSuggestion(suggestion))
}
