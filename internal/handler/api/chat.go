package api

import (
	"net/http"

	reqdto "chatorder/internal/handler/dto/request"
	resdto "chatorder/internal/handler/dto/response"
	"chatorder/internal/handler/httperr"
	"chatorder/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatHandler struct {
	cmds commands.ChatCommands
}

func NewChatHandler(cmds commands.ChatCommands) *ChatHandler {
	return &ChatHandler{cmds: cmds}
}

func (h *ChatHandler) StartSession(c *gin.Context) {
	id, err := h.cmds.StartSession(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSessionID(id))
}

func (h *ChatHandler) AppendTurn(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}
	var req reqdto.AppendTurnRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AppendTurn(c.Request.Context(), sessionID, req.Message, req.Stop)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTurnResult(result))
}

func (h *ChatHandler) Transcript(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}
	turns, err := h.cmds.Transcript(c.Request.Context(), sessionID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTranscript(turns))
}
