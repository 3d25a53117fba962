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

type FulfillmentHandler struct {
	cmds commands.FulfillmentCommands
}

func NewFulfillmentHandler(cmds commands.FulfillmentCommands) *FulfillmentHandler {
	return &FulfillmentHandler{cmds: cmds}
}

// Begin summarizes the finished conversation into an order summary the
// operator reviews before anything is sent to the commerce platform.
func (h *FulfillmentHandler) Begin(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}
	summary, err := h.cmds.Begin(c.Request.Context(), sessionID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderSummary(summary))
}

func (h *FulfillmentHandler) Confirm(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}
	if err := h.cmds.Confirm(c.Request.Context(), sessionID); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FulfillmentHandler) SubmitCustomer(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}
	var req reqdto.SubmitCustomerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.cmds.SubmitCustomer(c.Request.Context(), sessionID, req.FirstName, req.LastName, req.Email)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAttemptView(view))
}

func (h *FulfillmentHandler) State(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}
	view, err := h.cmds.State(c.Request.Context(), sessionID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAttemptView(view))
}
