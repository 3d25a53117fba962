package api

import (
	"net/http"

	"chatorder/internal/domain/ingredient"
	"chatorder/internal/handler/httperr"
	"chatorder/internal/infra"
	"chatorder/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortDomainError maps use case sentinels onto HTTP statuses. Upstream
// collaborator failures surface as 502 so callers can tell them apart from
// our own faults.
func abortDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found", nil)
	case errs.Is(err, errs.ErrNoActiveFulfillment):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No active fulfillment for session", nil)
	case errs.Is(err, errs.ErrIngredientNotFound) || infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Ingredient not found", nil)
	case errs.Is(err, errs.ErrEmptyTranscript):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Session has no conversation to fulfill", nil)
	case errs.Is(err, ingredient.ErrInvalidIngredient):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid ingredient", nil)
	case errs.Is(err, errs.ErrMalformedSummary):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Order summary could not be understood", nil)
	case errs.Is(err, errs.ErrConcurrentFulfillment):
		httperr.AbortWithError(c, http.StatusConflict, err, "Fulfillment already in progress", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Operation not allowed in current state", nil)
	case errs.Is(err, errs.ErrDuplicateName) || infra.IsKind(err, infra.KindDuplicateKey):
		httperr.AbortWithError(c, http.StatusConflict, err, "Name already exists", nil)
	case errs.Is(err, errs.ErrAgentUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Agent service unavailable", nil)
	case errs.Is(err, errs.ErrCommerceCallFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Commerce platform call failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
