// Package httperr is the single JSON error shape of the HTTP surface.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error payload clients see. Status feeds the HTTP status
// line only and is never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the error payload and aborts the handler chain. The
// original error is attached to the gin context so the logging middleware can
// record it; msg is the client-facing text and must not leak internals.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: nil error")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
