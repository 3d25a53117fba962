package middleware

import (
	"github.com/gin-gonic/gin"

	"chatorder/internal/infra/commerce"
)

// CommerceCredentials copies per-request commerce credentials from headers
// into the request context. Requests without headers fall through to the
// configured fallback credentials inside the commerce client.
func CommerceCredentials() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Access-Token")
		locationID := c.GetHeader("Location-Id")
		if token != "" || locationID != "" {
			ctx := commerce.WithCredentials(c.Request.Context(), commerce.Credentials{
				AccessToken: token,
				LocationID:  locationID,
			})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
