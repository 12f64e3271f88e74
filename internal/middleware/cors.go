package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

const defaultAllowedHeaders = "Content-Type, X-Request-ID"

// CORS allows cross-origin calls from the given origins. "*" (or an empty
// list) allows every origin. Headers named in Access-Control-Request-Headers
// are echoed back as allowed. Preflight requests are answered with 204.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowAll := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(allowedOrigins, origin):
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
			c.Writer.Header().Set("Access-Control-Allow-Headers", requested)
			c.Writer.Header().Add("Vary", "Access-Control-Request-Headers")
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Headers", defaultAllowedHeaders)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
