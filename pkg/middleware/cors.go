package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AllowAnyOrigin sets permissive CORS headers. Spreadsheet imports fetch exports
// cross-origin without credentials.
func AllowAnyOrigin(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Trace-ID, X-Razorpay-Signature")
	h.Set("Access-Control-Expose-Headers", "Content-Disposition, X-Trace-ID")
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		AllowAnyOrigin(c)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
