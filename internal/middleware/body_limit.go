package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodySize is the largest request body accepted, in bytes.
const MaxBodySize = 5 << 20 // 5MB

// BodySizeLimit caps the request body size. Oversized bodies fail inside
// the handler's bind call with a 400.
func BodySizeLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize)
		c.Next()
	}
}
