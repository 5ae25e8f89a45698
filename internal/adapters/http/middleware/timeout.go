package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimeout sets a deadline on the request context. It does not abort
// the handler: quote API calls observe the deadline and surface it as an
// error, which dto.HandleError renders as 504 TIMEOUT.
//
// A favorites page can trigger many upstream requests, so the timeout bounds
// the whole resolve, not each call.
func RequestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
