package middleware

import (
	"runtime/debug"

	"mindmap-srv/pkg/log"
	"mindmap-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into a 500 response and logs the stack.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s\n%s",
					err, c.Request.Method, c.Request.URL.Path, debug.Stack())

				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
