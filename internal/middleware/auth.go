package middleware

import (
	"strings"

	"mindmap-srv/pkg/response"
	"mindmap-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Priority 1: Authorization header, "Bearer <token>" or plain token
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), bearerPrefix)

		// Priority 2: auth cookie
		if tokenString == "" && m.cookieConfig.Name != "" {
			tokenString, _ = c.Cookie(m.cookieConfig.Name)
		}
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
