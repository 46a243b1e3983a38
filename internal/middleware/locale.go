package middleware

import (
	"mindmap-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale reads the "lang" header into the request context.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := locale.ParseLang(c.GetHeader("lang"))

		ctx := locale.SetLocaleToContext(c.Request.Context(), lang)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
