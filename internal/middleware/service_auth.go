package middleware

import (
	"crypto/subtle"
	"strings"

	"mindmap-srv/internal/model"
	"mindmap-srv/pkg/response"
	"mindmap-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	headerServiceKey  = "X-Service-Key"
	ContextServiceKey = "service_name"
)

// ServiceAuth validates the encrypted X-Service-Key header ("serviceName:key" once decrypted).
// Configured keys may be bcrypt hashes or plain values.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		serviceKey := c.GetHeader(headerServiceKey)
		if serviceKey == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		decryptedKey, err := m.encrypter.Decrypt(serviceKey)
		if err != nil {
			m.l.Errorf(ctx, "middleware.ServiceAuth: Decrypt failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		serviceName, keyValue, ok := strings.Cut(decryptedKey, ":")
		if !ok || serviceName == "" {
			m.l.Errorf(ctx, "middleware.ServiceAuth: Invalid key format (expected serviceName:key)")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		configuredKey, exists := m.serviceKeys[serviceName]
		if !exists {
			m.l.Errorf(ctx, "middleware.ServiceAuth: Service not found: %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Do not log key values
		if !m.keyMatches(keyValue, configuredKey) {
			m.l.Errorf(ctx, "middleware.ServiceAuth: Key mismatch for service %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextServiceKey, serviceName)
		ctx = scope.SetScopeToContext(ctx, model.Scope{UserID: model.RoleSystem, Username: serviceName, Role: model.RoleSystem})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (m Middleware) keyMatches(key, configured string) bool {
	if strings.HasPrefix(configured, "$2") {
		return m.encrypter.CheckPasswordHash(key, configured)
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(configured)) == 1
}
