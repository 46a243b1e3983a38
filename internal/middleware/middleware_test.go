package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mindmap-srv/config"
	"mindmap-srv/internal/model"
	"mindmap-srv/pkg/encrypter"
	"mindmap-srv/pkg/log"
	"mindmap-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAESKey = "0123456789abcdef0123456789abcdef"

type fakeManager struct{}

func (fakeManager) Verify(token string) (scope.Payload, error) {
	if token != "good" {
		return scope.Payload{}, errors.New("invalid token")
	}
	return scope.Payload{UserID: "u-1", Username: "alice", Role: model.RoleUser}, nil
}

func newTestMiddleware(t *testing.T, keys map[string]string) (Middleware, encrypter.Encrypter) {
	t.Helper()
	enc := encrypter.New(testAESKey)
	return New(log.NewNop(), fakeManager{}, config.CookieConfig{Name: "mindmap_token"}, config.InternalConfig{ServiceKeys: keys}, enc), enc
}

func serve(h gin.HandlerFunc, req *http.Request) (*httptest.ResponseRecorder, model.Scope) {
	gin.SetMode(gin.TestMode)
	var sc model.Scope
	r := gin.New()
	r.GET("/", h, func(c *gin.Context) {
		sc = scope.GetScopeFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, sc
}

func TestAuth(t *testing.T) {
	m, _ := newTestMiddleware(t, nil)

	tests := []struct {
		name   string
		header string
		cookie string
		status int
	}{
		{"bearer header", "Bearer good", "", http.StatusNoContent},
		{"plain header", "good", "", http.StatusNoContent},
		{"cookie", "", "good", http.StatusNoContent},
		{"bad token", "Bearer bad", "", http.StatusUnauthorized},
		{"missing", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "mindmap_token", Value: tt.cookie})
			}

			w, sc := serve(m.Auth(), req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusNoContent {
				assert.Equal(t, "u-1", sc.UserID)
			}
		})
	}
}

func TestServiceAuth(t *testing.T) {
	enc := encrypter.New(testAESKey)
	hashed, err := enc.HashPassword("s3cret")
	require.NoError(t, err)

	m, enc := newTestMiddleware(t, map[string]string{
		"transcriber": hashed,
		"scheduler":   "plain-key",
	})

	encrypt := func(s string) string {
		out, err := enc.Encrypt(s)
		require.NoError(t, err)
		return out
	}

	tests := []struct {
		name   string
		key    string
		status int
	}{
		{"bcrypt key", encrypt("transcriber:s3cret"), http.StatusNoContent},
		{"plain key", encrypt("scheduler:plain-key"), http.StatusNoContent},
		{"wrong key", encrypt("transcriber:nope"), http.StatusUnauthorized},
		{"unknown service", encrypt("other:s3cret"), http.StatusUnauthorized},
		{"no separator", encrypt("transcriber"), http.StatusUnauthorized},
		{"not encrypted", "transcriber:s3cret", http.StatusUnauthorized},
		{"missing", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.key != "" {
				req.Header.Set(headerServiceKey, tt.key)
			}

			w, sc := serve(m.ServiceAuth(), req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusNoContent {
				assert.True(t, sc.IsSystem())
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(log.NewNop()))
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
