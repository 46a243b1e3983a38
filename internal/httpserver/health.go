package httpserver

import (
	"context"
	"net/http"

	"mindmap-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "From Smap API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "mindmap-srv"
)

type dependencyCheck struct {
	name  string
	check func(ctx context.Context) error
}

func (srv *HTTPServer) dependencyChecks() []dependencyCheck {
	return []dependencyCheck{
		{name: "database", check: srv.postgresDB.PingContext},
		{name: "redis", check: srv.redisClient.Ping},
		{name: "qdrant", check: srv.qdrantClient.Ping},
		{name: "minio", check: srv.minioClient.HealthCheck},
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports 503 until Postgres, Redis, Qdrant and MinIO all answer.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	deps := gin.H{}
	ready := true
	for _, d := range srv.dependencyChecks() {
		if err := d.check(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s not ready: %v", d.name, err)
			deps[d.name] = err.Error()
			ready = false
			continue
		}
		deps[d.name] = "connected"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":       "not ready",
			"service":      ServiceName,
			"dependencies": deps,
		})
		return
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
