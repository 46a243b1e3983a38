package http

import (
	"mindmap-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the user facing routes under /api/v1/mindmaps.
func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/status", h.Status)

	g := r.Group("", mw.Auth())
	{
		g.POST("/generate", h.Generate)
		g.GET("", h.List)
		g.GET("/search", h.Search)
		g.POST("/topics", h.ExtractTopics)
		g.POST("/summarize", h.Summarize)
		g.POST("/estimate", h.Estimate)
		g.GET("/:video_id", h.Get)
		g.DELETE("/:video_id", h.Delete)
		g.POST("/:video_id/export", h.Export)
	}
}

// RegisterInternalRoutes registers service-to-service routes under /internal/mindmaps.
func (h *handler) RegisterInternalRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/generate", mw.ServiceAuth(), h.Generate)
}
