package http

import (
	"mindmap-srv/internal/middleware"
	"mindmap-srv/internal/mindmap"
	"mindmap-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
	RegisterInternalRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc mindmap.UseCase
}

func New(l log.Logger, uc mindmap.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
