package httpserver

import (
	"context"
	"fmt"

	"mindmap-srv/internal/middleware"
	mindmapHTTP "mindmap-srv/internal/mindmap/delivery/http"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager, srv.config.Cookie, srv.config.InternalConfig, srv.encrypter)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	mindmapUC, err := srv.setupMindmapDomain(ctx)
	if err != nil {
		return fmt.Errorf("failed to setup mindmap domain: %w", err)
	}
	mindmapHandler := mindmapHTTP.New(srv.l, mindmapUC)

	api := srv.gin.Group("/api/v1")
	mindmapHandler.RegisterRoutes(api.Group("/mindmaps"), mw)

	internal := srv.gin.Group("/internal")
	mindmapHandler.RegisterInternalRoutes(internal.Group("/mindmaps"), mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(mw.Locale())

	srv.l.Infof(context.Background(), "HTTP middlewares registered (environment: %s)", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
