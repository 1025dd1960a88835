package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"require-checklist/internal/middleware"
	"require-checklist/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.checklistRoutes != nil {
		srv.checklistRoutes(srv.gin.Group("/api/v1/checklist"))
		srv.l.Infof(ctx, "Checklist routes registered at /api/v1/checklist")
	}

	if srv.webhookHandler != nil {
		srv.gin.POST("/webhook/github", srv.webhookHandler.HandleGitHubWebhook)
		srv.l.Infof(ctx, "GitHub webhook route registered at POST /webhook/github")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping GitHub webhook route")
	}

	return nil
}
