package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mindlyst/internal/auth"
	"mindlyst/internal/middleware"
	"mindlyst/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain under /api/v1. All routes run
// behind the Session middleware so the batch coordinator always has a stable
// session id to key by.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.sessions, srv.sessionCfg)
	api := srv.gin.Group("/api/v1", mw.Session())

	auth.RegisterRoutes(api, srv.authHandler)
	srv.l.Infof(ctx, "Auth domain registered")

	// The batch coordinator is shared: extraction loads candidates into it,
	// the batch routes submit and observe them.
	batchUseCase := srv.setupBatchDomain(ctx, api, mw)
	srv.setupExtractDomain(ctx, api, mw, batchUseCase)

	if err := srv.setupTaskListDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
