package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"mindlyst/internal/batch"
	batchHTTP "mindlyst/internal/batch/delivery/http"
	batchUsecase "mindlyst/internal/batch/usecase"
	"mindlyst/internal/middleware"
)

// setupBatchDomain initializes the batch submission coordinator and registers
// its routes. The use case is returned so the extraction domain can load
// candidates into the same coordinator.
func (srv HTTPServer) setupBatchDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) batch.UseCase {
	uc := batchUsecase.New(srv.l, srv.tasksClient, srv.batchCfg)

	h := batchHTTP.New(srv.l, uc)
	batchHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Batch domain registered")
	return uc
}
