package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"mindlyst/internal/middleware"
	tasklistHTTP "mindlyst/internal/tasklist/delivery/http"
	tasklistRepo "mindlyst/internal/tasklist/repository/postgre"
	tasklistUsecase "mindlyst/internal/tasklist/usecase"
)

// setupTaskListDomain initializes the local task-list domain and registers
// its routes at /api/v1/tasks.
func (srv HTTPServer) setupTaskListDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := tasklistRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := tasklistUsecase.New(repo, srv.l)

	// 3. HTTP Handler
	h := tasklistHTTP.New(srv.l, uc)

	// 4. Routes
	tasklistHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task list domain registered")
	return nil
}
