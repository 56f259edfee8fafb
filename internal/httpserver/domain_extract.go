package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"mindlyst/internal/batch"
	extractHTTP "mindlyst/internal/extract/delivery/http"
	extractUsecase "mindlyst/internal/extract/usecase"
	"mindlyst/internal/middleware"
)

// setupExtractDomain initializes the extraction flow and registers its route.
func (srv HTTPServer) setupExtractDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, batchUseCase batch.UseCase) {
	uc := extractUsecase.New(srv.l, srv.extractor, batchUseCase, extractUsecase.Config{
		MinTextLength: srv.minTextLength,
	})

	h := extractHTTP.New(srv.l, uc)
	extractHTTP.RegisterRoutes(api, h, mw, srv.extractPerMin)

	srv.l.Infof(ctx, "Extract domain registered")
}
