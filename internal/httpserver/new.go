package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"mindlyst/internal/auth"
	batchUC "mindlyst/internal/batch/usecase"
	"mindlyst/pkg/gtasks"
	"mindlyst/pkg/hfinference"
	pkgLog "mindlyst/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	// Infra
	postgresDB *sql.DB

	// Clients
	extractor   hfinference.IExtractor
	tasksClient gtasks.ITasks

	// Auth
	sessions    *auth.Store
	authHandler auth.Handler
	sessionCfg  auth.Config

	// Tuning
	batchCfg      batchUC.Config
	minTextLength int
	extractPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB

	Extractor   hfinference.IExtractor
	TasksClient gtasks.ITasks

	Sessions    *auth.Store
	AuthHandler auth.Handler
	SessionCfg  auth.Config

	BatchCfg      batchUC.Config
	MinTextLength int
	ExtractPerMin int
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		postgresDB:    cfg.PostgresDB,
		extractor:     cfg.Extractor,
		tasksClient:   cfg.TasksClient,
		sessions:      cfg.Sessions,
		authHandler:   cfg.AuthHandler,
		sessionCfg:    cfg.SessionCfg,
		batchCfg:      cfg.BatchCfg,
		minTextLength: cfg.MinTextLength,
		extractPerMin: cfg.ExtractPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractor == nil {
		return errors.New("extractor client is required")
	}
	if srv.tasksClient == nil {
		return errors.New("tasks client is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	if srv.authHandler == nil {
		return errors.New("auth handler is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	return nil
}
