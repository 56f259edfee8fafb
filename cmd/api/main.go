package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mindlyst/config"
	"mindlyst/config/postgre"
	_ "mindlyst/docs" // Swagger docs
	"mindlyst/internal/auth"
	batchUC "mindlyst/internal/batch/usecase"
	"mindlyst/internal/httpserver"
	"mindlyst/pkg/gtasks"
	"mindlyst/pkg/hfinference"
	"mindlyst/pkg/log"
)

// @title       Mindlyst API
// @description Turn free-form text into Google Tasks: LLM extraction, batch submission, and a local date-scoped task list.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Mindlyst...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Extraction model: %s", cfg.HF.Model)

	// 3. Infrastructure
	db, err := postgre.Connect(cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer postgre.Disconnect(db)

	// 4. Clients
	extractor := hfinference.NewClient(hfinference.Config{
		AccessToken: cfg.HF.AccessToken,
		Model:       cfg.HF.Model,
		APIURL:      cfg.HF.APIURL,
	})
	tasksClient := gtasks.NewClient()

	// 5. Sessions & auth
	sessionCfg := auth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		SessionTTL:   cfg.Session.TTL,
		MaxSessions:  cfg.Session.MaxSessions,
		CookieName:   cfg.Session.CookieName,
		CookieSecure: cfg.Session.CookieSecure,
	}
	sessions := auth.NewStore(cfg.Session.TTL, cfg.Session.MaxSessions)
	authHandler := auth.NewHandler(logger, sessions, sessionCfg)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Extractor:   extractor,
		TasksClient: tasksClient,
		Sessions:    sessions,
		AuthHandler: authHandler,
		SessionCfg:  sessionCfg,
		BatchCfg: batchUC.Config{
			BatchTTL:   cfg.Batch.TTL,
			MaxBatches: cfg.Batch.MaxBatches,
		},
		MinTextLength: cfg.HF.MinTextLength,
		ExtractPerMin: cfg.RateLimit.ExtractPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
