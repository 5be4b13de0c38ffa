package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/ymestates/realty/internal/database"
	"github.com/ymestates/realty/internal/tasks"
	"github.com/ymestates/realty/pkg/config"
	"github.com/ymestates/realty/pkg/queue"
	"github.com/ymestates/realty/pkg/util"
)

func main() {
	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := util.NewLogger(cfg.Server.Env)
	slog.SetDefault(logger)

	logger.Info("starting realty worker")

	// Connect to database
	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Set up the asynq server and task handlers
	srv := queue.NewServer(&cfg.Redis, 10)
	mux := asynq.NewServeMux()

	handler := tasks.NewHandler(db, logger)
	handler.RegisterHandlers(mux)

	// Run until interrupted
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("worker error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down worker...")
	srv.Shutdown()

	sqlDB, _ := db.DB()
	sqlDB.Close()

	logger.Info("worker stopped")
}
