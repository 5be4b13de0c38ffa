package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/ymestates/realty/internal/api"
	"github.com/ymestates/realty/internal/auth"
	"github.com/ymestates/realty/internal/database"
	"github.com/ymestates/realty/internal/storage"
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

	logger.Info("starting realty server",
		"env", cfg.Server.Env,
		"addr", cfg.Server.Addr(),
	)

	// Connect to database. Outside production a missing database is fatal;
	// in production we keep serving and report unready instead.
	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		if cfg.Server.Env != "production" {
			os.Exit(1)
		}
	}

	if db != nil {
		if err := database.AutoMigrate(db); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Redis; the notification queue is off without it
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Warn("failed to connect to Redis, notifications disabled", "error", err)
		redisClient = nil
	}

	var asynqClient = queue.NewClient(&cfg.Redis)
	if redisClient == nil {
		asynqClient = nil
	}

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	authService := auth.NewService(db, jwtService, cfg.Auth.TeamCode)
	googleService := auth.NewGoogleService(db, jwtService, cfg.Google)
	if !googleService.Enabled() {
		logger.Warn("Google OAuth not configured")
	}

	// Initialize upload storage
	store, err := storage.New(context.Background(), cfg.Upload, cfg.Server.PublicURL())
	if err != nil {
		logger.Error("failed to initialize upload storage", "error", err)
		os.Exit(1)
	}

	// Create router
	router := api.NewRouter(api.RouterConfig{
		DB:             db,
		Redis:          redisClient,
		Logger:         logger,
		JWTService:     jwtService,
		AuthService:    authService,
		GoogleService:  googleService,
		Storage:        store,
		AsynqClient:    asynqClient,
		FrontendURL:    cfg.Server.FrontendURL,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitReqs:  cfg.RateLimit.Requests,
		RateLimitAuth:  cfg.RateLimit.AuthRequests,
		RateLimitSecs:  cfg.RateLimit.WindowSeconds,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server listening", "addr", cfg.Server.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if asynqClient != nil {
		asynqClient.Close()
	}

	if redisClient != nil {
		redisClient.Close()
	}

	if db != nil {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
