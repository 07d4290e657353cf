package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PhatNguyen203/DevConnecting/config"
	v1 "github.com/PhatNguyen203/DevConnecting/internal/delivery/http/v1"
	"github.com/PhatNguyen203/DevConnecting/internal/repository/postgres"
	"github.com/PhatNguyen203/DevConnecting/internal/usecase"
	"github.com/PhatNguyen203/DevConnecting/pkg/database"
	"github.com/PhatNguyen203/DevConnecting/pkg/logger"
	"github.com/PhatNguyen203/DevConnecting/pkg/redis"
	"github.com/PhatNguyen203/DevConnecting/pkg/security"
	"github.com/PhatNguyen203/DevConnecting/pkg/token"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init()
	logger.Log.Info("Starting developer network backend", "port", cfg.Port)
	security.InitSecurityLogger("devconnecting-api", cfg.Environment)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting degrades gracefully without it)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, falling back to in-memory rate limiting", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 5. Setup Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	postRepo := postgres.NewPostRepository(dbPool)

	// 6. Setup Token Service
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTTTL)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(accountRepo, tokens)
	profileUC := usecase.NewProfileUsecase(profileRepo, accountRepo, postRepo)
	postUC := usecase.NewPostUsecase(postRepo, accountRepo)

	// 8. Setup Login Tracker
	tracker := security.NewLoginTracker(security.LoginTrackerConfig{
		MaxAttempts:   cfg.FailedLoginMaxAttempts,
		AttemptWindow: time.Duration(cfg.FailedLoginWindowMinutes) * time.Minute,
		BlockDuration: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
	})

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		ProfileUC:    profileUC,
		PostUC:       postUC,
		Tokens:       tokens,
		LoginTracker: tracker,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
