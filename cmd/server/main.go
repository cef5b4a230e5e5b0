package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/jetistik-hub/internal/auth"
	"github.com/yukikurage/jetistik-hub/internal/config"
	"github.com/yukikurage/jetistik-hub/internal/database"
	"github.com/yukikurage/jetistik-hub/internal/i18n"
	"github.com/yukikurage/jetistik-hub/internal/logger"
	"github.com/yukikurage/jetistik-hub/internal/repository"
	"github.com/yukikurage/jetistik-hub/internal/router"
	"github.com/yukikurage/jetistik-hub/internal/services"
	"github.com/yukikurage/jetistik-hub/internal/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer func() { _ = zapLogger.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)
	secureCookie := cfg.CookieSecure || cfg.IsProduction()
	if cfg.IsProduction() && cfg.SecretKey == config.DefaultSecretKey {
		zapLogger.Warn("SECRET_KEY is the built-in default, set a unique value in production")
	}

	// Connect to database
	db, err := database.Open(cfg.DatabaseURL, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// File storage
	local, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		zapLogger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}
	pipelineOpts := []storage.PipelineOption{storage.WithLogger(zapLogger)}
	if cfg.S3.Enabled() {
		remote, err := storage.NewS3Store(context.Background(), cfg.S3)
		if err != nil {
			zapLogger.Fatal("Failed to configure object storage", zap.Error(err))
		}
		pipelineOpts = append(pipelineOpts, storage.WithRemote(remote, cfg.S3.Prefix))
		zapLogger.Info("Remote uploads enabled", zap.String("bucket", cfg.S3.Bucket))
	} else {
		zapLogger.Info("Remote uploads disabled, storing files locally", zap.String("dir", cfg.UploadDir))
	}
	pipeline := storage.NewPipeline(local, pipelineOpts...)

	// Token revocation
	var revoker auth.Revoker = auth.NopRevoker{}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		if err := client.Ping(context.Background()).Err(); err != nil {
			zapLogger.Warn("Redis is unreachable, logout revocation will be skipped until it recovers", zap.Error(err))
		}
		revoker = auth.NewRedisRevoker(client, zapLogger)
	}

	sessionStore, err := router.NewSessionStore(router.SessionConfig{
		Secret:        cfg.SecretKey,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		Secure:        secureCookie,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create session store", zap.Error(err))
	}

	// Initialize services
	userRepo := repository.NewUserRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	authService := services.NewAuthService(userRepo)
	achievementService := services.NewAchievementService(achievementRepo, pipeline, zapLogger)
	userService := services.NewUserService(authService, userRepo, achievementRepo, pipeline, zapLogger)

	if err := authService.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword, zapLogger); err != nil {
		zapLogger.Fatal("Failed to create admin user", zap.Error(err))
	}

	defaultLocale, ok := i18n.ParseLocale(cfg.DefaultLanguage)
	if !ok {
		defaultLocale = i18n.Kazakh
	}

	engine, err := router.New(router.Dependencies{
		Logger:             zapLogger,
		SessionStore:       sessionStore,
		Issuer:             auth.NewTokenIssuer(cfg.SecretKey, cfg.TokenMaxAge),
		Revoker:            revoker,
		AuthService:        authService,
		AchievementService: achievementService,
		UserService:        userService,
		DefaultLocale:      defaultLocale,
		SecureCookie:       secureCookie,
		AllowRegistration:  cfg.AllowRegistration,
	})
	if err != nil {
		zapLogger.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		zapLogger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}
