package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/shift-profile-service/internal/api/http"
	"github.com/spec-kit/shift-profile-service/internal/api/http/handlers"
	"github.com/spec-kit/shift-profile-service/internal/auth"
	"github.com/spec-kit/shift-profile-service/internal/config"
	"github.com/spec-kit/shift-profile-service/internal/events"
	"github.com/spec-kit/shift-profile-service/internal/observability"
	"github.com/spec-kit/shift-profile-service/internal/persistence"
	"github.com/spec-kit/shift-profile-service/internal/repository"
	"github.com/spec-kit/shift-profile-service/internal/service"
	"github.com/spec-kit/shift-profile-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}

	tokenManager, err := auth.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.AccessTokenTTLMinutes)
	if err != nil {
		logger.Fatal("failed to init token manager", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.AutoSchema {
		if err := persistence.CreateSchema(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to create schema", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	cachedRepo := repository.NewCachedUserRepository(userRepo, redis.Client, cfg.Redis.UserCacheTTL(), logger)

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(dispatcher, logger, cfg.Audit)
	worker.StartAuditWorker(auditService)

	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo:     userRepo,
		TokenManager: tokenManager,
		Dispatcher:   dispatcher,
	}, cfg.Auth.BcryptCost)
	provisionService := service.NewProvisionService(pool, userRepo, cfg.Auth.BcryptCost, logger)
	authMiddleware := auth.NewMiddleware(authService)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Profile:        handlers.NewProfileHandler(authService, cachedRepo),
		Provision:      handlers.NewProvisionHandler(provisionService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
