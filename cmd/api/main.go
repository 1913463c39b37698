package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/rumman321/e-Commerce-server/internal/api/http"
	"github.com/rumman321/e-Commerce-server/internal/api/http/handlers"
	"github.com/rumman321/e-Commerce-server/internal/auth"
	"github.com/rumman321/e-Commerce-server/internal/config"
	"github.com/rumman321/e-Commerce-server/internal/events"
	"github.com/rumman321/e-Commerce-server/internal/observability"
	"github.com/rumman321/e-Commerce-server/internal/persistence"
	"github.com/rumman321/e-Commerce-server/internal/repository"
	"github.com/rumman321/e-Commerce-server/internal/service"
	"github.com/rumman321/e-Commerce-server/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	plantRepo := repository.NewPlantRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	txRunner := repository.NewTxRunner(pool)

	roleCache := auth.NewRoleCache(redis.Client, cfg.Auth.RoleCacheTTL())
	authority := auth.NewRoleAuthority(userRepo, roleCache)
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLDays)
	sessionMiddleware := auth.NewSessionMiddleware(tokenManager)
	cookieSettings := auth.CookieSettingsForEnv(cfg.App.IsProduction())

	dispatcher := events.NewInMemoryDispatcher()

	userService := service.NewUserService(*cfg, service.UserDependencies{
		UserRepo:   userRepo,
		Authority:  authority,
		Dispatcher: dispatcher,
	})
	catalogService := service.NewCatalogService(plantRepo, dispatcher)
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:  orderRepo,
		Tx:         txRunner,
		Dispatcher: dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, pg, redis),
		Users:     handlers.NewUsersHandler(userService),
		Session:   handlers.NewSessionHandler(tokenManager, userService, cookieSettings),
		Plants:    handlers.NewPlantsHandler(catalogService),
		Orders:    handlers.NewOrdersHandler(orderService),
		Sessions:  sessionMiddleware,
		Authority: authority,
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
