package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	_ "github.com/shenikar/cpr_dispatch/docs"
	"github.com/shenikar/cpr_dispatch/internal/config"
	"github.com/shenikar/cpr_dispatch/internal/events"
	v1 "github.com/shenikar/cpr_dispatch/internal/handler/http/v1"
	"github.com/shenikar/cpr_dispatch/internal/repository"
	"github.com/shenikar/cpr_dispatch/internal/seed"
	"github.com/shenikar/cpr_dispatch/internal/service"
	"github.com/shenikar/cpr_dispatch/internal/webhook"
	"github.com/shenikar/cpr_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/cpr_dispatch/pkg/redis"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	shutdownTimeout = 5 * time.Second
	sessionFeedSize = 64
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := loadEnv()
			if err != nil {
				return err
			}

			// Контекст для graceful shutdown
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	// Redis необязателен: без него кэш, релей событий и вебхуки отключены
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		var err error
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Инициализация репозиториев
	requestRepo, closeRepo, err := newRequestRepository(ctx, cfg, log, redisClient)
	if err != nil {
		return err
	}
	defer closeRepo()

	initial, err := seed.Load(cfg.SeedFile, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}
	if err := requestRepo.Seed(ctx, initial); err != nil {
		return fmt.Errorf("failed to seed ledger: %w", err)
	}
	log.WithField("requests", len(initial)).Info("Ledger seeded")

	var deskStore service.DeskStore = repository.NewMemoryDeskStore()
	if redisClient != nil {
		deskStore = repository.NewRedisDeskStore(redisClient, cfg.DeskTTL)
	}

	// События: локальная шина, релей между экземплярами и очередь вебхуков
	bus := events.NewBus(log)
	publishers := events.Fanout{}
	if redisClient != nil {
		relay := events.NewRedisRelay(redisClient, bus, log)
		relay.Start(ctx)
		publishers = append(publishers, relay)
	} else {
		publishers = append(publishers, bus)
	}
	if cfg.WebhookURL != "" {
		publishers = append(publishers, webhook.NewRedisWebhookPublisher(redisClient))
		webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	}

	// Инициализация сервисов
	ledgerService := service.NewLedgerService(requestRepo, publishers, log)
	sessionService := service.NewSessionService(ledgerService, log)
	deskService := service.NewDeskService(deskStore, ledgerService, log, cfg.DefaultETAMinutes)

	feed, unsubscribe := bus.Subscribe(sessionFeedSize)
	defer unsubscribe()
	go sessionService.Run(ctx, feed)

	// Инициализация хэндлеров
	handler := v1.NewHandler(ledgerService, sessionService, deskService, bus, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	handler.RegisterRoutes(router.Group("/api/v1"))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	select {
	case err := <-serverErr:
		return fmt.Errorf("error starting HTTP server: %w", err)
	case <-ctx.Done():
	}
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server gracefully stopped")
	return nil
}

// newRequestRepository выбирает хранилище реестра по STORAGE_DRIVER
func newRequestRepository(ctx context.Context, cfg *config.Config, log *logrus.Logger, redisClient *redis.Client) (service.RequestRepository, func(), error) {
	if cfg.StorageDriver != config.StoragePostgres {
		log.Info("Using in-memory ledger")
		return repository.NewMemoryRequestRepository(), func() {}, nil
	}

	log.Info("Running database migrations...")
	if err := postgres.Migrate(cfg.MigrationsPath, cfg.DatabaseURL, false); err != nil {
		return nil, nil, err
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Successfully connected to PostgreSQL")

	return repository.NewPostgresRequestRepository(dbpool, redisClient, cfg.CacheTTL), dbpool.Close, nil
}
