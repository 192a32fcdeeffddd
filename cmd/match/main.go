package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/config"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/database"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/health"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/logger"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/middleware"
	natspkg "github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/nats"
	nrpkg "github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/newrelic"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/retry"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/server"
	driverGateway "github.com/AnthonyPaton1/taxi-booking-app-sub003/services/drivers/gateway"
	driverHandler "github.com/AnthonyPaton1/taxi-booking-app-sub003/services/drivers/handler"
	driverRepository "github.com/AnthonyPaton1/taxi-booking-app-sub003/services/drivers/repository"
	driverUsecase "github.com/AnthonyPaton1/taxi-booking-app-sub003/services/drivers/usecase"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/cache"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/engine"
	matchHandler "github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/handler"
	matchRepository "github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/repository"
	matchUsecase "github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/usecase"
)

func main() {
	appName := "match-service"
	configPath := "config/match.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("instance_id", configs.App.InstanceID),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize repositories
	driverRepo := driverRepository.NewDriverRepository(postgresClient.GetDB())
	bookingRepo := matchRepository.NewBookingRepository(postgresClient.GetDB())

	// Initialize matching engine and cache
	ranker := engine.NewRanker(engine.NewScorer(engine.ScoringConfigFromModel(configs.Match)))

	var store cache.Store
	var memoryStore *cache.MemoryStore
	if configs.Cache.Backend == "memory" {
		memoryStore = cache.NewMemoryStore(configs.Cache.MaxEntries)
		memoryStore.StartSweeper(time.Duration(configs.Cache.SweepSeconds) * time.Second)
		store = memoryStore
	} else {
		store = cache.NewRedisStore(redisClient.GetClient(), time.Duration(configs.Cache.TTLSeconds)*time.Second)
	}
	logger.Info("Match cache configured", logger.String("backend", configs.Cache.Backend))

	matchCache := cache.New(store, ranker, cache.ConfigFromModel(configs.Cache))

	// Initialize usecases
	matchUC := matchUsecase.NewMatchUC(configs, driverRepo, bookingRepo, matchCache)
	driverUC := driverUsecase.NewDriverUC(configs, driverRepo,
		driverGateway.NewDriverGW(natsClient), matchUC, retry.NewWithDefaults())

	// Initialize handlers
	matchHandlers := matchHandler.NewHandler(matchUC, natsClient, nrApp, redisClient, configs)
	driverHandlers := driverHandler.NewHandler(driverUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger, appName))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewService()
	healthService.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthService.AddChecker("nats", health.CheckerFunc(natsClient.Ping))
	health.RegisterHealthEndpoints(e, appName, healthService)

	// Register service routes
	apiKeyValidator := middleware.NewAPIKeyValidator(configs.APIKeys)
	matchHandlers.RegisterRoutes(e, apiKeyValidator)
	driverHandlers.RegisterRoutes(e, apiKeyValidator)

	// Initialize NATS consumers
	if err := matchHandlers.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	srv := server.NewGracefulServer(e, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	// Released newest first once the HTTP server has stopped
	components := srv.Components()
	components.Register("logger", func(context.Context) error {
		return zapLogger.Close()
	})
	if nrApp != nil {
		components.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}
	components.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})
	components.Register("redis", func(context.Context) error {
		return redisClient.Close()
	})
	if memoryStore != nil {
		components.Register("match-cache", func(context.Context) error {
			return memoryStore.Close()
		})
	}
	components.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	components.Register("nats-consumers", func(context.Context) error {
		matchHandlers.Close()
		return nil
	})

	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.String("app", appName), logger.Err(err))
	}
}
