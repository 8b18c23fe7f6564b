package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/barengan/internal/pkg/config"
	"github.com/piresc/barengan/internal/pkg/database"
	"github.com/piresc/barengan/internal/pkg/health"
	"github.com/piresc/barengan/internal/pkg/logger"
	"github.com/piresc/barengan/internal/pkg/metrics"
	"github.com/piresc/barengan/internal/pkg/middleware"
	natspkg "github.com/piresc/barengan/internal/pkg/nats"
	nrpkg "github.com/piresc/barengan/internal/pkg/newrelic"
	"github.com/piresc/barengan/internal/pkg/server"
	"github.com/piresc/barengan/services/matching/gateway"
	"github.com/piresc/barengan/services/matching/handler"
	"github.com/piresc/barengan/services/matching/repository"
	"github.com/piresc/barengan/services/matching/usecase"
)

func main() {
	configPath := "config/matcher.env"
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("logger", func(context.Context) error {
		return zapLogger.Close()
	})
	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register("redis", func(context.Context) error {
		return redisClient.Close()
	})

	// Initialize NATS and the intake stream
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})

	setupCtx, setupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := natsClient.EnsureStream(setupCtx, natspkg.IntakeStreamConfig(configs.Intake)); err != nil {
		logger.Fatal("Failed to ensure intake stream", logger.Err(err))
	}
	consumer, err := natsClient.EnsureConsumer(setupCtx, natspkg.IntakeConsumerConfig(configs.Intake))
	if err != nil {
		logger.Fatal("Failed to ensure intake consumer", logger.Err(err))
	}
	setupCancel()

	matchingRepo := repository.NewMatchingRepository(configs, postgresClient, redisClient)
	matchingGW := gateway.NewMatchingGW(natsClient, configs.Intake.Subject)
	matchingUC := usecase.NewMatchingUC(configs, matchingRepo, matchingGW)

	h := handler.NewHandler(matchingUC, natspkg.NewPullConsumer(consumer), configs, nrApp)

	e := echo.New()
	e.HideBanner = true
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if configs.Metrics.Enabled {
		e.Use(metrics.EchoMiddleware())
		e.GET(configs.Metrics.Path, metrics.Handler())
	}

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, configs.App.Name, configs.App.Version, healthService)

	h.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h.StartWorkers(ctx)

	runErr := server.NewGracefulServer(e, zapLogger, configs.Server).Run(ctx)
	stop()
	h.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.Server.ShutdownTimeout)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	if runErr != nil {
		log.Fatalf("Matcher stopped: %v", runErr)
	}
}
