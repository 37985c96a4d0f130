package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beerorders/cmd"
	httpin "beerorders/internal/adapters/in/http"
	"beerorders/internal/adapters/out/postgres/orderrepo"
	"beerorders/internal/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracerProvider, err := tracing.InitTracerProvider(ctx, configs.ServiceName, configs.OtlpEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	validationConsumer := app.CreateValidationResultConsumer()
	allocationConsumer := app.CreateAllocationResultConsumer()
	validationConsumer.Start(ctx)
	allocationConsumer.Start(ctx)

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := newWebServer(&app)
	go func() {
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("Web server stopped", "error", serveErr)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}

	jobManager.StopAll()
	validationConsumer.Stop()
	allocationConsumer.Stop()

	if err := app.Close(); err != nil {
		logger.Error("Failed to close outbound connections", "error", err)
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down tracing", "error", err)
	}
}

func newWebServer(app *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	server := httpin.NewServer(
		app.CreateSubmitOrderCommandHandler(),
		app.CreatePickUpOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	return e
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		KafkaHost:          goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup: goDotEnvVariable("KAFKA_CONSUMER_GROUP"),

		KafkaValidateOrderTopic:    goDotEnvVariable("KAFKA_VALIDATE_ORDER_TOPIC"),
		KafkaAllocateOrderTopic:    goDotEnvVariable("KAFKA_ALLOCATE_ORDER_TOPIC"),
		KafkaDeallocateOrderTopic:  goDotEnvVariable("KAFKA_DEALLOCATE_ORDER_TOPIC"),
		KafkaValidationFailedTopic: goDotEnvVariable("KAFKA_VALIDATION_FAILED_TOPIC"),
		KafkaAllocationFailedTopic: goDotEnvVariable("KAFKA_ALLOCATION_FAILED_TOPIC"),

		KafkaValidationResultTopic: goDotEnvVariable("KAFKA_VALIDATION_RESULT_TOPIC"),
		KafkaAllocationResultTopic: goDotEnvVariable("KAFKA_ALLOCATION_RESULT_TOPIC"),

		RedisAddr:       goDotEnvVariable("REDIS_ADDR"),
		BeerServiceHost: goDotEnvVariable("BEER_SERVICE_HOST"),

		OtlpEndpoint: goDotEnvVariable("OTLP_ENDPOINT"),
		ServiceName:  goDotEnvVariable("SERVICE_NAME"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}
