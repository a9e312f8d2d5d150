package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ordering/cmd"
	httpin "ordering/internal/adapters/in/http"
	kafkain "ordering/internal/adapters/in/kafka"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/outboxrepo"
	"ordering/internal/adapters/out/postgres/restaurantrepo"
	"ordering/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDatabase(configs)
	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	producer := app.CreateKafkaProducer()
	defer producer.Close()

	jobManager := jobs.NewJobManager(app.CreateOutboxRepository(), producer, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startConsumers(ctx, app, configs, logger)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                   goDotEnvVariable("HTTP_PORT"),
		DBHost:                     goDotEnvVariable("DB_HOST"),
		DBPort:                     goDotEnvVariable("DB_PORT"),
		DBUser:                     goDotEnvVariable("DB_USER"),
		DBPassword:                 goDotEnvVariable("DB_PASSWORD"),
		DBName:                     goDotEnvVariable("DB_NAME"),
		DBSslMode:                  goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:                  goDotEnvVariable("REDIS_ADDR"),
		KafkaHost:                  goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:         goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaPaymentResponseTopic:  goDotEnvVariable("KAFKA_PAYMENT_RESPONSE_TOPIC"),
		KafkaApprovalResponseTopic: goDotEnvVariable("KAFKA_APPROVAL_RESPONSE_TOPIC"),
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

func connectDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.ProductDTO{},
		&outboxrepo.MessageDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startConsumers(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	dispatcher := app.CreateKafkaDispatcher()
	brokers := []string{configs.KafkaHost}

	paymentConsumer := kafkain.NewConsumer(brokers, configs.KafkaConsumerGroup,
		configs.KafkaPaymentResponseTopic, dispatcher, logger)
	approvalConsumer := kafkain.NewConsumer(brokers, configs.KafkaConsumerGroup,
		configs.KafkaApprovalResponseTopic, dispatcher, logger)

	go func() {
		if err := paymentConsumer.Run(ctx); err != nil {
			logger.ErrorContext(ctx, "Payment response consumer stopped", "error", err)
		}
	}()

	go func() {
		if err := approvalConsumer.Run(ctx); err != nil {
			logger.ErrorContext(ctx, "Approval response consumer stopped", "error", err)
		}
	}()
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTrackOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
