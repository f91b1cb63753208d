package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"hatid/cmd"
	httpadapter "hatid/internal/adapters/in/http"
	"hatid/internal/adapters/out/postgres"
	"hatid/internal/adapters/out/rabbitmq"
	"hatid/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)
	migrateDB(db)

	publisher, err := rabbitmq.NewPublisher(configs.RabbitMQURL, configs.NotificationExchange)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	app := cmd.NewCompositionRoot(configs, db, publisher)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL:          goDotEnvVariable("RABBITMQ_URL"),
		NotificationExchange: goDotEnvVariable("NOTIFICATION_EXCHANGE"),
		MaxPendingAge:        parsePendingAge(goDotEnvVariable("MAX_PENDING_AGE")),
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

func parsePendingAge(raw string) time.Duration {
	if raw == "" {
		return 30 * time.Minute
	}

	age, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid MAX_PENDING_AGE: %v", err)
	}
	return age
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps unique violations to gorm.ErrDuplicatedKey, which
	// the rating repository relies on.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	if err := postgres.AutoMigrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateAssignDeliveryCommandHandler(),
		app.CreateExpireStaleOrdersCommandHandler(),
		configs.MaxPendingAge,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateProgressOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAssignDeliveryCommandHandler(),
		app.CreateProgressDeliveryCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateSubmitRatingCommandHandler(),
		app.CreateSetRiderAvailabilityCommandHandler(),
		app.CreateOpenTicketCommandHandler(),
		app.CreateProgressTicketCommandHandler(),
		app.CreatePostTicketMessageCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetAvailableRidersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
