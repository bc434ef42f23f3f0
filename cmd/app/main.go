package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"dragonpath/cmd"
	httpadapter "dragonpath/internal/adapters/in/http"
	"dragonpath/internal/adapters/out/postgres/orderrepo"
	"dragonpath/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultEscrowAutoReleaseDays = 7

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		EscrowAutoReleaseDays: escrowAutoReleaseDays(),
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

func escrowAutoReleaseDays() int {
	raw := goDotEnvVariable("ESCROW_AUTO_RELEASE_DAYS")
	if raw == "" {
		return defaultEscrowAutoReleaseDays
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		log.Fatalf("ESCROW_AUTO_RELEASE_DAYS must be a positive integer, got %q", raw)
	}
	return days
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.MilestoneDTO{},
		&orderrepo.EvidencePhotoDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateReleaseDueEscrowsCommandHandler(),
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateReleaseEscrowCommandHandler(),
		app.CreateRecordMilestoneCommandHandler(),
		app.CreateAttachConditionEvidenceCommandHandler(),
		app.CreateConfirmLogisticsReceiptCommandHandler(),
		app.CreateGetUserOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
