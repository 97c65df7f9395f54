package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"shiptracker/cmd"
	httpin "shiptracker/internal/adapters/in/http"
	"shiptracker/internal/adapters/out/postgres/historyrepo"
	"shiptracker/internal/adapters/out/postgres/shipmentrepo"
	"shiptracker/internal/jobs"
	"shiptracker/pkg/logger"
	"shiptracker/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	appLogger := logger.NewLogger(configs.IsDevelopment())
	appMetrics := metrics.NewMetrics("shiptracker")

	gormDB, err := connectDB(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateGetStaleShipmentsQueryHandler(),
		time.Duration(configs.StaleAfterHours)*time.Hour,
		configs.StaleScanCron,
		appMetrics,
		appLogger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, appMetrics, appLogger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		AppEnv:          goDotEnvVariable("APP_ENV"),
		AdminAPIToken:   goDotEnvVariable("ADMIN_API_TOKEN"),
		StaleAfterHours: goDotEnvVariableAsInt("STALE_AFTER_HOURS", 24),
		StaleScanCron:   goDotEnvVariable("STALE_SCAN_CRON"),
	}
	if config.StaleScanCron == "" {
		config.StaleScanCron = "*/15 * * * *"
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

func goDotEnvVariableAsInt(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer value for %s: %v", key, err)
	}
	return value
}

func connectDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	// TranslateError maps driver errors to gorm sentinels so the adapters can
	// classify duplicate-key and foreign-key violations.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err = gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &historyrepo.HistoryDTO{}); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, m *metrics.Metrics, appLogger logger.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.Use(httpin.RequestLogging(appLogger, m))

	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentCommandHandler(),
		app.CreateChangeShipmentStatusCommandHandler(),
		app.CreateDeleteShipmentCommandHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateListShipmentsQueryHandler(),
		app.CreateSearchShipmentsQueryHandler(),
		app.CreateTrackShipmentQueryHandler(),
		m,
		configs.IsDevelopment(),
	)
	server.RegisterRoutes(e, configs.AdminAPIToken)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
