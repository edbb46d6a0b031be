package main

import (
	"log"
	"os"
	"time"

	"github.com/fleetops/shipsight/internal/pkg/config"
	"github.com/fleetops/shipsight/internal/pkg/health"
	"github.com/fleetops/shipsight/internal/pkg/logger"
	"github.com/fleetops/shipsight/internal/pkg/middleware"
	"github.com/fleetops/shipsight/internal/pkg/server"
	"github.com/fleetops/shipsight/services/dashboard/handler"
	dashhttp "github.com/fleetops/shipsight/services/dashboard/handler/http"
	"github.com/fleetops/shipsight/services/dashboard/repository"
	"github.com/fleetops/shipsight/services/dashboard/usecase"
	"github.com/labstack/echo/v4"
)

func main() {
	appName := "dashboard-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/dashboard.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Load the shipment datasets; a missing or malformed file aborts startup
	datasetRepo, err := repository.NewDatasetRepo(configs)
	if err != nil {
		zapLogger.Fatal("Failed to load datasets", logger.Err(err))
	}

	// Initialize UseCase
	dashboardUC := usecase.NewDashboardUC(datasetRepo, configs)

	// Initialize handlers
	dashboardHandler := dashhttp.NewDashboardHandler(dashboardUC)
	Handler := handler.NewHandler(dashboardHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, datasetRepo)

	// Register service routes
	Handler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}
