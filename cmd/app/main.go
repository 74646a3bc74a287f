package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"medpanda/cmd"
	httpadapter "medpanda/internal/adapters/in/http"
	"medpanda/internal/adapters/out/postgres/cartrepo"
	"medpanda/internal/adapters/out/postgres/courierrepo"
	"medpanda/internal/adapters/out/postgres/medicinerepo"
	"medpanda/internal/adapters/out/postgres/orderrepo"
	"medpanda/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetStaleBroadcastsQueryHandler(),
		staleBroadcastAge(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
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
		StaleBroadcastMinutes: goDotEnvVariable("STALE_BROADCAST_MINUTES"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&medicinerepo.MedicineDTO{},
		&courierrepo.CourierDTO{},
		&courierrepo.DeliveryRequestDTO{},
		&cartrepo.CartLineDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func staleBroadcastAge(configs cmd.Config) time.Duration {
	minutes, err := strconv.Atoi(configs.StaleBroadcastMinutes)
	if err != nil || minutes <= 0 {
		minutes = 15
	}
	return time.Duration(minutes) * time.Minute
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateAddToCartCommandHandler(),
		app.CreateUpdateCartCommandHandler(),
		app.CreateCheckoutCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateBroadcastDeliveryCommandHandler(),
		app.CreateAcceptDeliveryRequestCommandHandler(),
		app.CreateRejectDeliveryRequestCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateSetOrderStatusCommandHandler(),
		app.CreateRateDeliveryCommandHandler(),
		app.CreateReorderCommandHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetPendingRequestsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
