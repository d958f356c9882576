package main

import (
	"fmt"
	"log/slog"
	"os"

	"ruralcart/cmd"
	_ "ruralcart/docs"
	adapterhttp "ruralcart/internal/adapters/in/http"
	"ruralcart/internal/adapters/out/postgres/custodyrepo"
	"ruralcart/internal/adapters/out/postgres/driverrepo"
	"ruralcart/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			RuralCart API
//	@version		1.0
//	@description	Multi-role logistics marketplace for rural communities.
//	@BasePath		/

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	migrateDB(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		LineChannelToken: os.Getenv("LINE_CHANNEL_TOKEN"),
		LineAPIBase:      os.Getenv("LINE_API_BASE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&driverrepo.DriverDTO{},
		&driverrepo.AvailabilityDTO{},
		&custodyrepo.RecordDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	server := adapterhttp.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateAcceptOrderCommandHandler(),
		root.CreateTransferOrderCommandHandler(),
		root.CreateCompleteOrderCommandHandler(),
		root.CreateRegisterDriverCommandHandler(),
		root.CreateDeclareAvailabilityCommandHandler(),
		root.CreateRemoveAvailabilityCommandHandler(),
		root.CreateGetBuyerOrdersQueryHandler(),
		root.CreateGetSellerOrdersQueryHandler(),
		root.CreateGetDriverOrdersQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetDriverQueryHandler(),
		root.CreateGetAvailabilityQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
