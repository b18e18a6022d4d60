package main

import (
	"fmt"
	"log/slog"
	"os"

	"zapshift/cmd"
	httpadapter "zapshift/internal/adapters/in/http"
	"zapshift/internal/adapters/out/auth"
	"zapshift/internal/adapters/out/postgres/parcelrepo"
	"zapshift/internal/adapters/out/postgres/paymentrepo"
	"zapshift/internal/adapters/out/postgres/riderrepo"
	"zapshift/internal/adapters/out/postgres/trackingrepo"
	"zapshift/internal/adapters/out/postgres/userrepo"
	"zapshift/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateReconcileRiderAvailabilityCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
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
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&riderrepo.RiderDTO{},
		&userrepo.UserDTO{},
		&paymentrepo.PaymentDTO{},
		&trackingrepo.TrackingEventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	verifier, err := auth.NewJWTVerifier(configs.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to create token verifier: %v", err)
	}

	server := httpadapter.NewServer(
		verifier,
		httpadapter.CommandHandlers{
			CreateParcel:   app.CreateCreateParcelCommandHandler(),
			AssignRider:    app.CreateAssignRiderCommandHandler(),
			PickupParcel:   app.CreatePickupParcelCommandHandler(),
			DeliverParcel:  app.CreateDeliverParcelCommandHandler(),
			CashoutParcel:  app.CreateCashoutParcelCommandHandler(),
			DeleteParcel:   app.CreateDeleteParcelCommandHandler(),
			RecordPayment:  app.CreateRecordPaymentCommandHandler(),
			ApplyRider:     app.CreateApplyRiderCommandHandler(),
			SetRiderStatus: app.CreateSetRiderStatusCommandHandler(),
			RegisterUser:   app.CreateRegisterUserCommandHandler(),
			SetUserRole:    app.CreateSetUserRoleCommandHandler(),
			AppendTracking: app.CreateAppendTrackingCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetParcels:            app.CreateGetParcelsQueryHandler(),
			GetParcel:             app.CreateGetParcelQueryHandler(),
			DeliveryStatusCounts:  app.CreateGetDeliveryStatusCountsQueryHandler(),
			PaymentStatusCounts:   app.CreateGetPaymentStatusCountsQueryHandler(),
			RidersByStatus:        app.CreateGetRidersByStatusQueryHandler(),
			AvailableRiders:       app.CreateGetAvailableRidersQueryHandler(),
			RiderParcels:          app.CreateGetRiderParcelsQueryHandler(),
			RiderCompletedParcels: app.CreateGetRiderCompletedParcelsQueryHandler(),
			GetPayments:           app.CreateGetPaymentsQueryHandler(),
			TrackingHistory:       app.CreateGetTrackingHistoryQueryHandler(),
			UserRole:              app.CreateGetUserRoleQueryHandler(),
			SearchUsers:           app.CreateSearchUsersQueryHandler(),
		},
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
