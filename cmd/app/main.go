package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schemamodel/cmd"
	"schemamodel/internal/adapters/out/postgres"
	"schemamodel/internal/core/application/augment"
	"schemamodel/internal/core/domain/model/record"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	opts, err := configs.AugmentOptions(logger)
	if err != nil {
		log.Fatalf("Invalid validation settings: %v", err)
	}

	catalog := record.NewCatalog()
	if configs.ModelsFile != "" {
		decls, err := cmd.LoadDeclarations(ctx, configs.ModelsFile, logger)
		if err != nil {
			log.Fatalf("Error loading models file: %v", err)
		}
		catalog.Replace(decls)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		catalog,
		augment.New(opts),
		logger,
	)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:             os.Getenv("HTTP_PORT"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            os.Getenv("DB_SSLMODE"),
		AppEnv:               os.Getenv("APP_ENV"),
		Validate:             os.Getenv("VALIDATE"),
		UseDefaults:          os.Getenv("USE_DEFAULTS"),
		ValidationPolicy:     os.Getenv("VALIDATION_POLICY"),
		ModelsFile:           os.Getenv("MODELS_FILE"),
		ModelsReloadSchedule: os.Getenv("MODELS_RELOAD_SCHEDULE"),
		AuditSchedule:        os.Getenv("AUDIT_SCHEDULE"),
	}
	return config
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) {
	e := app.CreateRouter()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdown(e)
}

func shutdown(e *echo.Echo) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Error(err)
	}
}
