package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-eldercare-backend/config"
	deliveryHttp "go-eldercare-backend/internal/delivery/http"
	"go-eldercare-backend/internal/delivery/http/handler"
	"go-eldercare-backend/internal/delivery/http/middleware"
	"go-eldercare-backend/internal/infrastructure/cache"
	"go-eldercare-backend/internal/infrastructure/database"
	"go-eldercare-backend/internal/repository"
	"go-eldercare-backend/internal/service"
	"go-eldercare-backend/internal/usecase"
	"go-eldercare-backend/pkg/jwt"
	"go-eldercare-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Sweep       *service.ReminderSweepService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, sweep := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.Sweep = sweep

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server and the
// background reminder sweep
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.ReminderSweepService) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize cache and invalidation services
	cacheService := service.NewRedisCacheService(redisClient, log)
	invalidator := service.NewInvalidationService(cacheService, log)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	caregiverRepo := repository.NewCaregiverRepository()
	familyRepo := repository.NewFamilyRepository()
	medicationRepo := repository.NewMedicationRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	reminderRepo := repository.NewReminderRepository()
	reportRepo := repository.NewReportRepository()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, invalidator)
	caregiverUsecase := usecase.NewCaregiverUsecase(db, log, cacheService, caregiverRepo, invalidator)
	familyUsecase := usecase.NewFamilyUsecase(db, log, cacheService, familyRepo, invalidator)
	medicationUsecase := usecase.NewMedicationUsecase(db, log, patientRepo, medicationRepo, invalidator)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, patientRepo, caregiverRepo, appointmentRepo, invalidator)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, cacheService, patientRepo, medicationRepo, appointmentRepo, reminderRepo)
	aggregateUsecase := usecase.NewAggregateScheduleUsecase(db, log, cacheService, caregiverRepo, familyRepo, scheduleUsecase)
	reminderUsecase := usecase.NewReminderUsecase(db, log, reminderRepo, invalidator)
	adherenceUsecase := usecase.NewAdherenceUsecase(db, log, cacheService, reminderRepo)
	reportUsecase := usecase.NewReportUsecase(db, log, cacheService, reportRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	caregiverHandler := handler.NewCaregiverHandler(caregiverUsecase, aggregateUsecase, customValidator)
	familyHandler := handler.NewFamilyHandler(familyUsecase, aggregateUsecase, customValidator)
	medicationHandler := handler.NewMedicationHandler(medicationUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase)
	reminderHandler := handler.NewReminderHandler(reminderUsecase)
	adherenceHandler := handler.NewAdherenceHandler(adherenceUsecase)
	reportHandler := handler.NewReportHandler(reportUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		caregiverHandler,
		familyHandler,
		medicationHandler,
		appointmentHandler,
		scheduleHandler,
		reminderHandler,
		adherenceHandler,
		reportHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Initialize reminder sweep
	sweep := service.NewReminderSweepService(db, log, reminderRepo, invalidator, cfg.Sweep.Interval)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, sweep
}

// Run starts the HTTP server and the reminder sweep, then handles
// graceful shutdown
func (app *App) Run() {
	app.Sweep.Start()

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Stop the sweep before closing connections so an in-flight cycle can
	// finish against a live database
	app.Sweep.Stop()

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
