package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"psych-portal-api/config"
	deliveryHttp "psych-portal-api/internal/delivery/http"
	"psych-portal-api/internal/delivery/http/handler"
	"psych-portal-api/internal/delivery/http/middleware"
	"psych-portal-api/internal/infrastructure/cache"
	"psych-portal-api/internal/infrastructure/database"
	"psych-portal-api/internal/infrastructure/oauth"
	"psych-portal-api/internal/repository"
	"psych-portal-api/internal/service"
	"psych-portal-api/internal/usecase"
	"psych-portal-api/pkg/oauthstate"
	"psych-portal-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// sweepInterval is how often expired session rows are purged.
const sweepInterval = time.Hour

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Sessions    service.SessionService

	stopSweep chan struct{}
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

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database schema up to date")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, sessionService := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.Sessions = sessionService
	app.stopSweep = make(chan struct{})

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, service.SessionService) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize OAuth plumbing
	googleClient := oauth.NewGoogleClient(cfg.Google)
	stateService := oauthstate.NewService(cfg.Session)

	// Initialize repositories
	professionalRepo := repository.NewProfessionalRepository()
	patientRepo := repository.NewPatientRepository()
	contactRepo := repository.NewFamilyContactRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	sessionRepo := repository.NewSessionRepository()
	authSessionRepo := repository.NewAuthSessionRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	sessionService := service.NewSessionService(db, log, redisClient, authSessionRepo, cfg.Session.Expiry)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, professionalRepo, auditService)
	professionalUsecase := usecase.NewProfessionalUsecase(db, log, professionalRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, contactRepo, appointmentRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, sessionRepo, auditService)
	sessionUsecase := usecase.NewSessionUsecase(db, log, sessionRepo, appointmentRepo, auditService)
	adminUsecase := usecase.NewAdminUsecase(db, log, professionalRepo, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, sessionService, googleClient, stateService, cfg, log)
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	sessionHandler := handler.NewSessionHandler(sessionUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(db, sessionService, professionalRepo)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		professionalHandler,
		patientHandler,
		appointmentHandler,
		sessionHandler,
		adminHandler,
		sessionMiddleware,
		cfg.App.ClientURL,
		log,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
	return server, sessionService
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Purge expired session rows in the background
	go app.runSessionSweep()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// runSessionSweep deletes expired HTTP session rows on a fixed interval
// until shutdown.
func (app *App) runSessionSweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := app.Sessions.PurgeExpired(context.Background()); err != nil {
				logrus.Warnf("Session sweep failed: %v", err)
			}
		case <-app.stopSweep:
			return
		}
	}
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	close(app.stopSweep)

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
