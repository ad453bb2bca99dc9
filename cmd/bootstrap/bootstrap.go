package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/config"
	deliveryHttp "github.com/rivergarden/training-backend/internal/delivery/http"
	"github.com/rivergarden/training-backend/internal/delivery/http/handler"
	"github.com/rivergarden/training-backend/internal/delivery/http/middleware"
	"github.com/rivergarden/training-backend/internal/infrastructure/cache"
	"github.com/rivergarden/training-backend/internal/infrastructure/database"
	"github.com/rivergarden/training-backend/internal/repository"
	"github.com/rivergarden/training-backend/internal/service"
	"github.com/rivergarden/training-backend/internal/usecase"
	"github.com/rivergarden/training-backend/pkg/jwt"
	"github.com/rivergarden/training-backend/pkg/validator"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
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

	// Run schema migrations
	if err := database.Migrate(db); err != nil {
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
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	courseRepo := repository.NewCourseRepository()
	enrollmentRepo := repository.NewEnrollmentRepository()
	certificateRepo := repository.NewCertificateRepository()
	assignmentRepo := repository.NewAssignmentRepository()
	notificationRepo := repository.NewNotificationRepository()

	// Initialize services
	notifier := service.NewNotificationService(log, notificationRepo)
	renderer := service.NewCertificateRenderer()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, cfg.Auth, userRepo, jwtService, redisClient)
	courseUsecase := usecase.NewCourseUsecase(db, log, courseRepo, enrollmentRepo)
	enrollmentUsecase := usecase.NewEnrollmentUsecase(db, log, enrollmentRepo, courseRepo, certificateRepo, notifier)
	certificateUsecase := usecase.NewCertificateUsecase(db, log, certificateRepo, userRepo, courseRepo, renderer)
	statsUsecase := usecase.NewStatsUsecase(db, log, enrollmentRepo)
	teamUsecase := usecase.NewTeamUsecase(db, log, userRepo, enrollmentRepo, courseRepo, notifier)
	supervisorUsecase := usecase.NewSupervisorUsecase(db, log, userRepo, assignmentRepo, enrollmentRepo, courseRepo, notifier)
	adminUsecase := usecase.NewAdminUsecase(db, log, userRepo, assignmentRepo)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	courseHandler := handler.NewCourseHandler(courseUsecase)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentUsecase, customValidator)
	certificateHandler := handler.NewCertificateHandler(certificateUsecase)
	statsHandler := handler.NewStatsHandler(statsUsecase)
	teamHandler := handler.NewTeamHandler(teamUsecase, customValidator)
	supervisorHandler := handler.NewSupervisorHandler(supervisorUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		courseHandler,
		enrollmentHandler,
		certificateHandler,
		statsHandler,
		teamHandler,
		supervisorHandler,
		adminHandler,
		notificationHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
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

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

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
