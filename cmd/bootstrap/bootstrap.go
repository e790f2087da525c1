package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management/config"
	deliveryHttp "hospital-management/internal/delivery/http"
	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"
	domainRepo "hospital-management/internal/domain/repository"
	"hospital-management/internal/infrastructure/cache"
	"hospital-management/internal/infrastructure/database"
	"hospital-management/internal/repository"
	"hospital-management/internal/repository/memory"
	"hospital-management/internal/service"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	MemoryStore *memory.Store
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(configPath string) (*App, error) {
	app := &App{}

	// Setup logger
	log := setupLogger()
	app.Log = log

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	applyLogLevel(log, cfg.Log.Level)
	log.Info("Configuration loaded successfully")

	store, err := app.openStore()
	if err != nil {
		app.Close()
		return nil, err
	}

	keyLock, err := app.openKeyLock()
	if err != nil {
		app.Close()
		return nil, err
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log, store, keyLock)

	return app, nil
}

// Migrate loads the configuration, connects to PostgreSQL and moves the
// schema up or down.
func Migrate(configPath string, up bool) error {
	log := setupLogger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyLogLevel(log, cfg.Log.Level)

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB(db)

	if up {
		return database.MigrateUp(db)
	}
	return database.MigrateDown(db)
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	return logrus.StandardLogger()
}

func applyLogLevel(log *logrus.Logger, level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, keeping %s", level, log.GetLevel())
		return
	}
	log.SetLevel(lvl)
}

func (app *App) openStore() (domainRepo.Store, error) {
	cfg := app.Config

	if cfg.Store.Driver == config.StoreDriverMemory {
		app.MemoryStore = memory.NewStore()
		app.Log.Info("Using in-memory store")
		return app.MemoryStore, nil
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.MigrateUp(db); err != nil {
			return nil, err
		}
	}

	return repository.NewStore(db), nil
}

func (app *App) openKeyLock() (service.KeyLock, error) {
	cfg := app.Config

	if cfg.Lock.Driver != config.LockDriverRedis {
		return service.NewLocalKeyLock(), nil
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.Log.Info("Redis connected successfully")

	return service.NewRedisKeyLock(redisClient, app.Log, cfg.Lock.TTL), nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, store domainRepo.Store, keyLock service.KeyLock) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize services
	auditService := service.NewAuditService(log)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(store, log, auditService, keyLock)
	patientUsecase := usecase.NewPatientUsecase(store, log, auditService, keyLock)
	appointmentUsecase := usecase.NewAppointmentUsecase(store, log, auditService, keyLock)
	billUsecase := usecase.NewBillUsecase(store, log, auditService, keyLock)
	auditLogUsecase := usecase.NewAuditLogUsecase(store, log)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	billHandler := handler.NewBillHandler(billUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)
	requestIDMiddleware := middleware.NewRequestIDMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		doctorHandler,
		patientHandler,
		appointmentHandler,
		billHandler,
		auditLogHandler,
		corsMiddleware,
		requestIDMiddleware,
		loggingMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s, store: %s, lock: %s", app.Config.App.Env, app.Config.Store.Driver, app.Config.Lock.Driver)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close releases the store and the redis connection, whichever were opened.
func (app *App) Close() {
	if app.DB != nil {
		closeDB(app.DB)
	}

	if app.MemoryStore != nil {
		app.MemoryStore.Close()
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}
}
