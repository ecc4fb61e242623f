package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"
	"github.com/google/uuid"

	"github.com/clientbook/clientbook/config"
	"github.com/clientbook/clientbook/internal/database"
	"github.com/clientbook/clientbook/internal/domain"
	"github.com/clientbook/clientbook/internal/repository"
	"github.com/clientbook/clientbook/internal/service"
	"github.com/clientbook/clientbook/pkg/logger"
	"github.com/clientbook/clientbook/pkg/tracing"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed by commands and tests
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetDB() *sql.DB
	GetRunID() string
	GetClientRepository() domain.ClientRepository
	GetClientService() domain.ClientService

	// Methods for initialization steps
	InitTracing() error
	InitDB() error
	InitRepositories() error
	InitServices() error
}

// App encapsulates the application dependencies and lifecycle
type App struct {
	config *config.Config
	logger logger.Logger
	runID  string

	db        *sql.DB
	stopStats func()

	clientRepo    domain.ClientRepository
	clientService domain.ClientService
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use an already opened database, skipping InitDB
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	app := &App{
		config: cfg,
		logger: newLogger(cfg),
		runID:  uuid.New().String(),
	}

	for _, opt := range opts {
		opt(app)
	}

	// Every line logged during this run can be correlated
	app.logger = app.logger.WithField("run_id", app.runID)

	return app
}

func newLogger(cfg *config.Config) logger.Logger {
	if cfg.IsDevelopment() {
		return logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)
	}
	return logger.NewLoggerWithLevel(cfg.LogLevel)
}

// InitTracing initializes OpenCensus tracing
func (a *App) InitTracing() error {
	tracingConfig := &a.config.Tracing

	if err := tracing.InitTracing(tracingConfig, a.logger); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if tracingConfig.Enabled {
		a.logger.WithField("trace_exporter", tracingConfig.TraceExporter).
			WithField("metrics_exporter", tracingConfig.MetricsExporter).
			WithField("sampling_rate", tracingConfig.SamplingProbability).
			Info("Tracing initialized successfully")
	}

	return nil
}

// InitDB initializes the database connection
func (a *App) InitDB() error {
	dbConfig := &a.config.Database

	password := dbConfig.Password
	maskedPassword := ""
	if len(password) > 0 {
		maskedPassword = fmt.Sprintf("%c...%c", password[0], password[len(password)-1])
	}
	a.logger.Debug(fmt.Sprintf("Connecting to database %s:%d, user %s, sslmode %s, password: %s, dbname: %s", dbConfig.Host, dbConfig.Port, dbConfig.User, dbConfig.SSLMode, maskedPassword, dbConfig.DBName))

	if dbConfig.CreateIfMissing {
		if err := database.EnsureDatabaseExists(dbConfig); err != nil {
			a.logger.Error(err.Error())
			return fmt.Errorf("failed to ensure database exists: %w", err)
		}
		a.logger.Debug("Database existence check completed")
	}

	// If tracing is enabled, wrap the postgres driver
	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := database.Connect(dbConfig, driverName)
	if err != nil {
		return err
	}

	if a.config.Tracing.Enabled && a.config.Tracing.MetricsExporter != "" && a.config.Tracing.MetricsExporter != "none" {
		a.stopStats = ocsql.RecordStats(db, 5*time.Second)
	}

	a.db = db
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database is not initialized")
	}

	a.clientRepo = repository.NewClientRepository(a.db)
	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	if a.clientRepo == nil {
		return fmt.Errorf("repositories are not initialized")
	}

	a.clientService = service.NewClientService(a.clientRepo, a.logger)
	return nil
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Debug("Starting clientbook")

	if err := a.InitTracing(); err != nil {
		return err
	}

	if a.db == nil {
		if err := a.InitDB(); err != nil {
			return err
		}
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	a.logger.Debug("Application successfully initialized")
	return nil
}

// Shutdown releases the database and flushes telemetry
func (a *App) Shutdown(ctx context.Context) error {
	var closeErr error

	if a.stopStats != nil {
		a.stopStats()
		a.stopStats = nil
	}

	if a.db != nil {
		a.logger.Debug("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error closing database connection")
			closeErr = fmt.Errorf("failed to close database: %w", err)
		}
		a.db = nil
	}

	done := make(chan struct{})
	go func() {
		tracing.Flush()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		a.logger.Warn("Timed out flushing telemetry")
	}

	return closeErr
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetDB returns the database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

// GetRunID returns the id attached to every log line of this run
func (a *App) GetRunID() string {
	return a.runID
}

func (a *App) GetClientRepository() domain.ClientRepository {
	return a.clientRepo
}

func (a *App) GetClientService() domain.ClientService {
	return a.clientService
}
