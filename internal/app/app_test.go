package app

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientbook/clientbook/config"
	"github.com/clientbook/clientbook/internal/service"
	"github.com/clientbook/clientbook/pkg/logger"
	pkgmocks "github.com/clientbook/clientbook/pkg/mocks"
)

// Helper function to create a test configuration
func createTestConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		LogLevel:    "debug",
		Version:     config.VERSION,
		Database: config.DatabaseConfig{
			User:     "postgres_test",
			Password: "postgres_test",
			Host:     "localhost",
			Port:     1,
			DBName:   "clients_test",
			SSLMode:  "disable",
		},
	}
}

func TestNewApp(t *testing.T) {
	cfg := createTestConfig()

	app := NewApp(cfg)
	assert.NotNil(t, app)
	assert.Equal(t, cfg, app.GetConfig())
	assert.NotNil(t, app.GetLogger())
	assert.Nil(t, app.GetDB())

	_, err := uuid.Parse(app.GetRunID())
	assert.NoError(t, err)

	// Custom options
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := pkgmocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().WithField("run_id", gomock.Any()).Return(mockLogger)

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	app = NewApp(cfg, WithLogger(mockLogger), WithMockDB(mockDB))

	assert.Equal(t, mockLogger, app.GetLogger())
	assert.Equal(t, mockDB, app.GetDB())
}

func TestNewLogger(t *testing.T) {
	cfg := createTestConfig()
	assert.NotNil(t, newLogger(cfg))

	cfg.Environment = "development"
	assert.NotNil(t, newLogger(cfg))

	app := NewApp(cfg)
	assert.NotNil(t, app.GetLogger())
}

func TestNewApp_RunIDsDiffer(t *testing.T) {
	cfg := createTestConfig()

	first := NewApp(cfg, WithLogger(logger.NewTestLogger(t)))
	second := NewApp(cfg, WithLogger(logger.NewTestLogger(t)))
	assert.NotEqual(t, first.GetRunID(), second.GetRunID())
}

func TestAppInitRepositories(t *testing.T) {
	t.Run("requires a database", func(t *testing.T) {
		app := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t)))

		err := app.InitRepositories()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is not initialized")
	})

	t.Run("creates the client repository", func(t *testing.T) {
		mockDB, _, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDB.Close()

		app := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t)), WithMockDB(mockDB))

		require.NoError(t, app.InitRepositories())
		assert.NotNil(t, app.GetClientRepository())
	})
}

func TestAppInitServices(t *testing.T) {
	t.Run("requires repositories", func(t *testing.T) {
		app := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t)))

		err := app.InitServices()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repositories are not initialized")
	})

	t.Run("creates the client service", func(t *testing.T) {
		mockDB, _, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDB.Close()

		app := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t)), WithMockDB(mockDB))
		require.NoError(t, app.InitRepositories())
		require.NoError(t, app.InitServices())

		assert.IsType(t, &service.ClientService{}, app.GetClientService())
	})
}

func TestApp_Initialize(t *testing.T) {
	t.Run("with injected database", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDB.Close()

		app := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t)), WithMockDB(mockDB))

		require.NoError(t, app.Initialize())
		assert.NotNil(t, app.GetClientRepository())
		assert.NotNil(t, app.GetClientService())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unreachable database", func(t *testing.T) {
		app := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t)))

		err := app.Initialize()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ping database")
	})

	t.Run("invalid tracing configuration", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Tracing.Enabled = true
		cfg.Tracing.TraceExporter = "carrier-pigeon"

		app := NewApp(cfg, WithLogger(logger.NewTestLogger(t)))

		err := app.Initialize()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to initialize tracing")
	})
}

func TestApp_InitDB(t *testing.T) {
	t.Run("unreachable server while creating database", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Database.CreateIfMissing = true

		app := NewApp(cfg, WithLogger(logger.NewTestLogger(t)))

		err := app.InitDB()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ensure database exists")
		assert.Nil(t, app.GetDB())
	})

	t.Run("unreachable database", func(t *testing.T) {
		app := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t)))

		err := app.InitDB()
		require.Error(t, err)
		assert.Nil(t, app.GetDB())
	})
}

func TestAppInitTracingEnabled(t *testing.T) {
	cfg := createTestConfig()
	cfg.Tracing.Enabled = true
	cfg.Tracing.TraceExporter = "none"
	cfg.Tracing.MetricsExporter = "none"

	app := NewApp(cfg, WithLogger(logger.NewTestLogger(t)))
	err := app.InitTracing()
	assert.NoError(t, err)
}

func TestAppShutdown(t *testing.T) {
	t.Run("closes the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose()

		mockLogger := pkgmocks.NewMockLogger(ctrl)
		mockLogger.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(mockLogger).AnyTimes()
		mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

		app := NewApp(createTestConfig(), WithLogger(mockLogger), WithMockDB(mockDB))

		err = app.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, app.GetDB())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports close failure", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose().WillReturnError(errors.New("close failed"))

		app := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t)), WithMockDB(mockDB))

		err = app.Shutdown(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to close database")
	})

	t.Run("without database", func(t *testing.T) {
		app := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t)))
		assert.NoError(t, app.Shutdown(context.Background()))
	})
}
