package reqman

import (
	"context"
	"database/sql"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Sharjeel-22/request-management-system/internal/auth"
	"github.com/Sharjeel-22/request-management-system/internal/config"
	"github.com/Sharjeel-22/request-management-system/internal/migrations"
	"github.com/Sharjeel-22/request-management-system/internal/payments"
	"github.com/Sharjeel-22/request-management-system/internal/repository"
	"github.com/Sharjeel-22/request-management-system/internal/store"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/core"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lmittmann/tint"

	_ "github.com/go-sql-driver/mysql"
	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// App wires the role dashboards' stores, the payment gateway and the
// mock auth service around one session database.
type App struct {
	Workflows       *store.WorkflowDefinitionStore
	AdminRequests   *store.AdminRequestStore
	FinanceRequests *store.FinanceRequestStore
	UserRequests    *store.UserRequestStore
	Gateway         *payments.Gateway
	Auth            *auth.AuthService

	db *sql.DB
}

// Setup opens the session database for the configured dialect, runs
// migrations, seeds the demo accounts and builds the in-memory stores
// with their sample collections.
func Setup(clock core.Clock) (*App, error) {
	databaseType := config.GetSystemSettingString(config.DATABASE_TYPE)
	if databaseType == "" || (databaseType != config.DATABASE_TYPE_POSTGRES && databaseType != config.DATABASE_TYPE_MYSQL && databaseType != config.DATABASE_TYPE_SQLLITE) {
		panic("RMS_DATABASE_TYPE must be set to one of the following values: POSTGRES, MYSQL, SQLLITE")
	}

	var db *sql.DB
	if databaseType == config.DATABASE_TYPE_POSTGRES {
		db = setupPostgresDatabase()
	}
	if databaseType == config.DATABASE_TYPE_SQLLITE {
		db = setupSqlLiteDatabase()
	}
	if databaseType == config.DATABASE_TYPE_MYSQL {
		db = setupMysqlDatabase()
	}

	userRepo := repository.NewUserRepository(db, clock)
	sessionRepo := repository.NewSessionRepository(db, clock)
	if err := auth.EnsureDemoAccounts(userRepo); err != nil {
		db.Close()
		return nil, err
	}

	financeStore := store.NewFinanceRequestStore(store.SeedFinanceRequests())
	app := &App{
		Workflows:       store.NewWorkflowDefinitionStore(clock, store.SeedWorkflows()),
		AdminRequests:   store.NewAdminRequestStore(store.SeedAdminRequests()),
		FinanceRequests: financeStore,
		UserRequests:    store.NewUserRequestStore(clock, store.SeedUserRequests()),
		Gateway:         payments.NewGateway(financeStore, clock),
		Auth:            auth.NewAuthService(userRepo, sessionRepo, clock),
		db:              db,
	}
	return app, nil
}

// Run starts the payment gateway sweeper and blocks until the context
// is cancelled.
func (a *App) Run(ctx context.Context) {
	a.Gateway.Run(ctx)
}

// Close stops the gateway and closes the session database.
func (a *App) Close() {
	a.Gateway.Close()
	if a.db != nil {
		a.db.Close()
	}
}

func setupPostgresDatabase() *sql.DB {
	dbURL := config.GetSystemSettingString(config.DATABASE_URL)
	if dbURL == "" {
		panic("RMS_DATABASE_URL must be set when using the POSTGRES database type")
	}
	slog.Info("Using Postgres database", "url", dbURL)
	slog.Info("Running migrations")
	if err := runMigrationsFromEmbed("postgres", dbURL); err != nil {
		slog.Error("DB migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Opening Postgres database")
	dbPostgres, err := sql.Open("postgres", dbURL)
	if err != nil {
		slog.Error("DB connection failed", "error", err)
		os.Exit(1)
	}
	return dbPostgres
}

func setupSqlLiteDatabase() *sql.DB {
	fileName := config.GetSystemSettingString(config.DATABASE_SQLLITE_FILE_NAME)
	if fileName == "" {
		panic("RMS_DATABASE_SQLLITE_FILE_NAME must be set")
	}
	dbURL := "sqlite3://" + fileName
	slog.Info("Using SQLite database", "file", fileName)
	slog.Info("Running migrations")
	if err := runMigrationsFromEmbed("sqllite3", dbURL); err != nil {
		slog.Error("DB migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Opening SQLite database")
	dbSqlLite, err := sql.Open("sqlite3", fileName)
	if err != nil {
		log.Fatalf("Failed to open SQLite DB: %v", err)
	}
	if err := dbSqlLite.Ping(); err != nil {
		log.Fatalf("Failed to ping SQLite DB: %v", err)
	}
	return dbSqlLite
}

func setupMysqlDatabase() *sql.DB {
	dbURL := config.GetSystemSettingString(config.DATABASE_URL)
	if dbURL == "" {
		panic("RMS_DATABASE_URL must be set when using the MYSQL database type")
	}
	if !strings.Contains(dbURL, "parseTime=true") {
		panic("RMS_DATABASE_URL must contain 'parseTime=true' for MySQL")
	}
	if !strings.HasPrefix(dbURL, "mysql://") {
		panic("RMS_DATABASE_URL must start with 'mysql://' for MySQL")
	}

	slog.Info("Using MySQL database", "url", dbURL)
	slog.Info("Running migrations")
	if err := runMigrationsFromEmbed("mysql", dbURL); err != nil {
		slog.Error("DB migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Opening MySQL database")
	dbMysql, err := sql.Open("mysql", strings.Replace(dbURL, "mysql://", "", 1))
	if err != nil {
		slog.Error("DB connection failed", "error", err)
		os.Exit(1)
	}
	return dbMysql
}

func runMigrationsFromEmbed(migrationsPath string, dbURL string) error {
	sub, err := fs.Sub(migrations.FS, migrationsPath)
	if err != nil {
		return err
	}
	source, err := iofs.New(sub, ".")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func SetupLogger() {
	w := os.Stderr
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}
