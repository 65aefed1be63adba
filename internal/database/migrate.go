// Package database runs the versioned SQL migrations for the order database
// using golang-migrate. The SQL files are embedded so the migrate binary
// needs no files on disk.
//
// This package registers the modernc "sqlite" database/sql driver. Keep it
// out of binaries that also link the GORM SQLite driver.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationRunner handles database migrations
type MigrationRunner struct {
	migrate *migrate.Migrate
	db      *sql.DB
	driver  string
	logger  *log.Logger
}

// MigrationStatus represents the current migration state
type MigrationStatus struct {
	Version uint   `json:"version"`
	Dirty   bool   `json:"dirty"`
	Applied bool   `json:"applied"`
	Error   string `json:"error,omitempty"`
}

// NewMigrationRunner opens the database named by cfg and prepares the
// embedded migrations. A nil logger writes to stdout.
func NewMigrationRunner(cfg config.DatabaseConfig, logger *log.Logger) (*MigrationRunner, error) {
	if logger == nil {
		logger = log.New(os.Stdout, "[MIGRATE] ", log.LstdFlags)
	}

	var (
		db     *sql.DB
		driver migratedb.Driver
		err    error
	)
	switch cfg.Driver {
	case "postgres":
		db, err = sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
		}
		driver, err = postgres.WithInstance(db, &postgres.Config{})
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create PostgreSQL driver: %w", err)
		}
	case "sqlite":
		db, err = sql.Open("sqlite", strings.TrimPrefix(cfg.DSN, "file:"))
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
		}
		// migrations and the version table must share one in-memory database
		db.SetMaxOpenConns(1)
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create SQLite driver: %w", err)
		}
	case "":
		return nil, errors.New("DATABASE_URL is not set")
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Driver)
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.Driver, driver)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return &MigrationRunner{migrate: m, db: db, driver: cfg.Driver, logger: logger}, nil
}

// Up applies all pending migrations
func (r *MigrationRunner) Up() error {
	r.logger.Println("Running database migrations...")

	if err := r.migrate.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Println("No migrations to apply - database is up to date")
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, _ := r.migrate.Version()
	r.logger.Printf("Migrations completed successfully. Current version: %d (dirty: %v)", version, dirty)
	return nil
}

// Steps applies n migrations, or rolls back -n when n is negative
func (r *MigrationRunner) Steps(n int) error {
	if err := r.migrate.Steps(n); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Println("No migrations to apply")
			return nil
		}
		return fmt.Errorf("migrate %d step(s): %w", n, err)
	}

	version, dirty, _ := r.migrate.Version()
	r.logger.Printf("Moved %d step(s). Current version: %d (dirty: %v)", n, version, dirty)
	return nil
}

// Down rolls back every migration
func (r *MigrationRunner) Down() error {
	r.logger.Println("Rolling back all migrations...")

	if err := r.migrate.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Println("No migrations to rollback")
			return nil
		}
		return fmt.Errorf("rollback all failed: %w", err)
	}

	r.logger.Println("All migrations rolled back successfully")
	return nil
}

// Version returns the current migration version
func (r *MigrationRunner) Version() (MigrationStatus, error) {
	version, dirty, err := r.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, nil
	}
	if err != nil {
		return MigrationStatus{Error: err.Error()}, err
	}
	return MigrationStatus{Version: version, Dirty: dirty, Applied: version > 0}, nil
}

// Force sets the migration version without running migrations.
// It exists to clear a dirty state after a failed migration.
func (r *MigrationRunner) Force(version int) error {
	r.logger.Printf("Forcing version to %d...", version)

	if err := r.migrate.Force(version); err != nil {
		return fmt.Errorf("force failed: %w", err)
	}

	r.logger.Printf("Version forced to %d", version)
	return nil
}

// DB exposes the connection the migrations ran on.
func (r *MigrationRunner) DB() *sql.DB {
	return r.db
}

// Close closes the migration runner and database connection
func (r *MigrationRunner) Close() error {
	srcErr, dbErr := r.migrate.Close()
	if srcErr != nil {
		return fmt.Errorf("failed to close source: %w", srcErr)
	}
	if dbErr != nil {
		return fmt.Errorf("failed to close database: %w", dbErr)
	}
	return nil
}
