// Package db holds the optional order database. Postgres is used in
// deployments; SQLite (pure Go, no cgo) backs local runs and tests.
package db

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
	"github.com/ezhelptechnology/ezhelptechnology-saas/pkg/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotConfigured is returned by Open when DATABASE_URL is unset.
var ErrNotConfigured = errors.New("db: database not configured")

// Database wraps the GORM database instance
type Database struct {
	DB     *gorm.DB
	Driver string
}

// Open connects to the configured database and brings the orders table up
// to date with AutoMigrate.
func Open(cfg config.DatabaseConfig) (*Database, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var (
		gdb *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode, cfg.TimeZone,
		)
		gdb, err = gorm.Open(postgres.Open(dsn), gormConfig)
	case "sqlite":
		gdb, err = gorm.Open(sqlite.Open(cfg.DSN), gormConfig)
	case "":
		return nil, ErrNotConfigured
	default:
		return nil, fmt.Errorf("db: unsupported driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if cfg.Driver == "sqlite" {
		// one writer; in-memory databases exist per connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	database := &Database{DB: gdb, Driver: cfg.Driver}
	if err := database.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Printf("✅ Database connected (%s)", cfg.Driver)
	return database, nil
}

// Migrate auto-migrates the order model
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(&models.Order{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Health checks database connectivity
func (d *Database) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

