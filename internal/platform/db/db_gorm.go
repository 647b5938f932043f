// Package db opens the relational store shared by every repository.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DriverSQLite is the default file-backed store.
	DriverSQLite = "sqlite"
	// DriverPostgres is accepted for deployments that run against a server database.
	DriverPostgres = "postgres"

	defaultPath        = "./database/database.sqlite"
	defaultBusyTimeout = 5000 * time.Millisecond
)

// ErrUnsupportedDriver is returned when DB_DRIVER names an unknown backend.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config holds the connection settings for the store.
type Config struct {
	Driver        string        // sqlite (default) or postgres
	Path          string        // sqlite database file
	DSN           string        // postgres connection string
	BusyTimeout   time.Duration // sqlite lock wait
	RunMigrations bool          // create the tables on startup
}

// LoadConfigFromEnv reads the store settings from environment variables.
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:        os.Getenv("DB_DRIVER"),
		Path:          os.Getenv("DB_PATH"),
		DSN:           os.Getenv("DB_DSN"),
		BusyTimeout:   defaultBusyTimeout,
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSQLite
	}
	if cfg.Path == "" {
		cfg.Path = defaultPath
	}
	if v := os.Getenv("DB_BUSY_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.BusyTimeout = time.Duration(ms) * time.Millisecond
		} else {
			slog.Warn("ignoring invalid DB_BUSY_TIMEOUT_MS", "value", v)
		}
	}
	return cfg
}

// BuildDSN returns the go-sqlite3 connection string for cfg.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
}

// Dialector selects the gorm dialector for cfg.Driver.
func Dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", DriverSQLite:
		return sqlite.Open(BuildDSN(cfg)), nil
	case DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Open connects to the store and prepares it for use.
//
// The pool is limited to a single connection for the process lifetime. For
// sqlite the busy timeout and WAL journal mode are applied explicitly so they
// hold even when the DSN parameters are ignored. When cfg.RunMigrations is
// set, models are auto-migrated. Failures are returned as-is; there is no retry.
func Open(cfg Config, models ...any) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if cfg.Driver == "" || cfg.Driver == DriverSQLite {
		pragmas := []string{
			fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()),
			"PRAGMA journal_mode = WAL",
		}
		for _, p := range pragmas {
			if err := db.Exec(p).Error; err != nil {
				_ = sqlDB.Close()
				return nil, fmt.Errorf("failed to apply %q: %w", p, err)
			}
		}
	}

	if cfg.RunMigrations && len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	slog.Info("database ready", "driver", dialector.Name(), "path", cfg.Path)
	return db, nil
}

// JournalMode reports the sqlite journal mode of the open connection.
func JournalMode(ctx context.Context, db *gorm.DB) (string, error) {
	var mode string
	if err := db.WithContext(ctx).Raw("PRAGMA journal_mode").Row().Scan(&mode); err != nil {
		return "", err
	}
	return mode, nil
}

// Close releases the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
