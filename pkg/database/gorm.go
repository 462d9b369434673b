package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite" // registers the pure Go "sqlite" database/sql driver
)

// SQLiteDriverName is the database/sql driver registered by modernc.org/sqlite.
const SQLiteDriverName = "sqlite"

func getLogger(level logger.LogLevel) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true, // Don't include params in the SQL log
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB, maxOpen int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// NewGormDBFromDSN opens Postgres for postgres DSNs and SQLite for everything else
// (a file path or a "file:" URI).
func NewGormDBFromDSN(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty database connection string")
	}

	if isPostgresDSN(dsn) {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: getLogger(logger.Warn),
		})
		if err != nil {
			return nil, err
		}
		if err := configureConnectionPool(db, 100); err != nil {
			return nil, err
		}
		return db, nil
	}

	if err := ensureSQLiteDir(dsn); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: SQLiteDriverName,
		DSN:        dsn,
	}), &gorm.Config{
		Logger: getLogger(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; keep the pool small so writers queue in Go
	// instead of failing with SQLITE_BUSY.
	if err := configureConnectionPool(db, 4); err != nil {
		return nil, err
	}

	return db, nil
}

// NewInMemorySQLite opens a private in-memory database. Every call returns an
// isolated database, which makes it suitable for tests.
func NewInMemorySQLite() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: SQLiteDriverName,
		DSN:        ":memory:",
	}), &gorm.Config{
		Logger: getLogger(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// An in-memory database lives and dies with its connection.
	if err := configureConnectionPool(db, 1); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSQLiteDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	if path == "" || strings.HasPrefix(path, ":memory:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}
	return nil
}
