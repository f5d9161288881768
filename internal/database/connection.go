package database

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Initialize opens the connection. The schema is owned by the migrations
// package and is not touched here.
func Initialize(driver, databaseURL string, logSQL bool, zlog *zap.Logger) (*gorm.DB, error) {
	if zlog == nil {
		zlog = zap.NewNop()
	}

	gormLogger, err := newGormLogger(zlog, logSQL)
	if err != nil {
		return nil, err
	}
	config := &gorm.Config{Logger: gormLogger}

	dialector, err := openDialector(driver, databaseURL)
	if err != nil {
		return nil, err
	}

	// Connect to database
	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite serialises writers anyway; a single connection keeps
		// in-memory databases alive and avoids "database is locked".
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	zlog.Info("database connected", zap.String("driver", driver))
	return db, nil
}

// newGormLogger routes GORM's own log lines through zap.
func newGormLogger(zlog *zap.Logger, logSQL bool) (logger.Interface, error) {
	logLevel, zapLevel := logger.Warn, zapcore.WarnLevel
	if logSQL {
		logLevel, zapLevel = logger.Info, zapcore.InfoLevel
	}

	writer, err := zap.NewStdLogAt(zlog.Named("gorm"), zapLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to build gorm logger: %w", err)
	}

	return logger.New(writer, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logLevel,
		IgnoreRecordNotFoundError: true,
	}), nil
}

func openDialector(driver, databaseURL string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		return postgres.Open(databaseURL), nil
	case DriverSQLite:
		return sqlite.Open(withForeignKeys(databaseURL)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// withForeignKeys turns on FK enforcement, which SQLite leaves off by default.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
