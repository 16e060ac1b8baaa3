// Package db owns the gorm connection shared by all repositories.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/MyelinBots/ecochat-go/config"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB wraps *gorm.DB. Inside Transaction the wrapped handle is the transaction.
type DB struct {
	DB *gorm.DB
}

// Open connects using the driver named in cfg and verifies the connection.
func Open(ctx context.Context, cfg config.DBConfig) (*DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	database, err := OpenDialector(ctx, dialector)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == DriverSQLite {
		// sqlite allows a single writer
		sqlDB, err := database.DB.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	slog.Info("database connected", slog.String("driver", cfg.Driver))
	return database, nil
}

// OpenDialector opens gorm on an arbitrary dialector. Errors are translated so
// callers can match gorm.ErrDuplicatedKey.
func OpenDialector(ctx context.Context, dialector gorm.Dialector) (*DB, error) {
	gdb, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	database := &DB{DB: gdb}
	if err := database.Ping(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return database, nil
}

// SQLiteDSN enables foreign keys and a busy timeout on a sqlite file path.
func SQLiteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func (d *DB) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction runs fn in a single database transaction. Returning an error
// from fn rolls back every write made through tx.
func (d *DB) Transaction(ctx context.Context, fn func(tx *DB) error) error {
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DB{DB: tx})
	})
}
