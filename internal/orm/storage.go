package orm

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/notarydesk/priorities/pkg/config"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQL database named by storage.driver and applies the
// pool settings of the database section.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Storage.Driver == "sqlite" {
		// sqlite allows a single writer; one connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConnections)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnectionMaxLifetime)
	}

	log.Info("database connected",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("database", databaseName(cfg)))
	return db, nil
}

func dialectorFor(cfg config.Config) (gorm.Dialector, error) {
	d := cfg.Database
	switch cfg.Storage.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User, d.Password, d.Host, d.Port, d.Database)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			d.Host, d.Port, d.User, d.Password, d.Database)
		return postgres.Open(dsn), nil
	case "sqlite":
		if dir := filepath.Dir(d.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database dir: %w", err)
			}
		}
		return sqlite.Open(d.Path), nil
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", cfg.Storage.Driver)
	}
}

func databaseName(cfg config.Config) string {
	if cfg.Storage.Driver == "sqlite" {
		return cfg.Database.Path
	}
	return cfg.Database.Database
}
