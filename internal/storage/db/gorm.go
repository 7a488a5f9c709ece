package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/LaryssaGabi/StudyFlow/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitGorm opens the ORM backed store for the sqlite and gorm-postgres drivers
// and migrates the given models.
func InitGorm(cfg config.StoreConfig, log *zap.Logger, models ...any) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLite.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed create data dir: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.SQLite.Path)
	case config.DriverGormPostgres:
		dialector = postgres.Open(DSN(cfg.DB.Conn))
	default:
		return nil, fmt.Errorf("driver %q is not served by gorm", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("failed open gorm db: %w", err)
	}

	if cfg.Driver == config.DriverGormPostgres {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(cfg.DB.Cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DB.Cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.DB.Cfg.ConnMaxLifeTime)
		sqlDB.SetConnMaxIdleTime(cfg.DB.Cfg.ConnMaxIdleTime)
	}

	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("failed auto migrate: %w", err)
	}

	log.Info("gorm store ready", zap.String("driver", cfg.Driver))

	return db, nil
}
