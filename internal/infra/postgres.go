package infra

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"apextip/internal/config"
	"apextip/internal/models/db_models"
)

func InitPostgresql(cfg config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	return openPool(postgres.Open(cfg.URL), cfg, log)
}

// openPool opens and tunes the pool, then migrates when enabled. The pool is
// closed again if migration fails.
func openPool(dialector gorm.Dialector, cfg config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.MaxLifetime)

	if cfg.AutoMigrate {
		if err := migrateSchema(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info("database schema migrated")
	}

	log.Info("connected to database")
	return db, nil
}

func migrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&db_models.Tip{}, &db_models.Event{}, &db_models.Visitor{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, log *logrus.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Error("error closing database connection")
	} else {
		log.Info("PostgreSQL database connection closed successfully")
	}
}

// ProvidePostgres opens the pool and closes it when the application stops.
func ProvidePostgres(lc fx.Lifecycle, cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	db, err := InitPostgresql(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}
