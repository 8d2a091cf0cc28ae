package postgres

import (
	"context"
	"fmt"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tour-booking/tour-discovery-service/internal/config"
	"github.com/tour-booking/tour-discovery-service/internal/infrastructure/retry"
)

// Open connects to the catalog database and configures the connection
// pool. Connection attempts are retried with backoff; once the service
// is up, queries are never retried.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := retry.DoWithResult(ctx, func() (*gorm.DB, error) {
		return gorm.Open(gormpostgres.Open(cfg.URL), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
	}, retry.StoreConnectConfig)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&TourModel{}, &ScheduleModel{}); err != nil {
			return nil, fmt.Errorf("auto-migrate schema: %w", err)
		}
	}

	return db, nil
}
