package database

import (
	"context"
	"fmt"
	"time"

	"github.com/BluezConcepts/API-backend/internal/shared/config"
	applog "github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB holds database connections
type DB struct {
	PostgreSQL *gorm.DB
	// Reads is a second pool used by the catalog aggregate queries
	Reads *sqlx.DB
	Redis *redis.Client
}

// InitDB opens every connection and brings the schema up to date
func InitDB(ctx context.Context, cfg *config.Config) (*DB, error) {
	pg, err := initPostgreSQL(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}
	if err := Migrate(pg); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	reads, err := initReadPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize read pool: %w", err)
	}

	rdb, err := initRedis(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	return &DB{
		PostgreSQL: pg,
		Reads:      reads,
		Redis:      rdb,
	}, nil
}

// OpenPostgres connects GORM to dsn with the pool settings from cfg
func OpenPostgres(ctx context.Context, dsn string, cfg config.DatabaseConfig, gormLogger logger.Interface) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt:                              true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func initPostgreSQL(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Silent)
	if cfg.IsDevelopment() {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := OpenPostgres(ctx, cfg.Database.DSN, cfg.Database, gormLogger)
	if err != nil {
		return nil, err
	}

	applog.GetDefault().InfoContext(ctx, "PostgreSQL connected", "host", cfg.Database.Host, "database", cfg.Database.Name)
	return db, nil
}

// OpenReadPool opens the lib/pq backed sqlx pool
func OpenReadPool(ctx context.Context, dsn string, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(connectCtx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect read pool: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns / 2)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

func initReadPool(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	return OpenReadPool(ctx, cfg.Database.DSN, cfg.Database)
}

func initRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,

		PoolSize:     10,
		MinIdleConns: 5,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	applog.GetDefault().InfoContext(ctx, "Redis connected", "addr", cfg.Redis.Addr)
	return rdb, nil
}

// Close closes all database connections
func (db *DB) Close() error {
	var errs []error

	if db.PostgreSQL != nil {
		if sqlDB, err := db.PostgreSQL.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close PostgreSQL: %w", err))
			}
		}
	}

	if db.Reads != nil {
		if err := db.Reads.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close read pool: %w", err))
		}
	}

	if db.Redis != nil {
		if err := db.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing databases: %v", errs)
	}
	return nil
}

// HealthCheck pings PostgreSQL and Redis
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.PostgreSQL != nil {
		sqlDB, err := db.PostgreSQL.DB()
		if err != nil {
			return fmt.Errorf("PostgreSQL health check failed: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("PostgreSQL ping failed: %w", err)
		}
	}

	if db.Redis != nil {
		if err := db.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
	}

	return nil
}
