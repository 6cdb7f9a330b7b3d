package flock_db

import (
	"context"
	"fmt"

	"flock/config"
	"flock/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDBConnectionPool opens and pings the pgx connection pool.
func InitDBConnectionPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(buildConnectionString(cfg))
	if err != nil {
		logger.SafeErrorContext(ctx, "Failed to parse database config", "error", err)
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConnections)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.SafeErrorContext(ctx, "Failed to connect to database", "error", err)
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectionTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.SafeErrorContext(ctx, "Failed to ping database", "error", err)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.SafeInfoContext(ctx, "Connected to database", "host", cfg.Host, "database", cfg.Name)

	return pool, nil
}

func buildConnectionString(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}
