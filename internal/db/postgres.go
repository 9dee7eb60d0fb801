package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Boiketlo2/school-reporting/internal/config"
	"github.com/Boiketlo2/school-reporting/internal/pkg/logger"
)

// Connectivity probe retry policy at startup. When all attempts fail the
// process still comes up in a degraded state; store-backed requests fail
// until connectivity is restored.
const (
	pingAttempts = 5
	pingDelay    = 3 * time.Second
)

// PostgresDB holds the shared connection pool. It is constructed once during
// bootstrap and injected into every repository.
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgresDB creates a new PostgreSQL connection pool
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = config.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour)

	// Bounded wait for a connection lease; callers see a transient error
	// when the pool is exhausted past this.
	acquireTimeout := config.ParseDuration(cfg.Database.AcquireTimeout, 10*time.Second)
	poolConfig.ConnConfig.ConnectTimeout = acquireTimeout

	// Probe connection health on lease so dead connections get recycled
	// instead of surfacing to a request.
	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected, recycling")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	return &PostgresDB{Pool: pool}, nil
}

// PingWithRetry probes connectivity a fixed number of times with a fixed
// delay. It returns the last error when every attempt fails.
func (db *PostgresDB) PingWithRetry(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		lastErr = db.Pool.Ping(pingCtx)
		cancel()

		if lastErr == nil {
			return nil
		}

		logger.Warn().Err(lastErr).
			Int("attempt", attempt).
			Int("remaining", pingAttempts-attempt).
			Msg("Database connection failed, retrying")

		if attempt < pingAttempts {
			select {
			case <-time.After(pingDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("could not connect to database after %d attempts: %w", pingAttempts, lastErr)
}

// Close releases the pool.
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
