package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtside/pickem/internal/config"
	"github.com/courtside/pickem/internal/database"
)

const (
	waitForDBAttempts = 30
	waitForDBInterval = 2 * time.Second
)

// WaitForDBCommand polls the configured database until it accepts connections
type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(ctx context.Context, args []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := connectWithRetry(ctx, cfg, waitForDBAttempts, waitForDBInterval)
	if err != nil {
		return err
	}
	pool.Close()

	PrintSuccess("Database is ready")
	return nil
}

// MigrateCommand applies or reports the embedded migrations
type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, status)"
}

func (c *MigrateCommand) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}
	subcmd := args[0]
	if subcmd != "up" && subcmd != "status" {
		return fmt.Errorf("unknown migrate subcommand %q", subcmd)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := connect(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if subcmd == "status" {
		return database.MigrationStatus(ctx, pool)
	}

	PrintInfo("Applying migrations to %s", cfg.DBName)
	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	PrintSuccess("Migrations applied")
	return nil
}

func connect(cfg *config.Config) (*pgxpool.Pool, error) {
	return database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
}

func connectWithRetry(ctx context.Context, cfg *config.Config, attempts int, interval time.Duration) (*pgxpool.Pool, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		pool, err := connect(cfg)
		if err == nil {
			return pool, nil
		}
		lastErr = err
		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, attempts, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
	return nil, fmt.Errorf("database failed to become ready after %d attempts: %w", attempts, lastErr)
}
