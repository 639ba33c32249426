package main

import (
	"database/sql"
	"flag"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/LoveSim_Go/internal/config"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	maxRetries := fs.Int("retries", 30, "number of connection attempts")
	retryInterval := fs.Duration("interval", 2*time.Second, "delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader("Waiting for database...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var lastErr error
	for i := 0; i < *maxRetries; i++ {
		if lastErr = pingDatabase(cfg.GetDBConnString()); lastErr == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		PrintInfo("Database not ready (%d/%d): %v", i+1, *maxRetries, lastErr)
		if i < *maxRetries-1 {
			time.Sleep(*retryInterval)
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", *maxRetries, lastErr)
}

func pingDatabase(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Ping()
}
