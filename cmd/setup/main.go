// Command setup creates the LoveSim database when it is missing and applies
// the schema migrations. With --reset it drops and recreates the database.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/urfave/cli/v2"

	"github.com/osse101/LoveSim_Go/internal/config"
	"github.com/osse101/LoveSim_Go/internal/database"
	"github.com/osse101/LoveSim_Go/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName+"-setup", cfg.Version, cfg.Environment, false))

	app := &cli.App{
		Name:  "setup",
		Usage: "create the database and apply migrations",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "reset",
				Usage: "drop the database first (destroys all data)",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.Context, cfg, c.Bool("reset"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config, reset bool) error {
	target := cfg.GetDBConnString()
	dbName, adminConnString, err := adminTarget(target)
	if err != nil {
		return err
	}

	conn, err := pgx.Connect(ctx, adminConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	ident := pgx.Identifier{dbName}.Sanitize()

	if reset {
		slog.Warn("Dropping database", "database", dbName)
		if _, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, dbName); err != nil {
			slog.Warn("Failed to terminate connections", "error", err)
		}
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
			return fmt.Errorf("drop database: %w", err)
		}
	}

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return fmt.Errorf("check database: %w", err)
	}

	if !exists {
		slog.Info("Creating database", "database", dbName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
			return fmt.Errorf("create database: %w", err)
		}
	} else {
		slog.Info("Database already exists", "database", dbName)
	}
	conn.Close(ctx)

	pool, err := database.NewPool(ctx, target, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	version, err := database.SchemaVersion(ctx, pool)
	if err != nil {
		return err
	}
	slog.Info("Setup complete", "database", dbName, "schema_version", version)
	return nil
}

// adminTarget splits a connection string into the database name and a
// connection string for the maintenance "postgres" database on the same server.
func adminTarget(connString string) (string, string, error) {
	cc, err := pgx.ParseConfig(connString)
	if err != nil {
		return "", "", fmt.Errorf("parse connection string: %w", err)
	}
	if cc.Database == "" {
		return "", "", fmt.Errorf("connection string names no database")
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cc.User, cc.Password),
		Host:     fmt.Sprintf("%s:%d", cc.Host, cc.Port),
		Path:     "/postgres",
		RawQuery: "sslmode=disable",
	}
	if cc.TLSConfig != nil {
		u.RawQuery = "sslmode=require"
	}
	return cc.Database, u.String(), nil
}
