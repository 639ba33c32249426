package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/LoveSim_Go/docs"
	"github.com/osse101/LoveSim_Go/internal/bootstrap"
	"github.com/osse101/LoveSim_Go/internal/config"
	"github.com/osse101/LoveSim_Go/internal/database"
	"github.com/osse101/LoveSim_Go/internal/ranking"
	"github.com/osse101/LoveSim_Go/internal/scenario"
	"github.com/osse101/LoveSim_Go/internal/server"
)

// @title LoveSim API
// @version 1.0
// @description Scenario content and leaderboard API for the love simulation game.
// @license.name MIT
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatalf("LoveSim server failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer logFile.Close()

	warnings, err := cfg.ValidateWithWarnings()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgConfigWarning, "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(pool)
	scenarioService := scenario.NewService(repos.Content)
	rankingService := ranking.NewService(repos.Ranking)

	srv := server.NewServer(server.OptionsFromConfig(cfg), pool, scenarioService, rankingService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		pool.Close()
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DB:     pool,
	})

	return nil
}
