package main

import (
	"github.com/osse101/LoveSim_Go/internal/config"
	"github.com/osse101/LoveSim_Go/internal/logger"
)

// initLogger initializes a stdout logger from the app configuration
func initLogger(cfg *config.Config, verbose bool) {
	level := cfg.LogLevel
	if verbose {
		level = logger.LogLevelDebug
	}

	loggerConfig := logger.NewConfig(
		level,
		cfg.LogFormat,
		cfg.ServiceName+"-seed",
		cfg.Version,
		cfg.Environment,
		false,
	)

	logger.InitLogger(loggerConfig)
}
