package main

import (
	"github.com/osse101/etwmath/internal/config"
	"github.com/osse101/etwmath/internal/logger"
)

// initLogger starts from the environment's preset and applies explicit settings on top
func initLogger(cfg *config.Config) {
	loggerConfig := logger.ForEnvironment(cfg.Environment).
		WithOverrides(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version)

	logger.InitLogger(loggerConfig)
}
