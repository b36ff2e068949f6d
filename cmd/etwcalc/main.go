package main

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/etwmath/internal/config"
	"github.com/osse101/etwmath/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	initLogger(cfg)
	logger.Debug("Configuration loaded",
		"environment", cfg.Environment,
		"optimal_ratio", cfg.OptimalRatio,
		"use_decimals", cfg.UseDecimals,
		"table_format", cfg.TableFormat)

	registry := newRegistry(cfg, os.Stdout)

	if len(os.Args) < 2 {
		logger.Warn("No command given")
		registry.PrintHelp()
		os.Exit(1)
	}

	ctx := logger.WithRunID(context.Background(), logger.GenerateRunID())
	if err := registry.Run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
