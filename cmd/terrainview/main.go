// Package main is the entry point for the terrain viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-viewer/internal/config"
	"github.com/Faultbox/terrain-viewer/internal/logger"
	"github.com/Faultbox/terrain-viewer/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Terrain Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.WriteConfig() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to write config", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("config written", zap.String("dir", config.ConfigDir()))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	runErr := v.Run(ctx)
	v.Close()
	if runErr != nil {
		logger.Error("viewer error", zap.Error(runErr))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
