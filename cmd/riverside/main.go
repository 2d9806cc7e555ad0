// Package main is the entry point for the riverside scene viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/riverview3d/riverside/internal/config"
	"github.com/riverview3d/riverside/internal/game"
	"github.com/riverview3d/riverside/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	l := cfg.Logging
	opts := logger.Options{Level: l.Level, Console: true}
	if l.LogFile != "" {
		opts.File = logger.FileConfig{
			Path:       l.LogFile,
			MaxSizeMB:  l.MaxSizeMB,
			MaxBackups: l.MaxBackups,
			MaxAgeDays: l.MaxAgeDays,
			Compress:   l.Compress,
		}
	}
	if err := logger.Init(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg))
}

// run keeps deferred cleanup ahead of os.Exit.
func run(cfg *config.Config) int {
	defer logger.Sync()

	logger.Info("=== Riverside ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		return 1
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("main loop failed", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}
