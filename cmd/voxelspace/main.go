// Package main is the entry point for the Voxel Space terrain viewer.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/game"
	"github.com/Faultbox/voxelspace/internal/logger"
)

func init() {
	// SDL and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Voxel Space ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	m, err := terrain.Load(cfg.Terrain.ColorMap, cfg.Terrain.HeightMap)
	if err != nil {
		reportAssetError(err)
		logger.Sync()
		os.Exit(1)
	}
	w, h := m.Size()
	logger.Info("terrain loaded", zap.Int("width", w), zap.Int("height", h))

	g, err := game.New(cfg, m)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	// Run the main loop
	runErr := g.Run()
	g.Close()
	if runErr != nil {
		logger.Error("game error", zap.Error(runErr))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("game closed normally")
}

// reportAssetError logs a map loading failure and shows it in a native
// dialog, since the viewer has no window yet at that point.
func reportAssetError(err error) {
	var assetErr *terrain.AssetError
	if errors.As(err, &assetErr) {
		logger.Error("failed to load terrain",
			zap.String("path", assetErr.Path),
			zap.Error(assetErr.Err),
		)
	} else {
		logger.Error("failed to load terrain", zap.Error(err))
	}
	dialog.Message("Could not load terrain maps:\n%v", err).Title("Voxel Space").Error()
}
