package main

import (
	"log"

	"battlemat/internal/config"
	"battlemat/internal/editor"
	"battlemat/internal/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	config.ParseFlags()
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Init(logger.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.LogFile,
		Console: true,
	}); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	logger.Log.Info("starting editor",
		zap.String("grid_type", cfg.Grid.Type),
		zap.Float64("grid_size", cfg.Grid.Size))

	ed, err := editor.New(cfg)
	if err != nil {
		logger.Log.Fatal("editor init failed", zap.Error(err))
	}

	ebiten.SetWindowTitle("Battlemat")
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	if err := ebiten.RunGame(ed); err != nil {
		logger.Log.Fatal("editor exited", zap.Error(err))
	}
}
