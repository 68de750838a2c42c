//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"falling-sand/internal/app"
	"falling-sand/internal/config"
	"falling-sand/internal/core"
	"falling-sand/internal/scene"
	"falling-sand/pkg/logger"
)

func main() {
	var flags config.Flags
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("loading config")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	world, err := cfg.NewWorld()
	if err != nil {
		logger.Log.WithError(err).Fatal("building world")
	}
	if flags.Scene != "" {
		s, err := scene.Resolve(flags.Scene)
		if err != nil {
			logger.Log.WithError(err).Fatal("loading scene")
		}
		s.Apply(world.Grid())
	}

	painter, err := cfg.Painter()
	if err != nil {
		logger.Log.WithError(err).Fatal("brush")
	}
	keys, err := cfg.Keymap()
	if err != nil {
		logger.Log.WithError(err).Fatal("key bindings")
	}

	hudWidth := 0
	if cfg.Window.ShowHUD {
		hudWidth = cfg.Window.HUDWidth
	}
	ctl := app.NewController(world, painter, keys, core.NewFixedStep(cfg.Window.TPS))
	game := app.New(ctl, cfg.Window.Scale, hudWidth)
	size := world.Size()

	logger.Log.WithFields(logrus.Fields{
		"width":  size.W,
		"height": size.H,
		"tps":    cfg.Window.TPS,
		"seed":   cfg.Seed,
	}).Info("starting")

	ebiten.SetWindowTitle(fmt.Sprintf("falling sand %dx%d", size.W, size.H))
	ebiten.SetWindowSize(size.W*cfg.Window.Scale+hudWidth, size.H*cfg.Window.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.WithError(err).Fatal("game loop")
	}
}
