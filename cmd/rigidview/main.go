package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/rigid/internal/logging"
	"github.com/oliverbestmann/rigid/scene"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

var ebitenColorBackground = color.RGBA{R: 0x18, G: 0x1a, B: 0x20, A: 0xff}

func main() {
	scenePath := flag.String("scene", "", "scene file to show, reloaded on change")
	generate := flag.String("generate", "mixed", "scene generator used if no scene file is given")
	count := flag.Int("count", 80, "number of dynamic bodies in a generated scene")
	seed := flag.Uint64("seed", 1, "seed of the scene generator")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	cpuProfile := flag.Bool("profile", false, "write a cpu profile")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	logger, err := logging.New(*logLevel, "console")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	defer func() { _ = logger.Sync() }()

	load := func() (*scene.Scene, error) {
		if *scenePath != "" {
			return scene.Load(*scenePath)
		}

		return scene.Generate(*generate, *count, *seed)
	}

	game, err := NewGame(logger, *scenePath, load)
	if err != nil {
		logger.Fatal("Failed to start", zap.Error(err))
	}

	defer func() { _ = game.Close() }()

	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("rigid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("Game stopped", zap.Error(err))
	}
}
