package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/internal/view"
	"github.com/oliverbestmann/rigid/physics"
	"github.com/oliverbestmann/rigid/scene"
	"go.uber.org/zap"
)

// impulses above this value shake the camera
const shakeThreshold = 5.0

type Game struct {
	logger *zap.Logger

	// loads the scene, called on startup and on every reload
	load func() (*scene.Scene, error)

	// path of the scene file, empty for generated scenes
	path    string
	watcher *scene.Watcher

	world    *physics.World
	stepper  *physics.Stepper
	camera   *view.Camera
	contacts []physics.Contact

	screenSize gm.Vec
	paused     bool
}

func NewGame(logger *zap.Logger, path string, load func() (*scene.Scene, error)) (*Game, error) {
	g := &Game{
		logger:     logger,
		load:       load,
		path:       path,
		camera:     view.NewCamera(gm.Vec{}, 20),
		screenSize: gm.Vec{X: 1280, Y: 720},
	}

	if err := g.reload(); err != nil {
		return nil, err
	}

	if path != "" {
		watcher, err := scene.NewWatcher(filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", path, err)
		}

		g.watcher = watcher
	}

	return g, nil
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}

	return nil
}

func (g *Game) reload() error {
	sc, err := g.load()
	if err != nil {
		return err
	}

	world, err := sc.Build(physics.WithLogger(g.logger))
	if err != nil {
		return err
	}

	g.world = world
	g.stepper = physics.NewStepper(physics.DefaultStepInterval)
	g.contacts = nil

	if center, zoom, ok := view.Fit(world.Bodies(), g.screenSize, 2); ok {
		g.camera.Center.Jump(center)
		g.camera.Zoom.Set(zoom)
	}

	g.logger.Info("Scene loaded", zap.Int("bodies", len(world.Bodies())))

	return nil
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reload(); err != nil {
			g.logger.Warn("Reload failed", zap.Error(err))
		}
	}

	delta := time.Second / time.Duration(ebiten.TPS())

	if !g.paused {
		results, err := g.stepper.Update(g.world, delta)
		if err != nil {
			return err
		}

		for _, result := range results {
			g.contacts = result.Contacts

			for _, contact := range result.Contacts {
				if contact.Impulse.Normal > shakeThreshold {
					g.camera.Impact(contact.Info.Normal, contact.Impulse.Normal)
				}
			}
		}

		g.camera.Follow(g.world.Bodies())
	}

	g.camera.Update(delta)

	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}

	for {
		select {
		case changed, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}

			if filepath.Clean(changed) != filepath.Clean(g.path) {
				continue
			}

			if err := g.reload(); err != nil {
				g.logger.Warn("Reload failed", zap.String("path", changed), zap.Error(err))
			}

		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}

			g.logger.Warn("Watching scene failed", zap.Error(err))

		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ebitenColorBackground)

	d := debugImage{
		Image:     screen,
		Transform: g.camera.WorldToScreen(g.screenSize),
	}

	for _, shape := range g.world.Bodies() {
		d.DrawShape(shape)
	}

	for _, contact := range g.contacts {
		d.DrawContact(contact)
	}

	stats := g.world.Stats()

	status := fmt.Sprintf("step %d  bodies %d  contacts %d\nstep time %s (max %s)\nspace: pause  r: reload",
		g.world.Step(), len(g.world.Bodies()), len(g.contacts),
		stats.MovingAverage.Round(time.Microsecond), stats.Max.Round(time.Microsecond))

	if g.paused {
		status += "\nPAUSED"
	}

	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenSize = gm.Vec{X: float64(outsideWidth), Y: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}
