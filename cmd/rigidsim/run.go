package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/oliverbestmann/rigid/internal/crosscheck"
	"github.com/oliverbestmann/rigid/physics"
	"github.com/oliverbestmann/rigid/scene"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type options struct {
	Scene    string
	Generate string
	Count    int
	Seed     uint64
	Write    string

	Steps    int
	TimeStep float64
	Runs     int

	CrossCheck bool
	Contacts   bool
}

type runResult struct {
	Id      string
	Hash    uint64
	Steps   uint64
	Stats   physics.Timings
	Contact int
}

func run(opts options, logger *zap.Logger) error {
	if opts.Steps < 0 {
		return fmt.Errorf("negative step count %d", opts.Steps)
	}

	sc, err := loadScene(opts)
	if err != nil {
		return err
	}

	logger.Info("Scene ready",
		zap.Int("bodies", len(sc.Bodies)),
		zap.Int("steps", opts.Steps),
		zap.Float64("dt", opts.TimeStep),
	)

	if opts.Write != "" {
		if err := sc.Save(opts.Write); err != nil {
			return err
		}
	}

	results := make([]runResult, max(opts.Runs, 1))

	var group errgroup.Group
	for idx := range results {
		group.Go(func() error {
			result, err := simulate(sc, opts, logger)
			if err != nil {
				return err
			}

			results[idx] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if err := compareRuns(results); err != nil {
		return err
	}

	logger.Info("Simulation finished",
		zap.Int("runs", len(results)),
		zap.String("hash", fmt.Sprintf("%016x", results[0].Hash)),
	)

	if opts.CrossCheck {
		report, err := crosscheck.Run(sc, opts.Steps, opts.TimeStep, physics.WithLogger(logger))
		if err != nil {
			return err
		}

		logger.Info("Crosscheck finished",
			zap.Float64("maxDivergence", report.MaxDivergence),
			zap.String("worst", report.Worst),
			zap.Int("worstStep", report.WorstStep),
		)
	}

	return nil
}

func loadScene(opts options) (*scene.Scene, error) {
	if opts.Scene != "" {
		return scene.Load(opts.Scene)
	}

	return scene.Generate(opts.Generate, opts.Count, opts.Seed)
}

func simulate(sc *scene.Scene, opts options, logger *zap.Logger) (runResult, error) {
	result := runResult{Id: uuid.NewString()}

	logger = logger.With(zap.String("run", result.Id))

	world, err := sc.Build(physics.WithLogger(logger))
	if err != nil {
		return result, err
	}

	for range opts.Steps {
		step, err := world.Advance(opts.TimeStep)
		if err != nil {
			return result, fmt.Errorf("run %s: %w", result.Id, err)
		}

		result.Contact += len(step.Contacts)

		if opts.Contacts {
			logContacts(logger, step)
		}
	}

	result.Hash = world.StateHash()
	result.Steps = world.Step()
	result.Stats = world.Stats()

	logger.Info("Run finished",
		zap.Uint64("steps", result.Steps),
		zap.Int("contacts", result.Contact),
		zap.String("hash", fmt.Sprintf("%016x", result.Hash)),
		zap.Duration("stepAverage", result.Stats.MovingAverage),
		zap.Duration("stepMax", result.Stats.Max),
	)

	return result, nil
}

func logContacts(logger *zap.Logger, step physics.StepResult) {
	for _, contact := range step.Contacts {
		logger.Info("Contact",
			zap.Uint64("step", step.Step),
			zap.Stringer("a", contact.A),
			zap.Stringer("b", contact.B),
			zap.Float64("depth", contact.Info.Depth),
			zap.Stringer("normal", contact.Info.Normal),
			zap.Float64("impulse", contact.Impulse.Normal),
			zap.Bool("sensor", contact.Sensor),
		)
	}
}

var errNondeterministic = errors.New("runs are not deterministic")

func compareRuns(results []runResult) error {
	for _, result := range results[1:] {
		if result.Hash != results[0].Hash {
			return fmt.Errorf("run %s hash %016x differs from run %s hash %016x: %w",
				result.Id, result.Hash, results[0].Id, results[0].Hash, errNondeterministic)
		}
	}

	return nil
}
