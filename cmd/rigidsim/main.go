package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/oliverbestmann/rigid/internal/logging"
	"github.com/oliverbestmann/rigid/scene"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

func main() {
	var opts options

	flag.StringVar(&opts.Scene, "scene", "", "scene file to simulate")
	flag.StringVar(&opts.Generate, "generate", "rain", "generate a scene instead of loading one: "+strings.Join(scene.Kinds(), ", "))
	flag.IntVar(&opts.Count, "count", 100, "number of dynamic bodies in a generated scene")
	flag.Uint64Var(&opts.Seed, "seed", 1, "seed of the scene generator")
	flag.StringVar(&opts.Write, "write", "", "write the simulated scene to this file")
	flag.IntVar(&opts.Steps, "steps", 600, "number of steps to simulate")
	flag.Float64Var(&opts.TimeStep, "dt", 1.0/60.0, "length of a step in seconds")
	flag.IntVar(&opts.Runs, "runs", 1, "number of identical runs executed in parallel and compared")
	flag.BoolVar(&opts.CrossCheck, "crosscheck", false, "compare the trajectories with chipmunk")
	flag.BoolVar(&opts.Contacts, "contacts", false, "log every contact")

	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	logFormat := flag.String("log-format", "console", "log format: json or console")
	profileMode := flag.String("profile", "", "write a profile: cpu or mem")

	flag.Parse()

	logger, err := newLogger(opts, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	defer func() { _ = logger.Sync() }()

	err = withProfile(*profileMode, func() error {
		return run(opts, logger)
	})

	if err != nil {
		logger.Error(err.Error())
		_ = logger.Sync()
		os.Exit(1)
	}
}

// newLogger builds the logger of the command. Sampling would drop most of the
// identical contact messages, so it is disabled while contacts are logged.
func newLogger(opts options, level, format string, extra ...logging.Option) (*zap.Logger, error) {
	var loggingOptions []logging.Option
	if opts.Contacts {
		loggingOptions = append(loggingOptions, logging.WithoutSampling())
	}

	return logging.New(level, format, append(loggingOptions, extra...)...)
}

func withProfile(mode string, fn func() error) error {
	switch mode {
	case "":
		return fn()

	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		return fn()

	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		return fn()

	default:
		return fmt.Errorf("unknown profile mode %q", mode)
	}
}
