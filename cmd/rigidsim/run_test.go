package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oliverbestmann/rigid/internal/logging"
	"github.com/oliverbestmann/rigid/physics"
	"github.com/oliverbestmann/rigid/scene"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.yaml")

	opts := options{
		Generate:   "rain",
		Count:      20,
		Seed:       3,
		Write:      path,
		Steps:      60,
		TimeStep:   1.0 / 60.0,
		Runs:       4,
		CrossCheck: true,
		Contacts:   true,
	}

	require.NoError(t, run(opts, zaptest.NewLogger(t)))

	// the written scene can be simulated again
	sc, err := scene.Load(path)
	require.NoError(t, err)
	require.Len(t, sc.Bodies, 23)

	require.NoError(t, run(options{Scene: path, Steps: 10, TimeStep: 0.01}, zaptest.NewLogger(t)))
}

func TestRun_Errors(t *testing.T) {
	logger := zaptest.NewLogger(t)

	err := run(options{Generate: "tornado", Steps: 1, TimeStep: 0.01}, logger)
	require.ErrorContains(t, err, "unknown generator")

	err = run(options{Generate: "rain", Count: 1, Steps: 1, TimeStep: -1}, logger)
	require.ErrorIs(t, err, physics.ErrInvalidTimeStep)

	err = run(options{Scene: filepath.Join(t.TempDir(), "missing.yaml"), Steps: 1}, logger)
	require.Error(t, err)
}

func TestCompareRuns(t *testing.T) {
	require.NoError(t, compareRuns([]runResult{{Id: "a", Hash: 1}}))
	require.NoError(t, compareRuns([]runResult{{Id: "a", Hash: 1}, {Id: "b", Hash: 1}}))
	require.ErrorIs(t, compareRuns([]runResult{{Id: "a", Hash: 1}, {Id: "b", Hash: 2}}), errNondeterministic)
}

func contactOptions() options {
	return options{
		Generate: "pyramid",
		Count:    20,
		Seed:     1,
		Steps:    120,
		TimeStep: 1.0 / 60.0,
		Runs:     1,
		Contacts: true,
	}
}

func TestSimulate_LogsEveryContact(t *testing.T) {
	opts := contactOptions()

	sc, err := loadScene(opts)
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)

	result, err := simulate(sc, opts, zap.New(core))
	require.NoError(t, err)
	require.Greater(t, result.Contact, 100)

	require.Equal(t, result.Contact, logs.FilterMessage("Contact").Len())
}

func TestNewLogger_KeepsContacts(t *testing.T) {
	opts := contactOptions()

	path := filepath.Join(t.TempDir(), "contacts.json")

	logger, err := newLogger(opts, "info", "json", logging.WithOutput(path))
	require.NoError(t, err)

	sc, err := loadScene(opts)
	require.NoError(t, err)

	result, err := simulate(sc, opts, logger)
	require.NoError(t, err)
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Greater(t, result.Contact, 100)
	require.Equal(t, result.Contact, strings.Count(string(content), `"msg":"Contact"`))
}
