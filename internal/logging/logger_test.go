package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	logger, err := New("debug", "console")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = New("warn", "json")
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zap.InfoLevel))
	require.True(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("verbose", "json")
	require.Error(t, err)

	_, err = New("info", "xml")
	require.Error(t, err)
}

func TestNew_JsonOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	logger, err := New("info", "json", WithOutput(path))
	require.NoError(t, err)

	logger.Info("Step finished", zap.Uint64("step", 12))
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(content, &entry))
	require.Equal(t, "Step finished", entry["msg"])
	require.Equal(t, "info", entry["level"])
	require.EqualValues(t, 12, entry["step"])
}

func TestNew_Sampling(t *testing.T) {
	countLines := func(t *testing.T, options ...Option) int {
		path := filepath.Join(t.TempDir(), "log.json")

		logger, err := New("info", "json", append(options, WithOutput(path))...)
		require.NoError(t, err)

		for idx := range 250 {
			logger.Info("Contact", zap.Int("idx", idx))
		}

		require.NoError(t, logger.Sync())

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		return strings.Count(string(content), "\n")
	}

	require.Less(t, countLines(t), 250)
	require.Equal(t, 250, countLines(t, WithoutSampling()))
}
