package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option changes the zap configuration before the logger is built.
type Option func(config *zap.Config)

// WithoutSampling keeps every log entry. By default repeated messages are
// sampled: the first 100 per second are logged, then every 100th.
func WithoutSampling() Option {
	return func(config *zap.Config) {
		config.Sampling = nil
	}
}

// WithOutput replaces stderr with the given zap output paths.
func WithOutput(outputs ...string) Option {
	return func(config *zap.Config) {
		config.OutputPaths = outputs
	}
}

// New builds a logger writing to stderr. Level is one of debug, info, warn
// or error, format is either json or console.
func New(level, format string, options ...Option) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var encoderConfig zapcore.EncoderConfig
	switch format {
	case "json":
		encoderConfig = zap.NewProductionEncoderConfig()
	case "console":
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}

	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(zapLevel),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	for _, option := range options {
		option(&config)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}

	return logger, nil
}
