package factory

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/lychee-technology/minid"
	"go.uber.org/zap"
)

// LoadConfig returns minid.DefaultConfig overridden by MINID_* environment
// variables, validated.
//
// Usage:
//
//	config, err := factory.LoadConfig()
//	if err != nil {
//	    // handle error
//	}
//	logger, err := factory.NewLogger(config.Logging)
//	gen, err := factory.NewGenerator(config, nil)
func LoadConfig() (*minid.Config, error) {
	config := minid.DefaultConfig()
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// NewLogger builds a zap logger from the logging configuration.
func NewLogger(config minid.LoggingConfig) (*zap.Logger, error) {
	var zc zap.Config
	if config.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	if config.Level != "" {
		level, err := zap.ParseAtomicLevel(config.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", config.Level, err)
		}
		zc.Level = level
	}

	if config.Format != "" {
		zc.Encoding = config.Format
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// NewGenerator creates a Generator using the configured prefix. A nil reader
// uses crypto/rand.
func NewGenerator(config *minid.Config, r io.Reader) (*minid.Generator, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	gen, err := minid.NewGenerator(config.Generator.Prefix, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	zap.S().Debugw("generator created", "prefix", gen.Prefix())
	return gen, nil
}
