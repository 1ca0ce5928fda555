package logging

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	LogTypeDevelopment LogType = "development"
	LogTypeProduction  LogType = "production"
	// LogTypeNone discards everything. Useful while the terminal is owned by the UI.
	LogTypeNone LogType = "none"
)

type (
	Config struct {
		Level       string
		Type        string
		OutputPaths []string
	}
	LogType string
)

func NewLogger(config Config) (*zap.Logger, error) {
	if LogType(config.Type) == LogTypeNone {
		return zap.NewNop(), nil
	}
	lvl, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", config.Level, err)
	}

	var c zap.Config
	switch LogType(config.Type) {
	case LogTypeDevelopment:
		c = zap.NewDevelopmentConfig()
	case LogTypeProduction:
		c = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("logging: unknown logger type %s", config.Type)
	}

	c.Level = lvl
	if len(config.OutputPaths) != 0 {
		c.OutputPaths = config.OutputPaths
		c.ErrorOutputPaths = config.OutputPaths
	}
	return c.Build()
}
