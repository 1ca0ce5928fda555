package config

import (
	"errors"

	"github.com/dlomanov/clearable/internal/ui/input"
	"go.uber.org/multierr"
)

type Config struct {
	LogLevel       string   // log level
	LogType        string   // logger type
	LogOutputPaths []string // logger output paths
	Hint           string   // search field hint
	InputKind      string   // search field input kind
	Enabled        bool     // whether the search field accepts input
	Width          int      // visible text cells of each field
	CharLimit      int      // search field char limit, zero means unlimited
	BuildVersion   string   // build version info
	BuildDate      string   // build date info
	BuildCommit    string   // build commit info
}

func (c Config) Validate() (err error) {
	if c.LogLevel == "" {
		err = multierr.Append(err, errors.New("log level should be specified"))
	}
	if c.LogType == "" {
		err = multierr.Append(err, errors.New("log type should be specified"))
	}
	if _, kindErr := input.ParseInputKind(c.InputKind); kindErr != nil {
		err = multierr.Append(err, kindErr)
	}
	if c.Width <= 0 {
		err = multierr.Append(err, errors.New("width should be positive"))
	}
	if c.CharLimit < 0 {
		err = multierr.Append(err, errors.New("char limit should not be negative"))
	}
	return err
}

// SearchAttrs converts the search field settings to input attributes.
func (c Config) SearchAttrs() input.Attrs {
	hint, enabled := c.Hint, c.Enabled
	return input.Attrs{
		InputKind: c.InputKind,
		Hint:      &hint,
		Enabled:   &enabled,
	}
}
