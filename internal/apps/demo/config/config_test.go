package config

import (
	"testing"

	"github.com/dlomanov/clearable/internal/ui/input"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func validConfig() Config {
	return Config{
		LogLevel:  "info",
		LogType:   "none",
		Hint:      "Search",
		InputKind: "text",
		Enabled:   true,
		Width:     24,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		wantIs  error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty_kind_is_text", mutate: func(c *Config) { c.InputKind = "" }},
		{name: "no_log_level", mutate: func(c *Config) { c.LogLevel = "" }, wantErr: true},
		{name: "no_log_type", mutate: func(c *Config) { c.LogType = "" }, wantErr: true},
		{name: "zero_width", mutate: func(c *Config) { c.Width = 0 }, wantErr: true},
		{name: "negative_char_limit", mutate: func(c *Config) { c.CharLimit = -1 }, wantErr: true},
		{
			name:    "unknown_kind",
			mutate:  func(c *Config) { c.InputKind = "date" },
			wantErr: true,
			wantIs:  input.ErrUnknownInputKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			err := c.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestSearchAttrs(t *testing.T) {
	c := validConfig()
	c.Enabled = false
	c.InputKind = "number"

	attrs := c.SearchAttrs()
	require.Equal(t, "number", attrs.InputKind)
	require.NotNil(t, attrs.Hint)
	require.Equal(t, "Search", *attrs.Hint)
	require.NotNil(t, attrs.Enabled)
	require.False(t, *attrs.Enabled)
}

func TestValidate_ReportsEveryError(t *testing.T) {
	c := Config{InputKind: "date", CharLimit: -1}
	err := c.Validate()
	require.ErrorIs(t, err, input.ErrUnknownInputKind)
	require.Len(t, multierr.Errors(err), 5, "log level, log type, kind, width and char limit")
}
