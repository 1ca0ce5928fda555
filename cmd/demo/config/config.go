package config

import (
	"embed"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env"
	democonfig "github.com/dlomanov/clearable/internal/apps/demo/config"
	"gopkg.in/yaml.v3"
)

type config struct {
	LogLevel       string   `yaml:"log_level" env:"LOG_LEVEL"`
	LogType        string   `yaml:"log_type" env:"LOG_TYPE"`
	LogOutputPaths []string `yaml:"log_output_paths" env:"LOG_OUTPUT_PATHS" envSeparator:","`
	Hint           string   `yaml:"hint" env:"HINT"`
	InputKind      string   `yaml:"input_kind" env:"INPUT_KIND"`
	Enabled        bool     `yaml:"enabled" env:"ENABLED"`
	Width          int      `yaml:"width" env:"WIDTH"`
	CharLimit      int      `yaml:"char_limit" env:"CHAR_LIMIT"`
	ConfigPath     string   `yaml:"config,omitempty" env:"CONFIG"`
}

//go:embed config.yaml
var configFS embed.FS

func Parse() democonfig.Config {
	c := &config{}
	c.readDefaults()
	c.readConfig()
	c.readFlags()
	c.readEnv()
	c.print()
	return c.toConfig()
}

func (c *config) readDefaults() {
	content, err := configFS.ReadFile("config.yaml")
	if err != nil {
		panic(err)
	}
	if err := yaml.Unmarshal(content, c); err != nil {
		panic(err)
	}
}

// readConfig applies the file named by -c/-config or CONFIG. It runs before
// flag.Parse, so the flag value is taken from os.Args directly.
func (c *config) readConfig() {
	path := lookupArg(os.Args[1:], "c", "config")
	if cp, ok := os.LookupEnv("CONFIG"); ok {
		path = cp
	}
	if path == "" {
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err = yaml.Unmarshal(content, c); err != nil {
		panic(err)
	}
	c.ConfigPath = path
}

func (c *config) readFlags() {
	flag.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	flag.StringVar(&c.LogType, "log-type", c.LogType, "logger type: development, production or none")
	flag.StringVar(&c.Hint, "hint", c.Hint, "search field hint")
	flag.StringVar(&c.InputKind, "k", c.InputKind, "search field input kind (shorthand)")
	flag.StringVar(&c.InputKind, "kind", c.InputKind, "search field input kind: text, number or password")
	flag.BoolVar(&c.Enabled, "enabled", c.Enabled, "whether the search field accepts input")
	flag.IntVar(&c.Width, "w", c.Width, "field width (shorthand)")
	flag.IntVar(&c.Width, "width", c.Width, "field width")
	flag.IntVar(&c.CharLimit, "char-limit", c.CharLimit, "search field char limit")
	flag.StringVar(&c.ConfigPath, "c", c.ConfigPath, "config path (shorthand)")
	flag.StringVar(&c.ConfigPath, "config", c.ConfigPath, "config path")
	flag.Parse()
}

func (c *config) readEnv() {
	err := env.Parse(c)
	if err != nil {
		panic(err)
	}
}

func (c config) print() {
	content, err := yaml.Marshal(c)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(content))
}

func (c *config) toConfig() democonfig.Config {
	return democonfig.Config{
		LogLevel:       c.LogLevel,
		LogType:        c.LogType,
		LogOutputPaths: c.LogOutputPaths,
		Hint:           c.Hint,
		InputKind:      c.InputKind,
		Enabled:        c.Enabled,
		Width:          c.Width,
		CharLimit:      c.CharLimit,
	}
}

func lookupArg(args []string, names ...string) string {
	for i, arg := range args {
		for _, name := range names {
			for _, prefix := range []string{"-", "--"} {
				flagName := prefix + name
				switch {
				case arg == flagName && i+1 < len(args):
					return args[i+1]
				case len(arg) > len(flagName)+1 && arg[:len(flagName)+1] == flagName+"=":
					return arg[len(flagName)+1:]
				}
			}
		}
	}
	return ""
}
