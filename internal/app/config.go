package app

import (
	"flag"
	"fmt"
	"strconv"

	"falling-sand/internal/sims/sand"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Sim        sand.Config
	Scale      int
	TPS        int
	LogLevel   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: sand.DefaultConfig(), Scale: 2, TPS: 60, LogLevel: "info"}
}

// configResolver resolves a single configuration value from a flag or an
// environment variable, flag first.
type configResolver struct {
	flagName   string
	envVarName string
	usage      string
	apply      func(*Config, string) error
}

func intSetter(name string, dst func(*Config) *int, min int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < min {
			return fmt.Errorf("%w: %s=%q must be an integer >= %d", sand.ErrInvalidConfig, name, v, min)
		}
		*dst(c) = n
		return nil
	}
}

var resolvers = []configResolver{
	{
		flagName:   "w",
		envVarName: "SAND_WIDTH",
		usage:      "grid width in cells",
		apply:      intSetter("w", func(c *Config) *int { return &c.Sim.Width }, 1),
	},
	{
		flagName:   "h",
		envVarName: "SAND_HEIGHT",
		usage:      "grid height in cells",
		apply:      intSetter("h", func(c *Config) *int { return &c.Sim.Height }, 1),
	},
	{
		flagName:   "scale",
		envVarName: "SAND_SCALE",
		usage:      "pixel scale multiplier",
		apply:      intSetter("scale", func(c *Config) *int { return &c.Scale }, 1),
	},
	{
		flagName:   "tps",
		envVarName: "SAND_TPS",
		usage:      "ticks per second",
		apply:      intSetter("tps", func(c *Config) *int { return &c.TPS }, 1),
	},
	{
		flagName:   "brush",
		envVarName: "SAND_BRUSH",
		usage:      "initial brush radius",
		apply:      intSetter("brush", func(c *Config) *int { return &c.Sim.Brush.Radius }, sand.MinBrushRadius),
	},
	{
		flagName:   "seed",
		envVarName: "SAND_SEED",
		usage:      "seed for simulation reset",
		apply: func(c *Config, v string) error {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: seed=%q: %v", sand.ErrInvalidConfig, v, err)
			}
			c.Sim.Seed = n
			return nil
		},
	},
	{
		flagName:   "ticks",
		envVarName: "SAND_TICKS",
		usage:      "tie-break source: clock or seeded",
		apply:      func(c *Config, v string) error { c.Sim.Ticks = v; return nil },
	},
	{
		flagName:   "material",
		envVarName: "SAND_MATERIAL",
		usage:      "initial brush material (empty, sand, water, dirt)",
		apply:      func(c *Config, v string) error { c.Sim.Brush.Material = v; return nil },
	},
	{
		flagName:   "log-level",
		envVarName: "SAND_LOG_LEVEL",
		usage:      "log level: debug, info, warn, error",
		apply:      func(c *Config, v string) error { c.LogLevel = v; return nil },
	},
}

// Load resolves the configuration with precedence flag > environment > YAML
// file > defaults. Extra flags registered on fs before the call are parsed
// too.
func Load(fs *flag.FlagSet, args []string, getenv func(string) string) (*Config, error) {
	path := fs.String("config", "", "optional YAML config file (env SAND_CONFIG)")
	flagVars := make(map[string]*string, len(resolvers))
	for _, r := range resolvers {
		flagVars[r.flagName] = fs.String(r.flagName, "", r.usage+" (env "+r.envVarName+")")
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := NewConfig()
	cfg.ConfigPath = *path
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = getenv("SAND_CONFIG")
	}
	if cfg.ConfigPath != "" {
		if err := LoadFile(cfg.ConfigPath, cfg); err != nil {
			return nil, err
		}
	}

	for _, r := range resolvers {
		value := *flagVars[r.flagName]
		if value == "" {
			value = getenv(r.envVarName)
		}
		if value == "" {
			continue
		}
		if err := r.apply(cfg, value); err != nil {
			return nil, err
		}
	}

	if err := cfg.Sim.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
