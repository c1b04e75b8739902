package app

import (
	"flag"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

// EnvPrefix namespaces environment overrides, e.g. LIFE_RULE_UPPER.
const EnvPrefix = "LIFE_"

// Config represents the startup parameters for the application. Values are
// layered: defaults, then the YAML file, then LIFE_* variables, then flags
// given explicitly on the command line.
type Config struct {
	Sim        string `mapstructure:"sim" yaml:"sim" env:"SIM"`
	ConfigFile string `mapstructure:"-" yaml:"-" env:"CONFIG"`

	TPS    int     `mapstructure:"tps" yaml:"tps" env:"TPS"`
	Seed   int64   `mapstructure:"seed" yaml:"seed" env:"SEED"`
	Width  int     `mapstructure:"width" yaml:"width" env:"WIDTH"`
	Height int     `mapstructure:"height" yaml:"height" env:"HEIGHT"`
	Zoom   float64 `mapstructure:"zoom" yaml:"zoom" env:"ZOOM"`

	Pitch       int     `mapstructure:"pitch" yaml:"pitch" env:"PITCH"`
	GridDim     int     `mapstructure:"grid_dim" yaml:"grid_dim" env:"GRID_DIM"`
	FillChance  float64 `mapstructure:"fill_chance" yaml:"fill_chance" env:"FILL_CHANCE"`
	SeedMode    string  `mapstructure:"seed_mode" yaml:"seed_mode" env:"SEED_MODE"`
	RuleLower   int     `mapstructure:"rule_lower" yaml:"rule_lower" env:"RULE_LOWER"`
	RuleUpper   int     `mapstructure:"rule_upper" yaml:"rule_upper" env:"RULE_UPPER"`
	WorldRadius float64 `mapstructure:"world_radius" yaml:"world_radius" env:"WORLD_RADIUS"`
	Workers     int     `mapstructure:"workers" yaml:"workers" env:"WORKERS"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	eng := life.DefaultConfig()
	seed := life.DefaultSeedConfig()
	return &Config{
		Sim:         "life",
		TPS:         60,
		Seed:        42,
		Width:       800,
		Height:      600,
		Zoom:        1,
		Pitch:       int(eng.Pitch),
		GridDim:     seed.Dim,
		FillChance:  seed.FillChance,
		SeedMode:    string(seed.Mode),
		RuleLower:   int(eng.Rule.Lower),
		RuleUpper:   int(eng.Rule.Upper),
		WorldRadius: eng.Bound.Radius,
		Workers:     eng.Workers,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML file with startup parameters")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.Float64Var(&c.Zoom, "zoom", c.Zoom, "initial pixels per world unit")
	fs.IntVar(&c.Pitch, "pitch", c.Pitch, "world units between neighbouring cells")
	fs.IntVar(&c.GridDim, "grid", c.GridDim, "side of the initial seeded square, in cells")
	fs.Float64Var(&c.FillChance, "fill", c.FillChance, "probability that a seeded cell starts alive")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "initial fill: random or noise")
	fs.IntVar(&c.RuleLower, "lower", c.RuleLower, "fewest neighbours a live cell survives with")
	fs.IntVar(&c.RuleUpper, "upper", c.RuleUpper, "most neighbours a live cell survives with; also the birth count")
	fs.Float64Var(&c.WorldRadius, "radius", c.WorldRadius, "cells farther than this from the origin die (0 disables)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used for neighbour counting")
}

// Resolve layers the config file and environment beneath the flags that
// were set explicitly on fs, then validates the result. fs must already be
// parsed.
func (c *Config) Resolve(fs *flag.FlagSet, environ map[string]string) error {
	resolved := NewConfig()
	resolved.ConfigFile = c.ConfigFile
	if path, ok := environ[EnvPrefix+"CONFIG"]; ok && resolved.ConfigFile == "" {
		resolved.ConfigFile = path
	}
	if resolved.ConfigFile != "" {
		if err := resolved.LoadFile(resolved.ConfigFile); err != nil {
			return err
		}
	}
	if err := resolved.ApplyEnv(environ); err != nil {
		return err
	}

	again := flag.NewFlagSet("resolve", flag.ContinueOnError)
	again.SetOutput(io.Discard)
	resolved.Bind(again)
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil || again.Lookup(f.Name) == nil {
			return
		}
		if setErr := again.Set(f.Name, f.Value.String()); setErr != nil {
			err = errors.Wrapf(setErr, "[Config.Resolve] flag -%s", f.Name)
		}
	})
	if err != nil {
		return err
	}

	*c = *resolved
	return c.Validate()
}

// LoadFile merges the YAML file at path into c. Keys absent from the file keep
// their current values.
func (c *Config) LoadFile(path string) error {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	if err := vp.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "[Config.LoadFile] failed to read file: %+v", path)
	}
	if err := vp.Unmarshal(c); err != nil {
		return errors.Wrapf(err, "[Config.LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// ApplyEnv overrides fields from LIFE_* variables found in environ. Pass
// env.ToMap(os.Environ()) to read the process environment.
func (c *Config) ApplyEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return errors.Wrap(err, "[Config.ApplyEnv] failed to parse environment")
	}
	return nil
}

// Dump writes c as YAML, suitable as a -config file.
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "[Config.Dump] failed to encode config")
	}
	return enc.Close()
}

// Validate checks every field is in range.
func (c *Config) Validate() error {
	switch {
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	case c.Zoom <= 0:
		return errors.Errorf("zoom must be positive, got %v", c.Zoom)
	case c.GridDim < 0:
		return errors.Errorf("grid must not be negative, got %d", c.GridDim)
	case c.FillChance < 0 || c.FillChance > 1:
		return errors.Errorf("fill must be within [0, 1], got %v", c.FillChance)
	case c.RuleLower < 0 || c.RuleLower > 8 || c.RuleUpper < 0 || c.RuleUpper > 8:
		return errors.Wrapf(life.ErrInvalidRule, "bounds %d..%d", c.RuleLower, c.RuleUpper)
	case c.Pitch <= 0 || c.Pitch > 1<<20:
		return errors.Wrapf(life.ErrInvalidPitch, "pitch %d", c.Pitch)
	case c.Workers < 1:
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := life.ParseSeedMode(c.SeedMode); err != nil {
		return err
	}
	return c.EngineConfig().Rule.Validate()
}

// EngineConfig projects the startup parameters onto the engine.
func (c *Config) EngineConfig() life.Config {
	return life.Config{
		Pitch:   int64(c.Pitch),
		Rule:    life.Rule{Lower: uint8(c.RuleLower), Upper: uint8(c.RuleUpper)},
		Bound:   life.WorldBound{Radius: c.WorldRadius},
		Workers: c.Workers,
	}
}

// SeedConfig projects the startup parameters onto the initial fill.
func (c *Config) SeedConfig() life.SeedConfig {
	mode, _ := life.ParseSeedMode(c.SeedMode)
	return life.SeedConfig{Dim: c.GridDim, FillChance: c.FillChance, Mode: mode}
}

// Options bundles everything a Sim factory needs.
func (c *Config) Options() core.Options {
	return core.Options{Engine: c.EngineConfig(), Seed: c.SeedConfig()}
}
