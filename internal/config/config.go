// Package config loads the topology/algorithm configuration object of
// spec.md §6 via viper: JSON (or YAML/TOML) file, LATTICECUT_*
// environment variables, and programmatic defaults, the way the
// teacher's internal/app assumed a *config.Config was available.
package config

import (
	"fmt"
	"strings"

	"github.com/kegliz/latticecut/lattice"
	"github.com/kegliz/latticecut/pattern"
	"github.com/spf13/viper"
)

// Config is the full topology + algorithm configuration object.
type Config struct {
	// Topology
	Width          int             `mapstructure:"width" json:"width"`
	Height         int             `mapstructure:"height" json:"height"`
	QubitAtOrigin  bool            `mapstructure:"qubitAtOrigin" json:"qubitAtOrigin"`
	UnusedQubits   []int           `mapstructure:"unusedQubits" json:"unusedQubits"`
	UnusedCouplers [][2]int        `mapstructure:"unusedCouplers" json:"unusedCouplers"`

	// Algorithm
	MinDepth     int      `mapstructure:"minDepth" json:"minDepth"`
	MaxDepth     int      `mapstructure:"maxDepth" json:"maxDepth"`
	MaxUnbalance int      `mapstructure:"maxUnbalance" json:"maxUnbalance"`
	Ordering     []string `mapstructure:"ordering" json:"ordering"`
	Patterns     []string `mapstructure:"patterns" json:"patterns"`
	MaxPatterns  int      `mapstructure:"maxPatterns" json:"maxPatterns"`

	// Ambient
	Debug bool `mapstructure:"debug" json:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", 12)
	v.SetDefault("height", 11)
	v.SetDefault("qubitAtOrigin", false)
	v.SetDefault("unusedQubits", []int{})
	v.SetDefault("unusedCouplers", [][2]int{})
	v.SetDefault("minDepth", 0)
	v.SetDefault("maxUnbalance", 6)
	v.SetDefault("ordering", []string{"A", "B", "C", "D", "A", "B", "C", "D"})
	v.SetDefault("patterns", []string{})
	v.SetDefault("maxPatterns", 0)
	v.SetDefault("debug", false)
}

// Load reads configuration from file (may be empty, meaning defaults plus
// environment only), overlays LATTICECUT_* environment variables, and
// resolves maxDepth's dynamic default of max(width,height) when unset.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("LATTICECUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if !v.IsSet("maxDepth") {
		c.MaxDepth = max(c.Width, c.Height)
	} else {
		c.MaxDepth = v.GetInt("maxDepth")
	}
	return &c, nil
}

// Save writes c to file in the format named by the file's extension
// (indented JSON for a .json file).
func Save(c *Config, file string) error {
	v := viper.New()
	v.SetConfigFile(file)
	for k, val := range c.asMap() {
		v.Set(k, val)
	}
	return v.WriteConfigAs(file)
}

func (c *Config) asMap() map[string]interface{} {
	return map[string]interface{}{
		"width":          c.Width,
		"height":         c.Height,
		"qubitAtOrigin":  c.QubitAtOrigin,
		"unusedQubits":   c.UnusedQubits,
		"unusedCouplers": c.UnusedCouplers,
		"minDepth":       c.MinDepth,
		"maxDepth":       c.MaxDepth,
		"maxUnbalance":   c.MaxUnbalance,
		"ordering":       c.Ordering,
		"patterns":       c.Patterns,
		"maxPatterns":    c.MaxPatterns,
		"debug":          c.Debug,
	}
}

// LatticeConfig converts the topology fields into a lattice.Config.
func (c *Config) LatticeConfig() lattice.Config {
	couplers := make([]lattice.Coupler, len(c.UnusedCouplers))
	for i, p := range c.UnusedCouplers {
		couplers[i] = lattice.Coupler{A: p[0], B: p[1]}
	}
	return lattice.Config{
		Width:          c.Width,
		Height:         c.Height,
		QubitAtOrigin:  c.QubitAtOrigin,
		UnusedQubits:   c.UnusedQubits,
		UnusedCouplers: couplers,
	}
}

// OrderingSequence parses the Ordering string list into pattern.Order
// values, returning pattern.ErrInvalidOrder (via %w) on any unrecognized
// label.
func (c *Config) OrderingSequence() ([]pattern.Order, error) {
	out := make([]pattern.Order, len(c.Ordering))
	for i, s := range c.Ordering {
		o, err := pattern.ParseOrder(s)
		if err != nil {
			return nil, fmt.Errorf("config: ordering[%d]: %w", i, err)
		}
		out[i] = o
	}
	return out, nil
}
