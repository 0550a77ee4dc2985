package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"

	"github.com/darkroomkit/easelcalc/internal/easel"
	"github.com/darkroomkit/easelcalc/internal/logging"
	engineconfig "github.com/darkroomkit/easelcalc/pkg/config"
	"github.com/darkroomkit/easelcalc/pkg/core"
)

const (
	// EnvPrefix is the prefix of environment variables overriding engine settings,
	// e.g. EASELCALC_ENGINE_SNAPUNIT.
	EnvPrefix = "EASELCALC"

	// ConfigFileKey is the viper key holding the path of the YAML configuration file.
	ConfigFileKey = "config"
)

// EaselEntry is one easel in the configuration file.
type EaselEntry struct {
	Name   string  `yaml:"name,omitempty" json:"name,omitempty"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Validate checks for invalid easel dimensions.
func (e EaselEntry) Validate() error {
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("easel dimensions must be > 0, got %gx%g", e.Width, e.Height)
	}
	return nil
}

// EngineConfig is the content of the easelcalc configuration file.
//
// Example:
//
//	engine:
//	  snapUnit: 0.125
//	  cacheCapacity: 50
//	easels:
//	  - name: "8x10"
//	    width: 10
//	    height: 8
type EngineConfig struct {
	Engine engineconfig.EngineSpec `yaml:"engine,omitempty" json:"engine,omitempty"`
	Easels []EaselEntry            `yaml:"easels,omitempty" json:"easels,omitempty"`
}

// DefaultEngineConfig returns the configuration used when no file is given.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{Engine: engineconfig.DefaultEngineSpec()}
}

// Validate checks the engine spec and every easel entry.
func (c EngineConfig) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("invalid engine settings: %w", err)
	}
	for i, e := range c.Easels {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("invalid easel %d (%s): %w", i, e.Name, err)
		}
	}
	return nil
}

// Catalog returns the configured easels, or the standard easels when none are configured.
func (c EngineConfig) Catalog() []core.EaselSize {
	if len(c.Easels) == 0 {
		return easel.StandardEasels
	}
	out := make([]core.EaselSize, 0, len(c.Easels))
	for _, e := range c.Easels {
		name := e.Name
		if name == "" {
			name = core.Size{Width: e.Width, Height: e.Height}.String()
		}
		out = append(out, core.EaselSize{Name: name, Width: e.Width, Height: e.Height})
	}
	return out
}

// ParseEngineConfig parses a YAML configuration file. Engine settings are merged over
// the defaults; invalid easel entries are skipped, and on duplicate names the first
// entry wins.
func ParseEngineConfig(data []byte) (EngineConfig, error) {
	var raw EngineConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return EngineConfig{}, fmt.Errorf("failed to parse engine config: %w", err)
	}

	out := DefaultEngineConfig()
	out.Engine = out.Engine.Merge(raw.Engine)
	if err := out.Engine.Validate(); err != nil {
		return EngineConfig{}, fmt.Errorf("invalid engine settings: %w", err)
	}

	seen := make(map[string]int)
	for i, e := range raw.Easels {
		if err := e.Validate(); err != nil {
			logging.Log().Info("Invalid easel config entry, skipping",
				"index", i,
				"name", e.Name,
				"error", err)
			continue
		}
		if e.Name != "" {
			if first, dup := seen[e.Name]; dup {
				logging.Log().Info("Duplicate easel name found in config - first entry wins",
					"name", e.Name,
					"winningIndex", first,
					"duplicateIndex", i)
				continue
			}
			seen[e.Name] = i
		}
		out.Easels = append(out.Easels, e)
	}

	logging.Log().V(logging.DEBUG).Info("Parsed engine config",
		"easelCount", len(out.Easels),
		"snapUnit", out.Engine.SnapUnit,
		"cacheCapacity", out.Engine.CacheCapacity)

	return out, nil
}

// engineKeys maps viper keys to flag names for the engine settings that can be
// overridden from the environment or the command line.
var engineKeys = []struct {
	key, flag, usage string
	isInt            bool
}{
	{"engine.snapUnit", "snap-unit", "ruler increment borders are snapped to", false},
	{"engine.searchSpan", "search-span", "distance searched either side of the requested border", false},
	{"engine.minStep", "min-step", "smallest step of the border search", false},
	{"engine.displayPrecision", "precision", "decimals the optimized border is rounded to", true},
	{"engine.bladeThickness", "blade-thickness", "blade thickness at the base paper area", false},
	{"engine.cacheCapacity", "cache-capacity", "fit results kept before eviction", true},
}

// BindFlags registers the engine override flags on fs and binds them to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String(ConfigFileKey, "", "path to a YAML engine configuration file")
	if err := v.BindPFlag(ConfigFileKey, fs.Lookup(ConfigFileKey)); err != nil {
		return fmt.Errorf("binding flag %s: %w", ConfigFileKey, err)
	}
	for _, k := range engineKeys {
		if k.isInt {
			fs.Int(k.flag, 0, k.usage)
		} else {
			fs.Float64(k.flag, 0, k.usage)
		}
		if err := v.BindPFlag(k.key, fs.Lookup(k.flag)); err != nil {
			return fmt.Errorf("binding flag %s: %w", k.flag, err)
		}
	}
	return nil
}

// NewViper returns a viper instance reading EASELCALC_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadEngineConfig reads the configuration file named by the "config" key (if any)
// and overlays engine settings set through the environment or flags bound to v.
func LoadEngineConfig(v *viper.Viper) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	if path := v.GetString(ConfigFileKey); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return EngineConfig{}, fmt.Errorf("failed to read engine config %s: %w", path, err)
		}
		if cfg, err = ParseEngineConfig(data); err != nil {
			return EngineConfig{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	var override engineconfig.EngineSpec
	for _, k := range engineKeys {
		if !v.IsSet(k.key) {
			continue
		}
		switch k.key {
		case "engine.snapUnit":
			override.SnapUnit = v.GetFloat64(k.key)
		case "engine.searchSpan":
			override.SearchSpan = v.GetFloat64(k.key)
		case "engine.minStep":
			override.MinStep = v.GetFloat64(k.key)
		case "engine.displayPrecision":
			override.DisplayPrecision = ptr.To(v.GetInt(k.key))
		case "engine.bladeThickness":
			override.BladeThickness = v.GetFloat64(k.key)
		case "engine.cacheCapacity":
			override.CacheCapacity = v.GetInt(k.key)
		}
	}
	cfg.Engine = cfg.Engine.Merge(override)

	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}
