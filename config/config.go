// Package config loads and validates netgraph settings.
//
// Config file locations (priority order):
//  1. $NETGRAPH_CONFIG
//  2. ./netgraph.yaml
//  3. $XDG_CONFIG_HOME/netgraph/config.yaml
//  4. ~/.config/netgraph/config.yaml
//
// Missing files yield DefaultConfig. A loaded file is decoded over
// DefaultConfig, so only the keys it sets change; an explicit zero stays zero.
// The hierarchical layout inherits layout.spring unless it sets its own.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netgraph/layout"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path.
	EnvConfigPath = "NETGRAPH_CONFIG"
	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = "netgraph.yaml"
	// ConfigDirName is the directory name under the XDG config home.
	ConfigDirName = "netgraph"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of the YAML document.
type Config struct {
	Version int           `yaml:"version" validate:"gte=1"`
	Layout  layout.Config `yaml:"layout"`
	Solver  SolverConfig  `yaml:"solver"`
	Log     LogConfig     `yaml:"log"`
}

// SolverConfig selects path and flow solver behavior.
type SolverConfig struct {
	// FlowAlgorithm is the algorithm used by MaxFlow.
	FlowAlgorithm string `yaml:"flow_algorithm" validate:"oneof=ford-fulkerson edmonds-karp dinic"`
	// CrossCheck names a second algorithm whose value must match; empty disables it.
	CrossCheck string `yaml:"cross_check,omitempty" validate:"omitempty,oneof=ford-fulkerson edmonds-karp dinic"`
	// UseCosts weights shortest paths by directional link cost instead of hops.
	UseCosts bool `yaml:"use_costs"`
	// VerboseFlow logs every augmenting path at debug level.
	VerboseFlow bool `yaml:"verbose_flow"`
}

// LogConfig configures the slog handler built by NewLogger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig returns the settings used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Layout:  layout.DefaultConfig(),
		Solver: SolverConfig{
			FlowAlgorithm: "edmonds-karp",
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load finds and loads the config file, or returns defaults if none is found.
// The second result is the path used, empty for defaults.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads, completes and validates the config at path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	return cfg, path, err
}

// Parse decodes a YAML document over DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	var keys struct {
		Layout struct {
			Hierarchical struct {
				Spring *yaml.Node `yaml:"spring"`
			} `yaml:"hierarchical"`
		} `yaml:"layout"`
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if keys.Layout.Hierarchical.Spring == nil {
		cfg.Layout.Hierarchical.Spring = cfg.Layout.Spring
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

var validate = validator.New()

// Validate checks every section, wrapping the first failure in ErrInvalid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return fmt.Errorf("%w: %s: %s %s", ErrInvalid, e.Namespace(), e.Tag(), e.Param())
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

// FindConfigPath returns the first existing config file in priority order,
// or "" when none exists.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}
	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		if path := filepath.Join(xdg, ConfigDirName, "config.yaml"); fileExists(path) {
			return path
		}
	}
	if home := os.Getenv("HOME"); home != "" {
		if path := filepath.Join(home, ".config", ConfigDirName, "config.yaml"); fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
