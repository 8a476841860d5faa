package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/areanav/navmap"
	"github.com/katalvlaran/areanav/pathfinder"
	"github.com/katalvlaran/areanav/telemetry"
)

// ErrInvalid reports a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the root of areanav.yaml.
type Config struct {
	Portals    PortalsConfig    `yaml:"portals"`
	Belief     BeliefConfig     `yaml:"belief"`
	Pathfinder PathfinderConfig `yaml:"pathfinder"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// PortalsConfig tunes portal grouping.
type PortalsConfig struct {
	MaxGroupSize int `yaml:"max_group_size"` // 0 = unbounded runs
}

// BeliefConfig holds the stale-window escalation schedule.
type BeliefConfig struct {
	MaxWindow  int64 `yaml:"max_window"`
	MinWindow  int64 `yaml:"min_window"`
	WindowStep int64 `yaml:"window_step"`
}

// PathfinderConfig bounds search effort.
type PathfinderConfig struct {
	MaxExpansions int `yaml:"max_expansions"` // per A* run, 0 = unbounded
	MaxReplans    int `yaml:"max_replans"`
}

// CacheConfig locates the map bundle cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// MetricsConfig configures the Prometheus textfile output.
type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
	File      string `yaml:"file"` // empty = no output
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	pf := pathfinder.DefaultOptions()

	return &Config{
		Belief: BeliefConfig{
			MaxWindow:  pf.MaxWindow,
			MinWindow:  pf.MinWindow,
			WindowStep: pf.WindowStep,
		},
		Pathfinder: PathfinderConfig{
			MaxExpansions: pf.MaxExpansions,
			MaxReplans:    pf.MaxReplans,
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    filepath.Join(".areanav", "cache.db"),
		},
		Logging: LoggingConfig{Level: "info"},
		Metrics: MetricsConfig{Namespace: telemetry.DefaultNamespace},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v, ok := os.LookupEnv("AREANAV_CACHE"); ok {
		c.Cache.Path = v
		c.Cache.Enabled = v != ""
	}
	if v := os.Getenv("AREANAV_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks every range constraint.
func (c *Config) Validate() error {
	switch {
	case c.Portals.MaxGroupSize < 0:
		return fmt.Errorf("%w: portals.max_group_size %d < 0", ErrInvalid, c.Portals.MaxGroupSize)
	case c.Belief.MinWindow < 0:
		return fmt.Errorf("%w: belief.min_window %d < 0", ErrInvalid, c.Belief.MinWindow)
	case c.Belief.MaxWindow < c.Belief.MinWindow:
		return fmt.Errorf("%w: belief.max_window %d < min_window %d", ErrInvalid, c.Belief.MaxWindow, c.Belief.MinWindow)
	case c.Belief.WindowStep <= 0:
		return fmt.Errorf("%w: belief.window_step %d <= 0", ErrInvalid, c.Belief.WindowStep)
	case c.Pathfinder.MaxExpansions < 0:
		return fmt.Errorf("%w: pathfinder.max_expansions %d < 0", ErrInvalid, c.Pathfinder.MaxExpansions)
	case c.Pathfinder.MaxReplans < 0:
		return fmt.Errorf("%w: pathfinder.max_replans %d < 0", ErrInvalid, c.Pathfinder.MaxReplans)
	case c.Cache.Enabled && c.Cache.Path == "":
		return fmt.Errorf("%w: cache.path is empty", ErrInvalid)
	case c.Metrics.Namespace == "":
		return fmt.Errorf("%w: metrics.namespace is empty", ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalid, err)
	}

	return nil
}

// NewLogger builds a zap logger from the logging section. verbose forces
// debug level.
func (c *Config) NewLogger(verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %w", ErrInvalid, err)
	}

	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if verbose {
		level = zap.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// MapOptions returns the navmap options for these settings.
func (c *Config) MapOptions(log *zap.Logger) []navmap.Option {
	return []navmap.Option{
		navmap.WithLogger(log),
		navmap.WithMaxGroupSize(c.Portals.MaxGroupSize),
	}
}

// PathfinderOptions returns the pathfinder options for these settings.
func (c *Config) PathfinderOptions(log *zap.Logger) []pathfinder.Option {
	return []pathfinder.Option{
		pathfinder.WithWindows(c.Belief.MaxWindow, c.Belief.MinWindow, c.Belief.WindowStep),
		pathfinder.WithMaxExpansions(c.Pathfinder.MaxExpansions),
		pathfinder.WithMaxReplans(c.Pathfinder.MaxReplans),
		pathfinder.WithLogger(log),
	}
}
