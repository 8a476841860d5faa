package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/areanav/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"AREANAV_CACHE", "AREANAV_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, int64(50), cfg.Belief.MaxWindow)
	assert.Equal(t, int64(1), cfg.Belief.MinWindow)
	assert.Equal(t, int64(10), cfg.Belief.WindowStep)
	assert.Equal(t, 0, cfg.Portals.MaxGroupSize)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "areanav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
portals:
  max_group_size: 5
belief:
  max_window: 30
pathfinder:
  max_expansions: 1000
logging:
  level: debug
`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Portals.MaxGroupSize)
	assert.Equal(t, int64(30), cfg.Belief.MaxWindow)
	assert.Equal(t, int64(10), cfg.Belief.WindowStep, "unset keys keep defaults")
	assert.Equal(t, 1000, cfg.Pathfinder.MaxExpansions)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "areanav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("belief: [1, 2"), 0644))
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AREANAV_LOG_LEVEL", "warn")
	t.Setenv("AREANAV_CACHE", "")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Cache.Enabled)
	require.NoError(t, cfg.Validate())

	t.Setenv("AREANAV_CACHE", "/tmp/x.db")
	cfg, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "/tmp/x.db", cfg.Cache.Path)
}

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "areanav.yaml")
	want := config.DefaultConfig()
	want.Portals.MaxGroupSize = 3
	want.Metrics.File = "metrics.prom"
	require.NoError(t, want.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"NegativeGroupSize", func(c *config.Config) { c.Portals.MaxGroupSize = -1 }},
		{"NegativeMinWindow", func(c *config.Config) { c.Belief.MinWindow = -1 }},
		{"WindowsInverted", func(c *config.Config) { c.Belief.MaxWindow = 0; c.Belief.MinWindow = 5 }},
		{"ZeroStep", func(c *config.Config) { c.Belief.WindowStep = 0 }},
		{"NegativeExpansions", func(c *config.Config) { c.Pathfinder.MaxExpansions = -3 }},
		{"NegativeReplans", func(c *config.Config) { c.Pathfinder.MaxReplans = -1 }},
		{"CacheWithoutPath", func(c *config.Config) { c.Cache.Path = "" }},
		{"EmptyNamespace", func(c *config.Config) { c.Metrics.Namespace = "" }},
		{"UnknownLevel", func(c *config.Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "warn"

	log, err := cfg.NewLogger(false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log, err = cfg.NewLogger(true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	cfg.Logging.Level = "loud"
	_, err = cfg.NewLogger(false)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Len(t, cfg.MapOptions(nil), 2)
	assert.Len(t, cfg.PathfinderOptions(nil), 4)
}
