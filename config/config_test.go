package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/layout"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, layout.DefaultConfig(), cfg.Layout)
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
layout:
  spring:
    stiffness: 2
  hierarchical:
    cluster_size: 4
solver:
  cross_check: dinic
log:
  level: debug
`))
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Version)
	require.Equal(t, 2.0, cfg.Layout.Spring.Stiffness)
	require.Equal(t, layout.DefaultSpringParams().Damping, cfg.Layout.Spring.Damping)
	require.Equal(t, cfg.Layout.Spring, cfg.Layout.Hierarchical.Spring)
	require.Equal(t, 4, cfg.Layout.Hierarchical.ClusterSize)
	require.Equal(t, "edmonds-karp", cfg.Solver.FlowAlgorithm)
	require.Equal(t, "dinic", cfg.Solver.CrossCheck)
	require.Equal(t, "text", cfg.Log.Format)
}

func TestParseKeepsExplicitZeros(t *testing.T) {
	cfg, err := Parse([]byte(`
layout:
  spring:
    stiffness: 0
    coulomb_factor: 0
  hierarchical:
    inner_iterations: 0
`))
	require.NoError(t, err)
	require.Zero(t, cfg.Layout.Spring.Stiffness)
	require.Zero(t, cfg.Layout.Spring.CoulombFactor)
	require.Zero(t, cfg.Layout.Hierarchical.InnerIterations)
	require.Equal(t, cfg.Layout.Spring, cfg.Layout.Hierarchical.Spring)

	// omitted keys keep their defaults, booleans included
	def := DefaultConfig()
	require.True(t, def.Layout.Hierarchical.ConnectClusters)
	require.Equal(t, def.Layout.Hierarchical.ConnectClusters, cfg.Layout.Hierarchical.ConnectClusters)
	require.Equal(t, def.Layout.Hierarchical.ClusterSize, cfg.Layout.Hierarchical.ClusterSize)
	require.Equal(t, def.Layout.FR, cfg.Layout.FR)

	cfg, err = Parse([]byte(`layout:
  hierarchical:
    connect_clusters: false
    spring:
      stiffness: 3
`))
	require.NoError(t, err)
	require.False(t, cfg.Layout.Hierarchical.ConnectClusters)
	require.Equal(t, 3.0, cfg.Layout.Hierarchical.Spring.Stiffness)
	require.Equal(t, def.Layout.Spring.Damping, cfg.Layout.Hierarchical.Spring.Damping)
	require.Equal(t, def.Layout.Spring, cfg.Layout.Spring)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"algorithm":   "solver:\n  flow_algorithm: push-relabel\n",
		"cross check": "solver:\n  cross_check: simplex\n",
		"log level":   "log:\n  level: chatty\n",
		"damping":     "layout:\n  spring:\n    damping: 3\n",
		"bounds":      "layout:\n  fr:\n    bounds: {min_x: 5, max_x: 1, max_y: 1}\n",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		require.ErrorIs(t, err, ErrInvalid, name)
	}

	_, err := Parse([]byte("layout: [1, 2"))
	require.Error(t, err)
}

func TestSaveAndLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "netgraph.yaml")
	cfg := DefaultConfig()
	cfg.Solver.FlowAlgorithm = "dinic"
	cfg.Layout.FR.Bounds = &layout.Rect{MaxX: 800, MaxY: 600}
	require.NoError(t, cfg.Save(path))

	got, used, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, cfg, got)

	_, _, err = LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\n"), 0o644))
	t.Setenv(EnvConfigPath, path)

	cfg, used, err := Load()
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, used, err := Load()
	require.NoError(t, err)
	require.Empty(t, used)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)
	require.Contains(t, buf.String(), `"k":1`)
}
