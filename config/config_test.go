package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sirg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	require.NoError(t, config.Validate(&cfg))
	assert.Equal(t, 200, cfg.Growth.NodeCeiling)
	assert.Equal(t, 0.15, cfg.Growth.Mu)
	assert.True(t, cfg.Growth.ExactCeiling)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed:
  kind: path
  nodes: 2
growth:
  node_ceiling: 10
  beta: 5
  mu: 0
  exact_ceiling: false
  statistic: nodes
snapshots:
  every: 0
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "path", cfg.Seed.Kind)
	assert.Equal(t, 10, cfg.Growth.NodeCeiling)
	assert.Equal(t, 5, cfg.Growth.Beta)
	assert.Zero(t, cfg.Growth.Mu)
	assert.False(t, cfg.Growth.ExactCeiling)
	assert.Equal(t, 4, cfg.Growth.Tau, "absent keys keep defaults")
	assert.True(t, cfg.Growth.Dedup)
	assert.Equal(t, "progress_estimate", cfg.Snapshots.Prefix)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = config.Parse([]byte("growth: [unclosed"))
	assert.Error(t, err)
}

func TestValidate_CollectsEveryError(t *testing.T) {
	t.Parallel()
	_, err := config.Parse([]byte(`
seed:
  kind: lattice
growth:
  node_ceiling: 0
  tau: 9
  beta: 0
  mu: 1.5
  workers: 0
  selection_rule: greedy
  statistic: modularity
snapshots:
  format: graphml
log:
  level: loud
`))
	require.ErrorIs(t, err, config.ErrInvalid)
	for _, want := range []string{
		"seed.kind", "growth.node_ceiling", "growth.tau", "growth.beta", "growth.mu",
		"growth.workers", "growth.selection_rule", "growth.statistic", "snapshots.format", "log.level",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidate_SeedRules(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		seed config.SeedConf
		ok   bool
	}{
		{"ba", config.SeedConf{Kind: "barabasi-albert", Nodes: 10, M: 2}, true},
		{"ba m too large", config.SeedConf{Kind: "barabasi-albert", Nodes: 3, M: 3}, false},
		{"file without path", config.SeedConf{Kind: "file"}, false},
		{"file", config.SeedConf{Kind: "file", File: "seed.net"}, true},
		{"petersen", config.SeedConf{Kind: "petersen"}, true},
		{"tiny cycle", config.SeedConf{Kind: "cycle", Nodes: 1}, false},
		{"bad delete", config.SeedConf{Kind: "path", Nodes: 4, Delete: -2}, false},
	}
	for _, tc := range tests {
		cfg := config.Default()
		cfg.Seed = tc.seed
		err := config.Validate(&cfg)
		if tc.ok {
			assert.NoError(t, err, tc.name)
		} else {
			assert.ErrorIs(t, err, config.ErrInvalid, tc.name)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Growth.Workers = 8
	data, err := config.Marshal(&cfg)
	require.NoError(t, err)
	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, *back)
}
