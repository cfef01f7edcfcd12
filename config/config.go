// Package config loads the YAML run configuration of the sirg command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid run configuration")

// RunConfig is the top-level YAML structure.
type RunConfig struct {
	Seed      SeedConf     `yaml:"seed"`
	Growth    GrowthConf   `yaml:"growth"`
	Snapshots SnapshotConf `yaml:"snapshots"`
	Output    OutputConf   `yaml:"output"`
	Log       LogConf      `yaml:"log"`
	Metrics   MetricsConf  `yaml:"metrics"`
}

// SeedConf describes the starting graph.
type SeedConf struct {
	Kind   string `yaml:"kind" validate:"oneof=barabasi-albert path cycle complete star petersen file"`
	Nodes  int    `yaml:"nodes" validate:"gte=0"`
	M      int    `yaml:"m"`      // barabasi-albert attachment count
	File   string `yaml:"file"`   // kind=file: .net or .edges
	Delete int    `yaml:"delete" validate:"gte=-1"` // vertices removed before growth, -1 draws the count
}

// GrowthConf holds the engine parameters.
type GrowthConf struct {
	NodeCeiling       int     `yaml:"node_ceiling" validate:"gte=1"`
	Tau               int     `yaml:"tau"`
	CatalogMode       string  `yaml:"catalog_mode" validate:"oneof=exhaustive chain"`
	Dedup             bool    `yaml:"dedup"`
	Induced           bool    `yaml:"induced"`
	Beta              int     `yaml:"beta" validate:"gte=1"`
	Mu                float64 `yaml:"mu" validate:"gte=0,lte=1"`
	Workers           int     `yaml:"workers" validate:"gte=1"`
	MaxAttachAttempts int     `yaml:"max_attach_attempts" validate:"gte=1"`
	SelectionRule     string  `yaml:"selection_rule" validate:"oneof=independent no-shared-neighbor"`
	ExactCeiling      bool    `yaml:"exact_ceiling"`
	MaxIterations     int     `yaml:"max_iterations" validate:"gte=0"`
	Statistic         string  `yaml:"statistic" validate:"statistic"`
	RandomSeed        int64   `yaml:"random_seed"`
}

// SnapshotConf controls intermediate graph persistence.
type SnapshotConf struct {
	Every  int    `yaml:"every" validate:"gte=0"`
	Dir    string `yaml:"dir"`    // progress files, empty disables
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format" validate:"oneof=pajek net edgelist edges dot gv"`
	Store  string `yaml:"store"` // badger directory, empty disables
}

// OutputConf names the final graph file; the extension picks the format.
type OutputConf struct {
	Path string `yaml:"path"`
}

// LogConf configures slog.
type LogConf struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=auto text json"` // auto picks text on a terminal
}

// MetricsConf optionally dumps the Prometheus registry after a run.
type MetricsConf struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration of the reference run: a 100-node
// Barabási-Albert seed grown to 200 nodes, scored by transitivity.
func Default() RunConfig {
	return RunConfig{
		Seed: SeedConf{Kind: "barabasi-albert", Nodes: 100, M: 2},
		Growth: GrowthConf{
			NodeCeiling:       200,
			Tau:               4,
			CatalogMode:       "exhaustive",
			Dedup:             true,
			Induced:           true,
			Beta:              100,
			Mu:                0.15,
			Workers:           1,
			MaxAttachAttempts: 1000,
			SelectionRule:     "independent",
			ExactCeiling:      true,
			Statistic:         "transitivity",
			RandomSeed:        1,
		},
		Snapshots: SnapshotConf{Every: 10, Prefix: "progress_estimate", Format: "pajek"},
		Output:    OutputConf{Path: "sirg.net"},
		Log:       LogConf{Level: "info", Format: "auto"},
	}
}

// Load reads path over Default; keys absent from the file keep their default.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*RunConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *RunConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
