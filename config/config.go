// Package config loads the routing core's configuration table:
// spectrum-selection policy, an optional Yen-KSP cap, the cross-check
// algorithm set, and the default units-per-edge count.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iszczesniak/gdrsa/search"
)

// ErrUnimplementedPolicy is returned when spectrum.selection names a
// policy other than "first" — rejected here at load time, never
// per-demand.
var ErrUnimplementedPolicy = errors.New("config: spectrum-selection policy not implemented")

// Config mirrors the section-6 configuration table.
type Config struct {
	Spectrum   SpectrumConfig   `koanf:"spectrum"`
	YenKSP     YenKSPConfig     `koanf:"yenksp"`
	CrossCheck CrossCheckConfig `koanf:"crosscheck"`
	Graph      GraphConfig      `koanf:"graph"`
	Log        LogConfig        `koanf:"log"`
}

// SpectrumConfig selects the first-fit slot policy.
type SpectrumConfig struct {
	Selection string `koanf:"selection"`
}

// YenKSPConfig caps the Yen-KSP cross-check variant's enumeration.
type YenKSPConfig struct {
	K int `koanf:"k"`
}

// CrossCheckConfig names the alternate algorithms run alongside the
// generic search.
type CrossCheckConfig struct {
	Algorithms []string `koanf:"algorithms"`
}

// GraphConfig carries the units-per-edge count. It is loaded and
// checked to be non-negative; nothing applies it to a loaded graph, so
// cmd/gdrsa's edges keep the nou and su read from the DOT file.
type GraphConfig struct {
	UnitsPerEdge int `koanf:"units_per_edge"`
}

// LogConfig holds the fields logging.InitWithConfig needs.
type LogConfig struct {
	Level      string `koanf:"level"`
	Output     string `koanf:"output"`
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// RouterConfig converts the loaded configuration into a search.Config,
// resolving algorithm names against search.Algorithm constants.
func (c Config) RouterConfig() (search.Config, error) {
	cfg := search.Config{SpectrumSelection: c.Spectrum.Selection}
	if c.YenKSP.K > 0 {
		k := c.YenKSP.K
		cfg.K = &k
	}

	for _, name := range c.CrossCheck.Algorithms {
		alg, err := parseAlgorithm(name)
		if err != nil {
			return search.Config{}, err
		}
		cfg.CrossCheck = append(cfg.CrossCheck, alg)
	}
	return cfg, nil
}

func parseAlgorithm(name string) (search.Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "parallel":
		return search.Parallel, nil
	case "brute-force", "bruteforce":
		return search.BruteForce, nil
	case "yen-ksp", "yenksp":
		return search.YenKSP, nil
	default:
		return 0, fmt.Errorf("config: unknown cross-check algorithm %q", name)
	}
}

// Validate checks the fields this package itself is responsible for,
// ahead of search.NewRouter re-validating spectrum-selection.
func (c Config) Validate() error {
	switch strings.ToLower(c.Spectrum.Selection) {
	case "", search.SelectionFirst:
	default:
		return fmt.Errorf("%w: %q", ErrUnimplementedPolicy, c.Spectrum.Selection)
	}
	if c.Graph.UnitsPerEdge < 0 {
		return fmt.Errorf("config: graph.units_per_edge must be non-negative, got %d", c.Graph.UnitsPerEdge)
	}
	return nil
}
