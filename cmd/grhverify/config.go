package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config locates the precomputed data files. Every field is optional; zero
// values fall back to the defaults below.
type Config struct {
	// DataDir is the directory holding the three data files. Default "data".
	DataDir string `yaml:"data_dir"`

	// File name overrides, resolved relative to DataDir.
	IntervalsFile   string `yaml:"intervals_file"`
	KroneckerFile   string `yaml:"kronecker_file"`
	VonMangoldtFile string `yaml:"von_mangoldt_file"`
}

const (
	defaultDataDir         = "data"
	defaultIntervalsFile   = "intervals.txt"
	defaultKroneckerFile   = "kronecker.txt"
	defaultVonMangoldtFile = "von_mangoldt.txt"
)

// loadConfig parses a YAML config file. An empty path returns the zero
// Config (all defaults).
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// dataDir resolves the data directory, preferring the --data-dir flag when
// set, then the config file, then the default.
func (c Config) dataDir(flagValue string) string {
	switch {
	case flagValue != "":
		return flagValue
	case c.DataDir != "":
		return c.DataDir
	default:
		return defaultDataDir
	}
}

func (c Config) intervalsPath(dir string) string {
	return filepath.Join(dir, orDefault(c.IntervalsFile, defaultIntervalsFile))
}

func (c Config) kroneckerPath(dir string) string {
	return filepath.Join(dir, orDefault(c.KroneckerFile, defaultKroneckerFile))
}

func (c Config) vonMangoldtPath(dir string) string {
	return filepath.Join(dir, orDefault(c.VonMangoldtFile, defaultVonMangoldtFile))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
