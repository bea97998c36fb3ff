// Package config loads the club-level settings: where the books live, the
// monthly fee, and the labels that appear in reports.
//
// Settings come from an optional YAML file, with every field falling back
// to the defaults of the legacy application. Paths in the file are kept as
// written; relative paths resolve against the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up when no explicit path is
// given, relative to the data directory.
const DefaultFileName = "kirabuku.yaml"

// Config holds every tunable of the tool.
type Config struct {
	// ClubName appears in report headers.
	ClubName string `yaml:"clubName"`

	// MonthlyFee is the dues amount per member per month, in ringgit.
	MonthlyFee float64 `yaml:"monthlyFee"`

	// SessionTarget is the cumulative dues expected per member per
	// training session, in ringgit.
	SessionTarget float64 `yaml:"sessionTarget"`

	// FeeCategory is the ledger category of derived dues entries.
	FeeCategory string `yaml:"feeCategory"`

	// DataFile is the path of the JSON blob holding the books.
	DataFile string `yaml:"dataFile"`

	// SessionFile is the path of the login session token.
	SessionFile string `yaml:"sessionFile"`
}

// Default returns the configuration of a fresh install, rooted in 'dir'.
func Default(dir string) Config {
	return Config{
		ClubName:      "Kelab Silat",
		MonthlyFee:    30,
		SessionTarget: 150,
		FeeCategory:   "Yuran Bulanan",
		DataFile:      filepath.Join(dir, "kirabuku.json"),
		SessionFile:   filepath.Join(dir, ".session"),
	}
}

// DataDir returns the directory the tool keeps its files in: $KIRABUKU_DIR
// when set, otherwise the current directory.
func DataDir() string {
	if dir := os.Getenv("KIRABUKU_DIR"); dir != "" {
		return dir
	}
	return "."
}

// Load reads the config file at 'path' over the defaults for 'dir'. A
// missing file is not an error: the defaults come back as is.
func Load(dir, path string) (Config, error) {
	c := Default(dir)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("could not read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return c, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return c, nil
}

func (c Config) validate() error {
	if c.MonthlyFee <= 0 {
		return fmt.Errorf("monthlyFee %v must be positive", c.MonthlyFee)
	}
	if c.SessionTarget <= 0 {
		return fmt.Errorf("sessionTarget %v must be positive", c.SessionTarget)
	}
	if c.FeeCategory == "" {
		return fmt.Errorf("feeCategory must not be empty")
	}
	if c.DataFile == "" {
		return fmt.Errorf("dataFile must not be empty")
	}
	return nil
}
