package lstar

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the per-session configuration for a learner run (spec §9,
// "global mutable state ... becomes a per-session configuration value"). It
// carries tuning knobs that have no natural home on the table or oracle
// types themselves.
type Config struct {
	// MaxIterations caps the number of outer driver iterations (spec §4.9);
	// zero means unlimited. Exists so a misbehaving equivalence oracle (one
	// that keeps returning bad counterexamples) cannot loop the driver
	// forever.
	MaxIterations int `toml:"max_iterations"`

	// DumpTables, if non-empty, is a directory Session writes a CSV dump of
	// the observation table to once per outer iteration (spec §6,
	// "Persisted tables"). Empty disables dumping.
	DumpTables string `toml:"dump_tables"`
}

// DefaultConfig returns the Config a Session uses when none is given: no
// iteration cap, no table dumping.
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig reads a Config from a TOML file at path, following the
// teacher's toml.Unmarshal-based loading (internal/tqw.ScanFileInfo). Fields
// absent from the file keep their DefaultConfig zero values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("lstar: read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("lstar: parse config: %w", err)
	}

	return cfg, nil
}
