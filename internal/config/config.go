package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Filename is the default configuration file name.
const Filename = "diario.yaml"

// Ledger storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config represents the top-level diario.yaml configuration.
type Config struct {
	Ledger LedgerConfig `yaml:"ledger"`
	Bank   BankConfig   `yaml:"bank"`
	Audit  AuditConfig  `yaml:"audit"`
}

// LedgerConfig locates the ledger store.
type LedgerConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path"`
}

// BankConfig holds bank statement ingestion defaults.
type BankConfig struct {
	DateColumn string `yaml:"date_column"` // "Fecha" or "Fecha valor"
}

// AuditConfig controls the CSV operation log.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Load reads a diario.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Backend: BackendJSON,
			Path:    "data/libro_diario.json",
		},
		Bank: BankConfig{
			DateColumn: "Fecha",
		},
		Audit: AuditConfig{
			Enabled: true,
			Dir:     "logs",
		},
	}
}
