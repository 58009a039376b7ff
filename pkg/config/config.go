// Package config loads the kakeibo settings file.
//
// Settings live in a single YAML file, by default
// ~/.config/kakeibo/config.yaml (override with KAKEIBO_CONFIG). A
// missing file is not an error: the defaults apply, and `kakeibo init`
// writes a starter file to edit.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
	"github.com/odvcencio/kakeibo/pkg/paths"
)

// Default values for fields the config file leaves unset.
const (
	DefaultCurrency   = "$"
	DefaultDecimalSep = "."
	DefaultLogLevel   = "info"
)

// Config holds the user-facing kakeibo settings.
type Config struct {
	// UserName identifies the ledger owner in group expenses.
	UserName string `yaml:"user_name"`
	// Currency is the symbol printed after amounts.
	Currency string `yaml:"currency"`
	// DecimalSep separates units from cents in rendered amounts,
	// either "." or ",". Input parsing accepts both regardless.
	DecimalSep string `yaml:"decimal_sep"`
	// LedgerFile overrides the default ledger location.
	LedgerFile string `yaml:"ledger_file"`
	// LogLevel sets the file-log verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Currency:   DefaultCurrency,
		DecimalSep: DefaultDecimalSep,
		LogLevel:   DefaultLogLevel,
	}
}

// Load loads the configuration from its default location.
func Load() (*Config, error) {
	return LoadFromPath(paths.ConfigFile())
}

// LoadFromPath loads the configuration from a specific file path.
// A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigLoad, "read config").
			WithContext("path", path)
	}
	if err == nil {
		var override Config
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigParse, "parse config").
				WithContext("path", path)
		}
		mergeConfig(cfg, &override)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeConfig merges explicitly-set override fields into base.
func mergeConfig(base, override *Config) {
	if override.UserName != "" {
		base.UserName = override.UserName
	}
	if override.Currency != "" {
		base.Currency = override.Currency
	}
	if override.DecimalSep != "" {
		base.DecimalSep = override.DecimalSep
	}
	if override.LedgerFile != "" {
		base.LedgerFile = override.LedgerFile
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KAKEIBO_USER_NAME"); v != "" {
		cfg.UserName = v
	}
	if v := os.Getenv("KAKEIBO_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("KAKEIBO_DECIMAL_SEP"); v != "" {
		cfg.DecimalSep = v
	}
	if v := os.Getenv("KAKEIBO_LEDGER_FILE"); v != "" {
		cfg.LedgerFile = v
	}
	if v := os.Getenv("KAKEIBO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Currency) == "" {
		return apperrors.New(apperrors.ErrCodeConfigInvalid, "currency must not be empty")
	}
	if c.DecimalSep != "." && c.DecimalSep != "," {
		return apperrors.New(apperrors.ErrCodeConfigInvalid, `decimal_sep must be "." or ","`).
			WithContext("decimal_sep", c.DecimalSep)
	}
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "warning": true, "error": true,
	}
	if !validLevels[strings.ToLower(strings.TrimSpace(c.LogLevel))] {
		return apperrors.New(apperrors.ErrCodeConfigInvalid, "log_level must be debug, info, warn, or error").
			WithContext("log_level", c.LogLevel)
	}
	return nil
}

// SeparatorRune returns the decimal separator for amount rendering.
func (c *Config) SeparatorRune() rune {
	if c.DecimalSep == "," {
		return ','
	}
	return '.'
}

// LedgerPath resolves the ledger file location, honoring the
// ledger_file override.
func (c *Config) LedgerPath() string {
	if c.LedgerFile != "" {
		return filepath.Clean(paths.ExpandHome(c.LedgerFile))
	}
	return paths.LedgerFile()
}

// starterConfig is the file `kakeibo init` writes.
const starterConfig = `# kakeibo configuration
user_name: "Your name"
currency: "$"
decimal_sep: "."

# Uncomment to move the ledger or change log verbosity.
# ledger_file: ~/.local/share/kakeibo/ledger.kakebo
# log_level: info
`

// WriteStarter writes a starter config file to path. It refuses to
// overwrite an existing file.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "config file already exists").
			WithContext("path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeConfigLoad, "create config directory").
			WithContext("path", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeConfigLoad, "write starter config").
			WithContext("path", path)
	}
	return nil
}
