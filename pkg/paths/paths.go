// Package paths resolves where kakeibo keeps its config, data, and
// logs. Every location can be overridden through the environment;
// defaults follow the XDG base directories under the user's home.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	EnvConfigFile = "KAKEIBO_CONFIG"
	EnvDataDir    = "KAKEIBO_DATA_DIR"
	EnvLogDir     = "KAKEIBO_LOG_DIR"
)

// ConfigFile returns the path of the config file.
func ConfigFile() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigFile)); p != "" {
		return filepath.Clean(ExpandHome(p))
	}
	if dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(ExpandHome(dir), "kakeibo", "config.yaml")
	}
	return filepath.Join(homeOrDot(), ".config", "kakeibo", "config.yaml")
}

// DataDir returns the directory holding the ledger file.
func DataDir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvDataDir)); dir != "" {
		return filepath.Clean(ExpandHome(dir))
	}
	if dir := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); dir != "" {
		return filepath.Join(ExpandHome(dir), "kakeibo")
	}
	return filepath.Join(homeOrDot(), ".local", "share", "kakeibo")
}

// LedgerFile returns the path of the encrypted ledger file.
func LedgerFile() string {
	return filepath.Join(DataDir(), "ledger.kakebo")
}

// LogsDir returns the directory for log files.
func LogsDir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvLogDir)); dir != "" {
		return filepath.Clean(ExpandHome(dir))
	}
	if dir := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); dir != "" {
		return filepath.Join(ExpandHome(dir), "kakeibo", "logs")
	}
	return filepath.Join(homeOrDot(), ".local", "state", "kakeibo", "logs")
}

func homeOrDot() string {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "."
	}
	return home
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory.
func ExpandHome(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil || strings.TrimSpace(home) == "" {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/"))
	}
	return path
}
