package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/odvcencio/kakeibo/pkg/config"
	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
	"github.com/odvcencio/kakeibo/pkg/paths"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		paths.EnvConfigFile, paths.EnvDataDir, paths.EnvLogDir,
		"KAKEIBO_USER_NAME", "KAKEIBO_CURRENCY", "KAKEIBO_DECIMAL_SEP",
		"KAKEIBO_LEDGER_FILE", "KAKEIBO_LOG_LEVEL",
		"XDG_CONFIG_HOME", "XDG_DATA_HOME", "XDG_STATE_HOME",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.Currency != "$" || cfg.DecimalSep != "." || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.UserName != "" {
		t.Fatalf("user name should default empty, got %q", cfg.UserName)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load with missing file: %v", err)
	}
	if cfg.Currency != config.DefaultCurrency || cfg.DecimalSep != config.DefaultDecimalSep {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
user_name: Jana
decimal_sep: ","
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("config.LoadFromPath returned error: %v", err)
	}
	if cfg.UserName != "Jana" {
		t.Fatalf("expected user name from file, got %q", cfg.UserName)
	}
	if cfg.DecimalSep != "," {
		t.Fatalf("expected separator from file, got %q", cfg.DecimalSep)
	}
	if cfg.Currency != config.DefaultCurrency {
		t.Fatalf("expected default currency to survive merge, got %q", cfg.Currency)
	}
}

func TestLoadReportsParseError(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("currency: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := config.LoadFromPath(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !apperrors.IsCode(err, apperrors.ErrCodeConfigParse) {
		t.Fatalf("expected CONFIG_PARSE, got %v", err)
	}
}

func TestLoadEnvOverridesWinOverFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("user_name: FromFile\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("KAKEIBO_USER_NAME", "FromEnv")
	t.Setenv("KAKEIBO_LOG_LEVEL", "debug")

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("config.LoadFromPath returned error: %v", err)
	}
	if cfg.UserName != "FromEnv" {
		t.Fatalf("expected env user name override, got %q", cfg.UserName)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected env log level override, got %q", cfg.LogLevel)
	}
}

func TestLoadHonorsConfigPathEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "elsewhere.yaml")
	if err := os.WriteFile(path, []byte("currency: \"¥\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(paths.EnvConfigFile, path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load returned error: %v", err)
	}
	if cfg.Currency != "¥" {
		t.Fatalf("expected currency from %s, got %q", paths.EnvConfigFile, cfg.Currency)
	}
}

func TestValidateRejectsBadSeparator(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DecimalSep = ";"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation to fail for bad separator")
	}
	if !apperrors.IsCode(err, apperrors.ErrCodeConfigInvalid) {
		t.Fatalf("expected CONFIG_INVALID, got %v", err)
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation to fail for bad log level")
	}
}

func TestValidateRejectsEmptyCurrency(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Currency = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation to fail for empty currency")
	}
}

func TestSeparatorRune(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg.SeparatorRune() != '.' {
		t.Fatalf("expected '.', got %q", cfg.SeparatorRune())
	}
	cfg.DecimalSep = ","
	if cfg.SeparatorRune() != ',' {
		t.Fatalf("expected ',', got %q", cfg.SeparatorRune())
	}
}

func TestLedgerPath(t *testing.T) {
	clearEnv(t)
	dataDir := t.TempDir()
	t.Setenv(paths.EnvDataDir, dataDir)

	cfg := config.DefaultConfig()
	if got, want := cfg.LedgerPath(), filepath.Join(dataDir, "ledger.kakebo"); got != want {
		t.Fatalf("expected default ledger path %q, got %q", want, got)
	}

	cfg.LedgerFile = "/tmp/elsewhere/my.kakebo"
	if got := cfg.LedgerPath(); got != "/tmp/elsewhere/my.kakebo" {
		t.Fatalf("expected override path, got %q", got)
	}
}

func TestLedgerPathExpandsHome(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := config.DefaultConfig()
	cfg.LedgerFile = "~/books/ledger.kakebo"
	if got, want := cfg.LedgerPath(), filepath.Join(home, "books", "ledger.kakebo"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWriteStarter(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := config.WriteStarter(path); err != nil {
		t.Fatalf("config.WriteStarter returned error: %v", err)
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("starter config should load: %v", err)
	}
	if cfg.UserName != "Your name" {
		t.Fatalf("unexpected starter user name: %q", cfg.UserName)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("starter config should validate: %v", err)
	}

	err = config.WriteStarter(path)
	if err == nil {
		t.Fatal("expected second write to refuse overwriting")
	}
	if !apperrors.IsCode(err, apperrors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
}
