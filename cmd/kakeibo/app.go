package main

import (
	"os"

	"github.com/odvcencio/kakeibo/pkg/config"
	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
	"github.com/odvcencio/kakeibo/pkg/ledger"
	"github.com/odvcencio/kakeibo/pkg/logging"
	"github.com/odvcencio/kakeibo/pkg/store"
	"github.com/odvcencio/kakeibo/pkg/terminal"
)

// envPassphrase bypasses the interactive passphrase prompt, mainly
// for scripted use.
const envPassphrase = "KAKEIBO_PASSPHRASE"

// app bundles what every subcommand needs: the loaded config, the
// styled writer, the structured logger, and the ledger store.
type app struct {
	cfg   *config.Config
	out   *terminal.Writer
	log   *logging.Logger
	store *store.Store
}

func newApp(command string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logging.New("kakeibo", logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		// A read-only or missing log directory should not block the
		// ledger itself.
		log = logging.Discard()
	}
	log = log.WithCommand(command)
	return &app{
		cfg:   cfg,
		out:   terminal.New(),
		log:   log,
		store: store.New(cfg.LedgerPath(), log),
	}, nil
}

func (a *app) Close() {
	_ = a.log.Close()
}

// userLabel names the payer's own rows and shares.
func (a *app) userLabel() string {
	if a.cfg.UserName != "" {
		return a.cfg.UserName
	}
	return "You"
}

// passphrase resolves the ledger passphrase from the environment or
// an interactive prompt. Creating a fresh ledger file asks twice.
func (a *app) passphrase() (string, error) {
	if v := os.Getenv(envPassphrase); v != "" {
		return v, nil
	}
	pass, err := a.out.PromptSecret("Passphrase")
	if err != nil {
		return "", err
	}
	if pass == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidInput, "passphrase must not be empty")
	}
	if !a.store.Exists() {
		a.out.Info("No ledger at %s yet, creating one.", a.store.Path())
		again, err := a.out.PromptSecret("Repeat passphrase")
		if err != nil {
			return "", err
		}
		if again != pass {
			return "", apperrors.New(apperrors.ErrCodeInvalidInput, "passphrases do not match")
		}
	}
	return pass, nil
}

// loadLedger opens the store and hands back the passphrase so the
// caller can save with it later.
func (a *app) loadLedger() (*ledger.Ledger, string, error) {
	pass, err := a.passphrase()
	if err != nil {
		return nil, "", err
	}
	l, err := a.store.Load(pass)
	if err != nil {
		return nil, "", err
	}
	return l, pass, nil
}
