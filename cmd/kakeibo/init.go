package main

import (
	"flag"

	"github.com/odvcencio/kakeibo/pkg/config"
	"github.com/odvcencio/kakeibo/pkg/paths"
	"github.com/odvcencio/kakeibo/pkg/terminal"
)

// runInitCommand writes the starter config. It deliberately skips the
// usual app bootstrap so it works before any config exists.
func runInitCommand(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := paths.ConfigFile()
	if err := config.WriteStarter(path); err != nil {
		return err
	}

	out := terminal.New()
	out.Success("Wrote starter config to %s.", path)
	out.Info("Edit it to set your name, currency, and decimal separator.")
	return nil
}
