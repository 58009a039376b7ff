package main

import (
	"flag"

	"github.com/odvcencio/kakeibo/pkg/export"
)

func runExportCommand(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	formatFlag := fs.String("format", "xlsx", "Output format: xlsx or csv")
	outFlag := fs.String("out", "", "Output path (default: kakeibo.<format>)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := export.ParseFormat(*formatFlag)
	if err != nil {
		return err
	}
	path := *outFlag
	if path == "" {
		path = "kakeibo." + string(format)
	}

	a, err := newApp("export")
	if err != nil {
		return err
	}
	defer a.Close()

	l, _, err := a.loadLedger()
	if err != nil {
		return err
	}

	rows, err := export.Write(l, path, format, export.Options{
		UserName: a.cfg.UserName,
		Sep:      a.cfg.SeparatorRune(),
	})
	if err != nil {
		return err
	}
	a.log.ExportWritten(string(format), path, rows)
	a.out.Success("Wrote %d rows to %s.", rows, path)
	return nil
}
