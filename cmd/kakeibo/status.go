package main

import (
	"flag"
	"time"

	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
)

func runStatusCommand(args []string) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	monthFlag := fs.String("month", "", "Month to report as YYYY-MM (default: current)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := time.Now()
	if *monthFlag != "" {
		t, err := time.Parse("2006-01", *monthFlag)
		if err != nil {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "month must look like 2026-08").
				WithContext("month", *monthFlag)
		}
		now = t
	}

	a, err := newApp("status")
	if err != nil {
		return err
	}
	defer a.Close()

	l, _, err := a.loadLedger()
	if err != nil {
		return err
	}
	return a.out.Markdown(l.StatusReport(now, a.cfg.Currency, a.cfg.SeparatorRune()))
}
