package main

import (
	"time"

	"github.com/odvcencio/kakeibo/pkg/ledger"
	"github.com/odvcencio/kakeibo/pkg/money"
)

// runAddCommand records a single expense. "add group" hands off to
// the grid editor flow.
func runAddCommand(args []string) error {
	if len(args) > 0 && args[0] == "group" {
		return runGroupCommand(args[1:])
	}

	a, err := newApp("add")
	if err != nil {
		return err
	}
	defer a.Close()

	l, pass, err := a.loadLedger()
	if err != nil {
		return err
	}

	info, err := promptInfo(a.out, time.Now())
	if err != nil {
		return err
	}
	amount, err := promptAmount(a.out, "Amount", a.cfg.Currency)
	if err != nil {
		return err
	}

	a.out.Newline()
	a.out.Dim("%s, %s %s on %s", info.Label(), money.Format(amount, a.cfg.SeparatorRune()), a.cfg.Currency, info.Date.Format(dayFormat))
	if !a.out.Confirm("Record this expense?", true) {
		a.out.Warn("Nothing recorded.")
		return nil
	}

	id := l.AddSingle(ledger.Single{Info: info, Amount: amount})
	if err := a.store.Save(l, pass); err != nil {
		return err
	}
	a.log.RecordAdded("single", id, amount)
	a.out.Success("Recorded %s %s for %s.", money.Format(amount, a.cfg.SeparatorRune()), a.cfg.Currency, info.Label())
	return nil
}
