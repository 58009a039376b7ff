package main

import (
	"time"

	"github.com/odvcencio/kakeibo/pkg/ledger"
	"github.com/odvcencio/kakeibo/pkg/money"
)

// runRecurringCommand records an expense that repeats on a fixed
// interval, like rent or a subscription.
func runRecurringCommand(args []string) error {
	a, err := newApp("recurring")
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
	amount, err := promptAmount(a.out, "Amount per occurrence", a.cfg.Currency)
	if err != nil {
		return err
	}
	every, err := promptInterval(a.out)
	if err != nil {
		return err
	}
	end, err := promptOptionalDate(a.out, "Last day it applies")
	if err != nil {
		return err
	}

	r := ledger.Recurring{Info: info, Amount: amount, Every: every, End: end}

	a.out.Newline()
	a.out.Dim("%s, %s %s %s starting %s", info.Label(), money.Format(amount, a.cfg.SeparatorRune()), a.cfg.Currency, every, info.Date.Format(dayFormat))
	if !a.out.Confirm("Record this recurring expense?", true) {
		a.out.Warn("Nothing recorded.")
		return nil
	}

	id, err := l.AddRecurring(r)
	if err != nil {
		return err
	}
	if err := a.store.Save(l, pass); err != nil {
		return err
	}
	a.log.RecordAdded("recurring", id, amount)

	if next := r.NextOccurrence(time.Now()); !next.IsZero() {
		a.out.Success("Recorded. Next due %s.", next.Format(dayFormat))
	} else {
		a.out.Success("Recorded.")
	}
	return nil
}
