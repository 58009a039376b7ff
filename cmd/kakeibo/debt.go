package main

import (
	"time"

	"github.com/odvcencio/kakeibo/pkg/ledger"
	"github.com/odvcencio/kakeibo/pkg/money"
)

// runDebtCommand records an expense paid on someone else's behalf,
// so the whole amount lands on their balance.
func runDebtCommand(args []string) error {
	a, err := newApp("debt")
	if err != nil {
		return err
	}
	defer a.Close()

	l, pass, err := a.loadLedger()
	if err != nil {
		return err
	}

	person, err := promptName(a.out, "Who owes you for this?")
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
	a.out.Dim("%s owes %s %s for %s", person, money.Format(amount, a.cfg.SeparatorRune()), a.cfg.Currency, info.Label())
	if !a.out.Confirm("Record this debt?", true) {
		a.out.Warn("Nothing recorded.")
		return nil
	}

	id := l.AddDebt(ledger.Debt{Person: person, Info: info, Amount: amount})
	if err := a.store.Save(l, pass); err != nil {
		return err
	}
	a.log.RecordAdded("debt", id, amount)

	balance := l.Balances()[person]
	a.out.Success("Recorded. %s now owes you %s %s.", person, money.Format(balance, a.cfg.SeparatorRune()), a.cfg.Currency)
	return nil
}
