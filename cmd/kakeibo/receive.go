package main

import (
	"time"

	"github.com/odvcencio/kakeibo/pkg/ledger"
	"github.com/odvcencio/kakeibo/pkg/money"
)

// runReceiveCommand records money received from a person and shows
// where their balance stands afterwards.
func runReceiveCommand(args []string) error {
	a, err := newApp("receive")
	if err != nil {
		return err
	}
	defer a.Close()

	l, pass, err := a.loadLedger()
	if err != nil {
		return err
	}

	person, err := promptName(a.out, "Who paid you?")
	if err != nil {
		return err
	}
	amount, err := promptAmount(a.out, "Amount received", a.cfg.Currency)
	if err != nil {
		return err
	}
	description := a.out.Prompt("What for", "")
	date, err := promptDate(a.out, "Received on", ledger.Day(time.Now()))
	if err != nil {
		return err
	}

	if !a.out.Confirm("Record this payment?", true) {
		a.out.Warn("Nothing recorded.")
		return nil
	}

	id := l.AddAdvancement(ledger.Advancement{
		Person:      person,
		Amount:      amount,
		Description: description,
		Date:        date,
		Created:     time.Now().UTC(),
	})
	if err := a.store.Save(l, pass); err != nil {
		return err
	}
	a.log.RecordAdded("advancement", id, amount)

	sep := a.cfg.SeparatorRune()
	switch balance := l.Balances()[person]; {
	case balance > 0:
		a.out.Success("Recorded. %s still owes you %s %s.", person, money.Format(balance, sep), a.cfg.Currency)
	case balance < 0:
		a.out.Success("Recorded. You now owe %s %s %s.", person, money.Format(-balance, sep), a.cfg.Currency)
	default:
		a.out.Success("Recorded. You and %s are settled.", person)
	}
	return nil
}
