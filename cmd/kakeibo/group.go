package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
	"github.com/odvcencio/kakeibo/pkg/ledger"
	"github.com/odvcencio/kakeibo/pkg/money"
	"github.com/odvcencio/kakeibo/pkg/ui/grid"
	"github.com/odvcencio/kakeibo/pkg/ui/gridview"
)

// runGroupCommand records a shared expense. Raw shares and the
// receipt total are entered in the grid editor, then each
// participant's true share is allocated from the total.
func runGroupCommand(args []string) error {
	a, err := newApp("group")
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
	people := promptPeople(a.out)

	a.out.Newline()
	a.out.Info("Enter what each item cost, then overwrite the total with the receipt amount if tax or tip was added.")
	g, ok, err := editGroupShares(a, info, people)
	if err != nil {
		return err
	}
	if !ok {
		a.out.Warn("Nothing recorded.")
		return nil
	}

	shares, err := g.ShareCents()
	if err != nil {
		return err
	}
	sep := a.cfg.SeparatorRune()
	for i, person := range g.People {
		prompt := fmt.Sprintf("Has %s already paid their %s %s?", person, money.Format(shares[i+1], sep), a.cfg.Currency)
		if a.out.Confirm(prompt, false) {
			g.Paid[i] = shares[i+1]
		}
	}

	id, err := l.AddGroup(*g)
	if err != nil {
		return err
	}
	if err := a.store.Save(l, pass); err != nil {
		return err
	}
	a.log.RecordAdded("group", id, g.Total)

	a.out.Success("Recorded %s %s for %s.", money.Format(g.Total, sep), a.cfg.Currency, g.Info.Label())
	lines := make([]string, 0, len(g.People)+1)
	lines = append(lines, fmt.Sprintf("%s: %s %s", a.userLabel(), money.Format(shares[0], sep), a.cfg.Currency))
	for i, person := range g.People {
		line := fmt.Sprintf("%s: %s %s", person, money.Format(shares[i+1], sep), a.cfg.Currency)
		if g.Paid[i] >= shares[i+1] {
			line += " (paid)"
		}
		lines = append(lines, line)
	}
	a.out.List(lines)
	return nil
}

// groupEntryGrid builds the share-entry grid: one amount column, a
// row per person with the payer first, and an editable receipt total.
// Cell commits keep the total tracking the sum; a commit on the total
// itself is the receipt amount and must stick.
func groupEntryGrid(name, userLabel string, people []string, sep rune) (*grid.Model, *grid.Policy, grid.Position, error) {
	rows := append([]string{userLabel}, people...)
	model, err := grid.NewModel(name, []string{"Raw share"}, rows, make([]money.Cents, len(rows)))
	if err != nil {
		return nil, nil, grid.Position{}, err
	}
	hook := grid.CommitHookFunc(func(m *grid.Model, pos grid.Position) {
		if pos.Kind() == grid.KindCell {
			m.RecomputeTotals()
		}
	})
	policy, start := grid.NewPolicy().
		FixedRows(1).
		EditableColumn(0).
		EditableTotal(0).
		DecimalSep(sep).
		OnCommit(hook).
		StartAt(grid.CellPos(0, 0)).
		Build()
	return model, policy, start, nil
}

// editGroupShares drives the grid editor until the entered shares
// form a valid group or the user backs out.
func editGroupShares(a *app, info ledger.Info, people []string) (*ledger.Group, bool, error) {
	model, policy, start, err := groupEntryGrid(info.Label(), a.userLabel(), people, a.cfg.SeparatorRune())
	if err != nil {
		return nil, false, err
	}

	for {
		g := grid.New(model, policy, start)
		accepted, err := gridview.Run(context.Background(), g)
		a.log.EditorClosed(accepted)
		if err != nil {
			return nil, false, err
		}
		if !accepted {
			return nil, false, nil
		}
		group, err := groupFromModel(model, info)
		if err != nil {
			a.out.Error("%v", err)
			continue
		}
		return group, true, nil
	}
}

// groupFromModel reads the edited grid back into a Group. Row 0 is
// the payer; blank added rows are dropped, but a row with an amount
// needs a name.
func groupFromModel(m *grid.Model, info ledger.Info) (*ledger.Group, error) {
	g := &ledger.Group{Info: info}
	g.UserRaw, _ = m.Cell(0, 0)
	for r := 1; r < m.Rows(); r++ {
		label, _ := m.RowLabel(r)
		label = strings.TrimSpace(label)
		raw, _ := m.Cell(0, r)
		if label == "" {
			if raw == 0 {
				continue
			}
			return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "every share needs a participant name").
				WithContext("row", r)
		}
		g.People = append(g.People, label)
		g.RawShares = append(g.RawShares, raw)
	}
	g.Total, _ = m.Total(0)
	g.Paid = make([]money.Cents, len(g.People))
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
