package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/odvcencio/kakeibo/pkg/ledger"
	"github.com/odvcencio/kakeibo/pkg/money"
	"github.com/odvcencio/kakeibo/pkg/terminal"
	"github.com/odvcencio/kakeibo/pkg/ui/grid"
	"github.com/odvcencio/kakeibo/pkg/ui/gridview"
)

// runEditCommand settles a group expense: the grid editor shows each
// participant's share next to what they have paid so far, and the
// paid column is the one thing that can change.
func runEditCommand(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	idFlag := fs.String("id", "", "Group expense id (default: pick from a menu)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp("edit")
	if err != nil {
		return err
	}
	defer a.Close()

	l, pass, err := a.loadLedger()
	if err != nil {
		return err
	}

	var g *ledger.Group
	if *idFlag != "" {
		g, err = l.GroupByID(*idFlag)
		if err != nil {
			return err
		}
	} else {
		g, err = chooseGroup(a, l)
		if err != nil {
			return err
		}
		if g == nil {
			a.out.Info("No group expenses to edit.")
			return nil
		}
	}

	changed, err := editPaidShares(a, g)
	if err != nil {
		return err
	}
	if !changed {
		a.out.Warn("No changes saved.")
		return nil
	}

	if err := a.store.Save(l, pass); err != nil {
		return err
	}

	owed, err := g.Owed()
	if err != nil {
		return err
	}
	sep := a.cfg.SeparatorRune()
	a.out.Success("Updated %s.", g.Info.Label())
	lines := make([]string, 0, len(g.People))
	for i, person := range g.People {
		if owed[i] <= 0 {
			lines = append(lines, fmt.Sprintf("%s: settled", person))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s %s outstanding", person, money.Format(owed[i], sep), a.cfg.Currency))
	}
	a.out.List(lines)
	return nil
}

type groupChoice struct {
	key   string
	group *ledger.Group
}

// chooseGroup offers the most recent group expenses, newest first. A
// nil group with nil error means there is nothing to offer.
func chooseGroup(a *app, l *ledger.Ledger) (*ledger.Group, error) {
	if len(l.Groups) == 0 {
		return nil, nil
	}
	const menuSize = 9
	start := len(l.Groups) - menuSize
	if start < 0 {
		start = 0
	}
	recent := l.Groups[start:]

	sep := a.cfg.SeparatorRune()
	choices := make([]groupChoice, 0, len(recent))
	items := make([]terminal.MenuItem, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		g := &recent[i]
		key := strconv.Itoa(len(choices) + 1)
		choices = append(choices, groupChoice{key: key, group: g})
		items = append(items, terminal.MenuItem{
			Key:         key,
			Label:       fmt.Sprintf("%s (%s)", g.Info.Label(), g.Info.Date.Format(dayFormat)),
			Description: fmt.Sprintf("%s %s with %d people", money.Format(g.Total, sep), a.cfg.Currency, len(g.People)),
		})
	}

	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		key := a.out.Menu("Which group expense?", items)
		if key == "" {
			continue
		}
		for _, c := range choices {
			if c.key == key {
				return c.group, nil
			}
		}
	}
	return nil, errTooManyAttempts
}

// settleGrid builds the settle view: a read-only share column next
// to an editable paid column, one row per participant.
func settleGrid(g *ledger.Group, sep rune) (*grid.Model, *grid.Policy, grid.Position, error) {
	shares, err := g.ShareCents()
	if err != nil {
		return nil, nil, grid.Position{}, err
	}
	cells := make([]money.Cents, 0, 2*len(g.People))
	for i := range g.People {
		cells = append(cells, shares[i+1], g.Paid[i])
	}
	model, err := grid.NewModel(g.Info.Label(), []string{"Share", "Paid"}, g.People, cells)
	if err != nil {
		return nil, nil, grid.Position{}, err
	}
	hook := grid.CommitHookFunc(func(m *grid.Model, pos grid.Position) {
		m.RecomputeTotals()
	})
	policy, start := grid.NewPolicy().
		FixedRows(len(g.People)).
		EditableColumn(1).
		DecimalSep(sep).
		OnCommit(hook).
		StartAt(grid.CellPos(1, 0)).
		Build()
	return model, policy, start, nil
}

// editPaidShares runs the settle grid until it is accepted with the
// participant rows intact, and reports whether g changed.
func editPaidShares(a *app, g *ledger.Group) (bool, error) {
	model, policy, start, err := settleGrid(g, a.cfg.SeparatorRune())
	if err != nil {
		return false, err
	}

	for {
		gr := grid.New(model, policy, start)
		accepted, err := gridview.Run(context.Background(), gr)
		a.log.EditorClosed(accepted)
		if err != nil {
			return false, err
		}
		if !accepted {
			return false, nil
		}
		if !rowsMatchPeople(model, g.People) {
			a.out.Error("participants cannot be added or removed while settling")
			continue
		}
		return applyPaidFromModel(g, model), nil
	}
}

// applyPaidFromModel copies the paid column back into g, clamping
// negatives to zero, and reports whether anything changed.
func applyPaidFromModel(g *ledger.Group, m *grid.Model) bool {
	changed := false
	for i := range g.People {
		paid, _ := m.Cell(1, i)
		if paid < 0 {
			paid = 0
		}
		if paid != g.Paid[i] {
			g.Paid[i] = paid
			changed = true
		}
	}
	return changed
}

func rowsMatchPeople(m *grid.Model, people []string) bool {
	if m.Rows() != len(people) {
		return false
	}
	for i, person := range people {
		label, _ := m.RowLabel(i)
		if label != person {
			return false
		}
	}
	return true
}
