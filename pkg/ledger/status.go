package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/odvcencio/kakeibo/pkg/money"
)

// StatusReport renders a markdown summary for the month around now:
// spending by category, active recurring expenses, and outstanding
// balances. Amounts use the given currency symbol and separator.
func (l *Ledger) StatusReport(now time.Time, currency string, sep rune) string {
	today := Day(now)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	amount := func(c money.Cents) string {
		return money.Format(c, sep) + " " + currency
	}

	var b strings.Builder
	b.WriteString("# Kakeibo Status\n\n")

	fmt.Fprintf(&b, "## Spending in %s %d\n\n", monthStart.Month(), monthStart.Year())

	byCategory := make(map[Category]money.Cents)
	for _, s := range l.Singles {
		if !s.Info.Date.Before(monthStart) && !s.Info.Date.After(monthEnd) {
			byCategory[s.Info.Category] += s.Amount
		}
	}
	for i := range l.Groups {
		g := &l.Groups[i]
		if g.Info.Date.Before(monthStart) || g.Info.Date.After(monthEnd) {
			continue
		}
		shares, err := g.ShareCents()
		if err != nil {
			continue
		}
		byCategory[g.Info.Category] += shares[0]
	}
	for i := range l.Recurring {
		r := &l.Recurring[i]
		if c := r.AmountInInterval(monthStart, monthEnd); c != 0 {
			byCategory[r.Info.Category] += c
		}
	}

	if len(byCategory) == 0 {
		b.WriteString("No expenses recorded this month.\n")
	} else {
		categories := make([]string, 0, len(byCategory))
		for c := range byCategory {
			categories = append(categories, string(c))
		}
		sort.Strings(categories)

		b.WriteString("| Category | Amount |\n")
		b.WriteString("| --- | ---: |\n")
		var total money.Cents
		for _, c := range categories {
			spent := byCategory[Category(c)]
			total += spent
			fmt.Fprintf(&b, "| %s | %s |\n", c, amount(spent))
		}
		fmt.Fprintf(&b, "\n**Total: %s**\n", amount(total))
	}

	if len(l.Recurring) > 0 {
		b.WriteString("\n## Recurring expenses\n\n")
		for i := range l.Recurring {
			r := &l.Recurring[i]
			next := r.NextOccurrence(today)
			if next.IsZero() {
				fmt.Fprintf(&b, "- %s: %s %s, ended\n", r.Info.Label(), amount(r.Amount), r.Every)
				continue
			}
			fmt.Fprintf(&b, "- %s: %s %s, next due %s\n",
				r.Info.Label(), amount(r.Amount), r.Every, next.Format("2006-01-02"))
		}
	}

	b.WriteString("\n## Outstanding balances\n\n")
	balances := l.Balances()
	if len(balances) == 0 {
		b.WriteString("All settled.\n")
		return b.String()
	}
	people := make([]string, 0, len(balances))
	for person := range balances {
		people = append(people, person)
	}
	sort.Strings(people)
	for _, person := range people {
		owed := balances[person]
		if owed > 0 {
			fmt.Fprintf(&b, "- %s owes you %s\n", person, amount(owed))
		} else {
			fmt.Fprintf(&b, "- You owe %s %s\n", person, amount(-owed))
		}
	}
	return b.String()
}
