package ledger

import (
	"github.com/oklog/ulid/v2"

	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
	"github.com/odvcencio/kakeibo/pkg/money"
)

// Ledger is the complete book of records. Records are append-only;
// edits replace a record in place under its id.
type Ledger struct {
	Singles      []Single      `msgpack:"singles"`
	Groups       []Group       `msgpack:"groups"`
	Recurring    []Recurring   `msgpack:"recurring"`
	Debts        []Debt        `msgpack:"debts"`
	Advancements []Advancement `msgpack:"advancements"`
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Records returns the total number of records.
func (l *Ledger) Records() int {
	return len(l.Singles) + len(l.Groups) + len(l.Recurring) + len(l.Debts) + len(l.Advancements)
}

// AddSingle appends a one-off expense and returns its id.
func (l *Ledger) AddSingle(s Single) string {
	if s.ID == "" {
		s.ID = ulid.Make().String()
	}
	l.Singles = append(l.Singles, s)
	return s.ID
}

// AddGroup validates and appends a group expense, returning its id.
func (l *Ledger) AddGroup(g Group) (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}
	if g.ID == "" {
		g.ID = ulid.Make().String()
	}
	l.Groups = append(l.Groups, g)
	return g.ID, nil
}

// AddRecurring validates and appends a recurring expense, returning
// its id.
func (l *Ledger) AddRecurring(r Recurring) (string, error) {
	if err := r.Every.Validate(); err != nil {
		return "", err
	}
	if r.ID == "" {
		r.ID = ulid.Make().String()
	}
	l.Recurring = append(l.Recurring, r)
	return r.ID, nil
}

// AddDebt appends a debt and returns its id.
func (l *Ledger) AddDebt(d Debt) string {
	if d.ID == "" {
		d.ID = ulid.Make().String()
	}
	l.Debts = append(l.Debts, d)
	return d.ID
}

// AddAdvancement appends received money and returns its id.
func (l *Ledger) AddAdvancement(a Advancement) string {
	if a.ID == "" {
		a.ID = ulid.Make().String()
	}
	l.Advancements = append(l.Advancements, a)
	return a.ID
}

// GroupByID returns the group expense with the given id.
func (l *Ledger) GroupByID(id string) (*Group, error) {
	for i := range l.Groups {
		if l.Groups[i].ID == id {
			return &l.Groups[i], nil
		}
	}
	return nil, apperrors.New(apperrors.ErrCodeRecordNotFound, "no such group expense").
		WithContext("id", id)
}

// RecurringByID returns the recurring expense with the given id.
func (l *Ledger) RecurringByID(id string) (*Recurring, error) {
	for i := range l.Recurring {
		if l.Recurring[i].ID == id {
			return &l.Recurring[i], nil
		}
	}
	return nil, apperrors.New(apperrors.ErrCodeRecordNotFound, "no such recurring expense").
		WithContext("id", id)
}

// SingleByID returns the one-off expense with the given id.
func (l *Ledger) SingleByID(id string) (*Single, error) {
	for i := range l.Singles {
		if l.Singles[i].ID == id {
			return &l.Singles[i], nil
		}
	}
	return nil, apperrors.New(apperrors.ErrCodeRecordNotFound, "no such expense").
		WithContext("id", id)
}

// Balances returns each person's outstanding balance: positive means
// they owe the user. Group shares count against participants until
// marked paid; debts add, advancements subtract.
func (l *Ledger) Balances() map[string]money.Cents {
	balances := make(map[string]money.Cents)
	for i := range l.Groups {
		owed, err := l.Groups[i].Owed()
		if err != nil {
			continue
		}
		for j, person := range l.Groups[i].People {
			balances[person] += owed[j]
		}
	}
	for _, d := range l.Debts {
		balances[d.Person] += d.Amount
	}
	for _, a := range l.Advancements {
		balances[a.Person] -= a.Amount
	}
	for person, amount := range balances {
		if amount == 0 {
			delete(balances, person)
		}
	}
	return balances
}
