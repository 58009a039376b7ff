// Package ledger models the records a kakeibo tracks: one-off and
// recurring expenses, shared group expenses, debts, and money
// received. All amounts are integer cents; group share arithmetic is
// exact and always sums back to the recorded total.
package ledger

import (
	"time"

	"github.com/odvcencio/kakeibo/pkg/money"
)

// Day truncates a timestamp to day granularity. Record dates carry no
// time of day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Info carries the descriptive part every expense shares.
type Info struct {
	Category    Category  `msgpack:"category"`
	Description string    `msgpack:"description"`
	Date        time.Time `msgpack:"date"`
}

// Label returns the description, falling back to the category.
func (i Info) Label() string {
	if i.Description != "" {
		return i.Description
	}
	return string(i.Category)
}

// Single is a one-off expense paid by the user.
type Single struct {
	ID     string      `msgpack:"id"`
	Info   Info        `msgpack:"info"`
	Amount money.Cents `msgpack:"amount"`
}

// Debt is an expense the user paid on someone else's behalf. The
// amount counts toward that person's balance, not the user's spending.
type Debt struct {
	ID     string      `msgpack:"id"`
	Person string      `msgpack:"person"`
	Info   Info        `msgpack:"info"`
	Amount money.Cents `msgpack:"amount"`
}

// Advancement is money received from a person, typically settling
// what they owe.
type Advancement struct {
	ID          string      `msgpack:"id"`
	Person      string      `msgpack:"person"`
	Amount      money.Cents `msgpack:"amount"`
	Description string      `msgpack:"description"`
	Date        time.Time   `msgpack:"date"`
	Created     time.Time   `msgpack:"created"`
}
