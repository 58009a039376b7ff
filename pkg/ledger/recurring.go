package ledger

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
	"github.com/odvcencio/kakeibo/pkg/money"
)

// IntervalUnit is a calendar unit for recurring expenses.
type IntervalUnit string

const (
	UnitDays   IntervalUnit = "days"
	UnitWeeks  IntervalUnit = "weeks"
	UnitMonths IntervalUnit = "months"
	UnitYears  IntervalUnit = "years"
)

// Valid reports whether the unit is one of the four calendar units.
func (u IntervalUnit) Valid() bool {
	switch u {
	case UnitDays, UnitWeeks, UnitMonths, UnitYears:
		return true
	}
	return false
}

// Interval is the spacing between occurrences of a recurring expense.
type Interval struct {
	Count int          `msgpack:"count"`
	Unit  IntervalUnit `msgpack:"unit"`
}

// Validate checks the interval advances time.
func (iv Interval) Validate() error {
	if iv.Count < 1 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "interval count must be positive").
			WithContext("count", iv.Count)
	}
	if !iv.Unit.Valid() {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown interval unit").
			WithContext("unit", string(iv.Unit))
	}
	return nil
}

// Next returns the occurrence after date.
func (iv Interval) Next(date time.Time) time.Time {
	switch iv.Unit {
	case UnitWeeks:
		return date.AddDate(0, 0, 7*iv.Count)
	case UnitMonths:
		return date.AddDate(0, iv.Count, 0)
	case UnitYears:
		return date.AddDate(iv.Count, 0, 0)
	default:
		return date.AddDate(0, 0, iv.Count)
	}
}

func (iv Interval) String() string {
	if iv.Count == 1 {
		return "every " + strings.TrimSuffix(string(iv.Unit), "s")
	}
	return fmt.Sprintf("every %d %s", iv.Count, iv.Unit)
}

// Recurring is an expense that repeats on a fixed interval, starting
// at Info.Date. A zero End means it never stops.
type Recurring struct {
	ID     string      `msgpack:"id"`
	Info   Info        `msgpack:"info"`
	Amount money.Cents `msgpack:"amount"`
	Every  Interval    `msgpack:"every"`
	End    time.Time   `msgpack:"end"`
}

// Active reports whether the schedule still produces occurrences at t.
func (r *Recurring) Active(t time.Time) bool {
	return r.End.IsZero() || !r.End.Before(t)
}

// NextOccurrence returns the first occurrence on or after from, or a
// zero time when the schedule has ended by then.
func (r *Recurring) NextOccurrence(from time.Time) time.Time {
	date := r.Info.Date
	for date.Before(from) {
		next := r.Every.Next(date)
		if !next.After(date) {
			return time.Time{}
		}
		date = next
	}
	if !r.End.IsZero() && r.End.Before(date) {
		return time.Time{}
	}
	return date
}

// AmountInInterval sums the occurrences that fall within [from, to].
func (r *Recurring) AmountInInterval(from, to time.Time) money.Cents {
	if r.Info.Date.After(to) {
		return 0
	}
	if !r.End.IsZero() && r.End.Before(from) {
		return 0
	}

	date := r.Info.Date
	for date.Before(from) {
		next := r.Every.Next(date)
		if !next.After(date) {
			return 0
		}
		date = next
	}

	var total money.Cents
	for !date.After(to) {
		if !r.End.IsZero() && r.End.Before(date) {
			return total
		}
		total += r.Amount
		next := r.Every.Next(date)
		if !next.After(date) {
			break
		}
		date = next
	}
	return total
}
