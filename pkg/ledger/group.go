package ledger

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
	"github.com/odvcencio/kakeibo/pkg/money"
)

// Group is a shared expense that distributes extra costs such as tips
// or delivery fees proportionally. Everyone states the raw amount of
// their own items; the recorded total is what was actually paid, and
// each true share scales the raw share by total/rawTotal.
type Group struct {
	ID        string        `msgpack:"id"`
	Info      Info          `msgpack:"info"`
	UserRaw   money.Cents   `msgpack:"user_raw"`
	People    []string      `msgpack:"people"`
	RawShares []money.Cents `msgpack:"raw_shares"`
	Total     money.Cents   `msgpack:"total"`
	// Paid records how much each person has already handed over,
	// aligned with People. Zero means nothing yet.
	Paid []money.Cents `msgpack:"paid"`
}

// Validate checks that the share lists line up and the amounts admit
// a proportional split.
func (g *Group) Validate() error {
	if len(g.People) != len(g.RawShares) || len(g.People) != len(g.Paid) {
		return apperrors.New(apperrors.ErrCodeSplitInvalid, "people, raw shares, and paid amounts must align").
			WithContext("people", len(g.People)).
			WithContext("raw_shares", len(g.RawShares)).
			WithContext("paid", len(g.Paid))
	}
	if g.UserRaw < 0 || g.Total < 0 {
		return apperrors.New(apperrors.ErrCodeSplitInvalid, "amounts must not be negative")
	}
	for i, raw := range g.RawShares {
		if raw < 0 {
			return apperrors.New(apperrors.ErrCodeSplitInvalid, "raw share must not be negative").
				WithContext("person", g.People[i])
		}
	}
	if g.RawTotal() == 0 {
		return apperrors.New(apperrors.ErrCodeSplitInvalid, "raw shares must not sum to zero")
	}
	return nil
}

// RawTotal is the sum of every raw share including the user's.
func (g *Group) RawTotal() money.Cents {
	total := g.UserRaw
	for _, raw := range g.RawShares {
		total += raw
	}
	return total
}

// TrueShares returns everyone's exact proportional share of the
// total, user first. Values are unrounded.
func (g *Group) TrueShares() []decimal.Decimal {
	rawTotal := g.RawTotal().Decimal()
	total := g.Total.Decimal()
	shares := make([]decimal.Decimal, 0, len(g.RawShares)+1)
	shares = append(shares, g.UserRaw.Decimal().Mul(total).Div(rawTotal))
	for _, raw := range g.RawShares {
		shares = append(shares, raw.Decimal().Mul(total).Div(rawTotal))
	}
	return shares
}

// ShareCents allocates the total in whole cents, user first. The
// shares always sum exactly to the total; leftover cents go to the
// earliest shares.
func (g *Group) ShareCents() ([]money.Cents, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	ratios := make([]int, 0, len(g.RawShares)+1)
	ratios = append(ratios, int(g.UserRaw))
	for _, raw := range g.RawShares {
		ratios = append(ratios, int(raw))
	}
	// The currency code never surfaces; allocation is integer math.
	parts, err := gomoney.New(int64(g.Total), gomoney.EUR).Allocate(ratios...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeSplitInvalid, "allocate group shares")
	}
	shares := make([]money.Cents, len(parts))
	for i, p := range parts {
		shares[i] = money.Cents(p.Amount())
	}
	return shares, nil
}

// Owed returns what each participant still owes, aligned with People.
func (g *Group) Owed() ([]money.Cents, error) {
	shares, err := g.ShareCents()
	if err != nil {
		return nil, err
	}
	owed := make([]money.Cents, len(g.People))
	for i := range g.People {
		owed[i] = shares[i+1] - g.Paid[i]
	}
	return owed, nil
}
