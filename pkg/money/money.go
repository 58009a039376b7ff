// Package money implements the fixed-point amount representation used
// throughout the ledger: an amount is an integer count of cents, so
// 12.50 in display form is the value 1250.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in hundredths of the base currency unit.
type Cents int64

// maxIntegerPart guards the whole-unit portion of a parsed amount so
// the multiplication by 100 cannot overflow.
const maxIntegerPart = math.MaxInt64 / 100

// ParseError describes why a textual amount was rejected.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse amount %q: %s", e.Input, e.Reason)
}

// Parse converts user-entered text into Cents.
//
// The accepted form is an optional minus sign, optional integer
// digits (an absent integer part counts as zero), optionally followed
// by a decimal separator and at most two fractional digits. Both ','
// and '.' separate decimals regardless of the configured display
// separator. The empty string parses as zero. Anything else,
// including a third fractional digit or trailing characters, is a
// ParseError.
func Parse(s string) (Cents, error) {
	rest := s
	neg := strings.HasPrefix(rest, "-")
	if neg {
		rest = rest[1:]
	}

	digits := leadingDigits(rest)
	rest = rest[len(digits):]

	var units int64
	if digits != "" {
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil || v >= maxIntegerPart {
			return 0, &ParseError{Input: s, Reason: "amount out of range"}
		}
		units = v
	}

	var frac int64
	if rest != "" && (rest[0] == ',' || rest[0] == '.') {
		rest = rest[1:]
		fracDigits := leadingDigits(rest)
		rest = rest[len(fracDigits):]
		switch len(fracDigits) {
		case 0:
			frac = 0
		case 1:
			frac = int64(fracDigits[0]-'0') * 10
		case 2:
			frac, _ = strconv.ParseInt(fracDigits, 10, 64)
		default:
			return 0, &ParseError{Input: s, Reason: "more than two decimal places"}
		}
	}

	if rest != "" {
		return 0, &ParseError{Input: s, Reason: "trailing characters after amount"}
	}

	cents := units*100 + frac
	if neg {
		cents = -cents
	}
	return Cents(cents), nil
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// Format renders an amount with the given decimal separator and
// exactly two fractional digits, e.g. 1250 -> "12.50".
func Format(v Cents, sep rune) string {
	var b strings.Builder
	n := int64(v)
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}
	b.WriteString(strconv.FormatInt(n/100, 10))
	b.WriteRune(sep)
	frac := n % 100
	b.WriteByte(byte('0' + frac/10))
	b.WriteByte(byte('0' + frac%10))
	return b.String()
}

// String renders the amount with a '.' separator.
func (c Cents) String() string { return Format(c, '.') }

// Decimal returns the amount as an exact decimal value.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// FromDecimal converts a decimal value to Cents, rounding half away
// from zero at the second decimal place.
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Round(2).Shift(2).IntPart())
}
