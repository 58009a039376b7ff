package grid

import "github.com/odvcencio/kakeibo/pkg/money"

// RefKind tags what a CellRef points at.
type RefKind int

const (
	// RefString marks text content: the name field and row labels.
	RefString RefKind = iota
	// RefAmount marks fixed-point values: cells and totals fields.
	RefAmount
)

// CellRef is a short-lived view of one focused element, built per
// action from the cursor and the model. It must not be held across
// actions; any model mutation invalidates it.
type CellRef struct {
	kind RefKind
	str  *string
	amt  *money.Cents
}

// RefAt resolves a position to an accessor over its content. Buttons
// carry no content and out-of-range positions resolve to nothing, so
// both report false.
func (m *Model) RefAt(p Position) (CellRef, bool) {
	switch p.Kind() {
	case KindName:
		return CellRef{kind: RefString, str: &m.name}, true
	case KindRowLabel:
		if ptr, ok := m.rowLabelPtr(p.Row()); ok {
			return CellRef{kind: RefString, str: ptr}, true
		}
	case KindCell:
		if ptr, ok := m.cellPtr(p.Col(), p.Row()); ok {
			return CellRef{kind: RefAmount, amt: ptr}, true
		}
	case KindTotal:
		if ptr, ok := m.totalPtr(p.Col()); ok {
			return CellRef{kind: RefAmount, amt: ptr}, true
		}
	}
	return CellRef{}, false
}

// Kind reports whether the reference holds text or an amount.
func (r CellRef) Kind() RefKind { return r.kind }

// Text returns the content in its editable form, formatting amounts
// with the given decimal separator.
func (r CellRef) Text(sep rune) string {
	if r.kind == RefString {
		return *r.str
	}
	return money.Format(*r.amt, sep)
}

// CommitText parses s according to the referenced kind and writes it
// through. Text targets take s verbatim; amount targets parse it, and
// on a parse error nothing is written.
func (r CellRef) CommitText(s string) error {
	if r.kind == RefString {
		*r.str = s
		return nil
	}
	v, err := money.Parse(s)
	if err != nil {
		return err
	}
	*r.amt = v
	return nil
}

// Clear writes the zero value: the empty string or zero cents.
func (r CellRef) Clear() {
	if r.kind == RefString {
		*r.str = ""
		return
	}
	*r.amt = 0
}

// Copy captures the content as a clipboard value.
func (r CellRef) Copy() Value {
	if r.kind == RefString {
		return Value{kind: RefString, str: *r.str}
	}
	return Value{kind: RefAmount, amt: *r.amt}
}

// Paste writes v through if its tag matches the referenced kind.
// A mismatched tag writes nothing and reports false.
func (r CellRef) Paste(v Value) bool {
	if v.kind != r.kind {
		return false
	}
	if r.kind == RefString {
		*r.str = v.str
	} else {
		*r.amt = v.amt
	}
	return true
}

// Value is a clipboard entry tagged with the kind of element it was
// copied from. Pasting only succeeds onto an element of the same
// kind.
type Value struct {
	kind RefKind
	str  string
	amt  money.Cents
}

// Kind reports the tag of the clipboard value.
func (v Value) Kind() RefKind { return v.kind }

// StringValue builds a text clipboard value.
func StringValue(s string) Value { return Value{kind: RefString, str: s} }

// AmountValue builds an amount clipboard value.
func AmountValue(c money.Cents) Value { return Value{kind: RefAmount, amt: c} }
