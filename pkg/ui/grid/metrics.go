package grid

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/kakeibo/pkg/money"
)

// Metrics is the rendered geometry of a grid at one instant: the
// width of the row-label gutter, the width of every value column, and
// the derived screen offsets of rows, columns, and buttons. Widths
// are measured in terminal cells and grow with the edit buffer while
// an edit is open, so the layout never clips the text being typed.
//
// The widget itself does not draw; renderers fetch Metrics and place
// content and the hardware cursor from it.
type Metrics struct {
	Gutter  int
	Columns []int
	rows    int
}

// Metrics computes the current geometry from the model contents and
// the open edit session, if any.
func (g *Grid) Metrics() Metrics {
	m := g.model
	sep := g.policy.DecimalSep()

	editW := -1
	if g.session.Active() {
		editW = runewidth.StringWidth(g.session.Text()) + 1
	}

	gutter := runewidth.StringWidth(m.Name())
	for r := 0; r < m.Rows(); r++ {
		label, _ := m.RowLabel(r)
		gutter = max(gutter, runewidth.StringWidth(label))
	}
	if editW >= 0 && (g.cursor.Kind() == KindName || g.cursor.Kind() == KindRowLabel) {
		gutter = max(gutter, editW)
	}

	cols := make([]int, m.Cols())
	for c := range cols {
		label, _ := m.ColumnLabel(c)
		w := runewidth.StringWidth(label)
		for r := 0; r < m.Rows(); r++ {
			v, _ := m.Cell(c, r)
			w = max(w, runewidth.StringWidth(money.Format(v, sep)))
		}
		if t, ok := m.Total(c); ok {
			w = max(w, runewidth.StringWidth(money.Format(t, sep)))
		}
		if editW >= 0 && g.cursor.Col() == c &&
			(g.cursor.Kind() == KindCell || g.cursor.Kind() == KindTotal) {
			w = max(w, editW)
		}
		cols[c] = w
	}

	return Metrics{Gutter: gutter, Columns: cols, rows: m.Rows()}
}

// ColumnX returns the x offset of the first cell of column c,
// relative to the grid origin. Columns are separated by one space.
func (x Metrics) ColumnX(c int) int {
	off := x.Gutter + 1
	for k := 0; k < c && k < len(x.Columns); k++ {
		off += x.Columns[k] + 1
	}
	return off
}

// RowY returns the y offset of data row r. Row 0 of the screen is the
// header line holding the name and the column labels.
func (x Metrics) RowY(r int) int { return 1 + r }

// TotalsY returns the y offset of the totals row.
func (x Metrics) TotalsY() int { return 1 + x.rows }

// ButtonsY returns the y offset of the button row.
func (x Metrics) ButtonsY() int { return 2 + x.rows }

// ButtonX returns the x offset of button i, including its opening
// bracket.
func (x Metrics) ButtonX(i int) int {
	off := 0
	for j := 0; j < i && j < buttonCount; j++ {
		off += runewidth.StringWidth(ButtonLabel(j)) + 3
	}
	return off
}

// Width returns the total width of the grid in terminal cells.
func (x Metrics) Width() int {
	w := x.Gutter
	for _, c := range x.Columns {
		w += c + 1
	}
	return max(w, x.ButtonX(buttonCount)-1)
}

// Height returns the total height of the grid in terminal cells,
// excluding any status line a renderer may add.
func (x Metrics) Height() int { return x.rows + 3 }

// CursorScreenPos returns the screen offset of the focus cursor
// relative to the grid origin. While editing it points at the edit
// cursor inside the buffer, which is where a renderer places the
// hardware cursor.
func (g *Grid) CursorScreenPos() (int, int) {
	x := g.Metrics()
	var px, py int
	switch g.cursor.Kind() {
	case KindName:
		px, py = 0, 0
	case KindRowLabel:
		px, py = 0, x.RowY(g.cursor.Row())
	case KindCell:
		px, py = x.ColumnX(g.cursor.Col()), x.RowY(g.cursor.Row())
	case KindTotal:
		px, py = x.ColumnX(g.cursor.Col()), x.TotalsY()
	case KindButton:
		px, py = x.ButtonX(g.cursor.Col())+1, x.ButtonsY()
	}
	if g.session.Active() {
		buf := []rune(g.session.Text())
		px += runewidth.StringWidth(string(buf[:g.session.Offset()]))
	}
	return px, py
}

// DisplayText returns what a renderer should draw at pos: the edit
// buffer when pos hosts the open edit, otherwise the model content in
// display form.
func (g *Grid) DisplayText(pos Position) string {
	if g.session.Active() && pos == g.cursor {
		return g.session.Text()
	}
	m := g.model
	switch pos.Kind() {
	case KindName:
		return m.Name()
	case KindRowLabel:
		s, _ := m.RowLabel(pos.Row())
		return s
	case KindCell:
		v, _ := m.Cell(pos.Col(), pos.Row())
		return money.Format(v, g.policy.DecimalSep())
	case KindTotal:
		v, _ := m.Total(pos.Col())
		return money.Format(v, g.policy.DecimalSep())
	case KindButton:
		return ButtonLabel(pos.Col())
	}
	return ""
}
