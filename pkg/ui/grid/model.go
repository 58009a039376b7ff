package grid

import (
	"fmt"

	"github.com/odvcencio/kakeibo/pkg/money"
)

// DimensionError reports a mismatch between the label counts and the
// number of cells handed to NewModel.
type DimensionError struct {
	Columns int
	Rows    int
	Cells   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("grid of %d columns and %d rows needs %d cells, got %d",
		e.Columns, e.Rows, e.Columns*e.Rows, e.Cells)
}

// Model holds the contents of a grid: a corner name, column and row
// labels, the cell matrix in row-major order, and a totals row.
//
// The matrix always satisfies len(cells) == Rows()*Cols(). The totals
// row is summed once at construction and is not touched by AddRow or
// RemoveRow; callers that want it live recompute it from their commit
// hook (see RecomputeTotals).
type Model struct {
	name      string
	colLabels []string
	rowLabels []string
	cells     []money.Cents
	totals    []money.Cents
}

// NewModel builds a Model from labels and row-major cell values. It
// fails exactly when len(cols)*len(rows) != len(cells).
func NewModel(name string, cols, rows []string, cells []money.Cents) (*Model, error) {
	if len(cols)*len(rows) != len(cells) {
		return nil, &DimensionError{Columns: len(cols), Rows: len(rows), Cells: len(cells)}
	}
	m := &Model{
		name:      name,
		colLabels: append([]string(nil), cols...),
		rowLabels: append([]string(nil), rows...),
		cells:     append([]money.Cents(nil), cells...),
		totals:    make([]money.Cents, len(cols)),
	}
	m.RecomputeTotals()
	return m, nil
}

// Cols returns the number of value columns.
func (m *Model) Cols() int { return len(m.colLabels) }

// Rows returns the number of value rows.
func (m *Model) Rows() int { return len(m.rowLabels) }

// Name returns the corner label.
func (m *Model) Name() string { return m.name }

// SetName replaces the corner label.
func (m *Model) SetName(s string) { m.name = s }

// ColumnLabel returns the label of column c, or false when c is out
// of range.
func (m *Model) ColumnLabel(c int) (string, bool) {
	if c < 0 || c >= len(m.colLabels) {
		return "", false
	}
	return m.colLabels[c], true
}

// RowLabel returns the label of row r, or false when r is out of
// range.
func (m *Model) RowLabel(r int) (string, bool) {
	if r < 0 || r >= len(m.rowLabels) {
		return "", false
	}
	return m.rowLabels[r], true
}

// SetRowLabel replaces the label of row r. Out-of-range rows are
// ignored.
func (m *Model) SetRowLabel(r int, s string) {
	if r >= 0 && r < len(m.rowLabels) {
		m.rowLabels[r] = s
	}
}

// Cell returns the value at (col, row), or false when the coordinate
// is out of range.
func (m *Model) Cell(col, row int) (money.Cents, bool) {
	p, ok := m.cellPtr(col, row)
	if !ok {
		return 0, false
	}
	return *p, true
}

// SetCell writes the value at (col, row). Out-of-range coordinates
// are ignored and reported as false.
func (m *Model) SetCell(col, row int, v money.Cents) bool {
	p, ok := m.cellPtr(col, row)
	if !ok {
		return false
	}
	*p = v
	return true
}

func (m *Model) cellPtr(col, row int) (*money.Cents, bool) {
	if col < 0 || col >= m.Cols() || row < 0 || row >= m.Rows() {
		return nil, false
	}
	return &m.cells[row*m.Cols()+col], true
}

// Total returns the totals-row value of column c, or false when c is
// out of range.
func (m *Model) Total(c int) (money.Cents, bool) {
	p, ok := m.totalPtr(c)
	if !ok {
		return 0, false
	}
	return *p, true
}

func (m *Model) totalPtr(c int) (*money.Cents, bool) {
	if c < 0 || c >= len(m.totals) {
		return nil, false
	}
	return &m.totals[c], true
}

func (m *Model) rowLabelPtr(r int) (*string, bool) {
	if r < 0 || r >= len(m.rowLabels) {
		return nil, false
	}
	return &m.rowLabels[r], true
}

// Totals returns a copy of the totals row.
func (m *Model) Totals() []money.Cents {
	return append([]money.Cents(nil), m.totals...)
}

// Row returns a copy of the values of row r.
func (m *Model) Row(r int) []money.Cents {
	if r < 0 || r >= m.Rows() {
		return nil
	}
	n := m.Cols()
	return append([]money.Cents(nil), m.cells[r*n:(r+1)*n]...)
}

// AddRow appends a row with an empty label and zero cells. The totals
// row is left as it was.
func (m *Model) AddRow() {
	m.rowLabels = append(m.rowLabels, "")
	m.cells = append(m.cells, make([]money.Cents, m.Cols())...)
}

// RemoveRow deletes row r and its cells. Removing an out-of-range row
// is a no-op, and the last remaining row can never be removed.
func (m *Model) RemoveRow(r int) {
	if r < 0 || r >= m.Rows() || m.Rows() == 1 {
		return
	}
	n := m.Cols()
	m.rowLabels = append(m.rowLabels[:r], m.rowLabels[r+1:]...)
	m.cells = append(m.cells[:r*n], m.cells[(r+1)*n:]...)
}

// RecomputeTotals sums every column into the totals row.
func (m *Model) RecomputeTotals() {
	n := m.Cols()
	for c := 0; c < n; c++ {
		var sum money.Cents
		for r := 0; r < m.Rows(); r++ {
			sum += m.cells[r*n+c]
		}
		m.totals[c] = sum
	}
}
