package grid

import "fmt"

// PositionKind discriminates the focusable regions of a grid.
type PositionKind int

const (
	// KindName is the corner label above the row labels.
	KindName PositionKind = iota
	// KindRowLabel is a label in the leftmost column.
	KindRowLabel
	// KindCell is a value cell in the matrix.
	KindCell
	// KindTotal is a field in the totals row under the matrix.
	KindTotal
	// KindButton is one of the action buttons under the totals row.
	KindButton
)

// Button indices, left to right.
const (
	ButtonAddRow = iota
	ButtonDeleteRow
	ButtonConfirm
	buttonCount
)

// ButtonLabel returns the display label of a button.
func ButtonLabel(i int) string {
	switch i {
	case ButtonAddRow:
		return "Add Row"
	case ButtonDeleteRow:
		return "Delete Last Row"
	case ButtonConfirm:
		return "Confirm"
	}
	return ""
}

// Position identifies one focusable element: the name field, a row
// label, a cell, a totals field, or a button. The zero value is the
// name field.
type Position struct {
	kind PositionKind
	col  int
	row  int
}

// NamePos returns the position of the corner name field.
func NamePos() Position { return Position{kind: KindName} }

// RowLabelPos returns the position of the label of the given row.
func RowLabelPos(row int) Position { return Position{kind: KindRowLabel, row: row} }

// CellPos returns the position of the cell at (col, row).
func CellPos(col, row int) Position { return Position{kind: KindCell, col: col, row: row} }

// TotalPos returns the position of the totals field of the given column.
func TotalPos(col int) Position { return Position{kind: KindTotal, col: col} }

// ButtonPos returns the position of the given button.
func ButtonPos(i int) Position { return Position{kind: KindButton, col: i} }

// String renders the position for logs and test output.
func (p Position) String() string {
	switch p.kind {
	case KindName:
		return "name"
	case KindRowLabel:
		return fmt.Sprintf("rowlabel(%d)", p.row)
	case KindCell:
		return fmt.Sprintf("cell(%d,%d)", p.col, p.row)
	case KindTotal:
		return fmt.Sprintf("total(%d)", p.col)
	case KindButton:
		return fmt.Sprintf("button(%d)", p.col)
	}
	return "invalid"
}

// Kind reports which region the position addresses.
func (p Position) Kind() PositionKind { return p.kind }

// Col returns the column index for cells and totals fields and the
// button index for buttons.
func (p Position) Col() int { return p.col }

// Row returns the row index for row labels and cells.
func (p Position) Row() int { return p.row }

// Above returns the position one step up from p. Motion is total:
// from any position inside the grid it yields a position inside the
// grid, with edges absorbing further motion.
func (m *Model) Above(p Position) Position {
	switch p.kind {
	case KindRowLabel:
		if p.row == 0 {
			return NamePos()
		}
		return RowLabelPos(p.row - 1)
	case KindCell:
		if p.row == 0 {
			return NamePos()
		}
		return CellPos(p.col, p.row-1)
	case KindTotal:
		return CellPos(p.col, m.Rows()-1)
	case KindButton:
		return TotalPos(min(p.col, m.Cols()-1))
	}
	return p
}

// Below returns the position one step down from p.
func (m *Model) Below(p Position) Position {
	switch p.kind {
	case KindName:
		return CellPos(0, 0)
	case KindRowLabel:
		if p.row >= m.Rows()-1 {
			return TotalPos(0)
		}
		return RowLabelPos(p.row + 1)
	case KindCell:
		if p.row >= m.Rows()-1 {
			return TotalPos(p.col)
		}
		return CellPos(p.col, p.row+1)
	case KindTotal:
		return ButtonPos(min(p.col, buttonCount-1))
	}
	return p
}

// LeftOf returns the position one step left of p.
func (m *Model) LeftOf(p Position) Position {
	switch p.kind {
	case KindCell:
		if p.col == 0 {
			return RowLabelPos(p.row)
		}
		return CellPos(p.col-1, p.row)
	case KindTotal:
		if p.col > 0 {
			return TotalPos(p.col - 1)
		}
	case KindButton:
		if p.col > 0 {
			return ButtonPos(p.col - 1)
		}
	}
	return p
}

// RightOf returns the position one step right of p.
func (m *Model) RightOf(p Position) Position {
	switch p.kind {
	case KindRowLabel:
		return CellPos(0, p.row)
	case KindCell:
		if p.col < m.Cols()-1 {
			return CellPos(p.col+1, p.row)
		}
	case KindTotal:
		if p.col < m.Cols()-1 {
			return TotalPos(p.col + 1)
		}
	case KindButton:
		if p.col < buttonCount-1 {
			return ButtonPos(p.col + 1)
		}
	}
	return p
}

// Top returns the position reached by jumping to the top of the grid.
func (m *Model) Top() Position { return NamePos() }

// Bottom returns the position reached by jumping to the bottom of the
// grid.
func (m *Model) Bottom() Position {
	return ButtonPos(min(buttonCount-1, m.Cols()-1))
}

// StartOfLine moves p to the leftmost position of its line. Name and
// row labels already sit at the start and are unchanged.
func (m *Model) StartOfLine(p Position) Position {
	switch p.kind {
	case KindCell:
		return RowLabelPos(p.row)
	case KindTotal:
		return TotalPos(0)
	case KindButton:
		return ButtonPos(0)
	}
	return p
}

// EndOfLine moves p to the rightmost position of its line.
func (m *Model) EndOfLine(p Position) Position {
	switch p.kind {
	case KindRowLabel:
		return CellPos(m.Cols()-1, p.row)
	case KindCell:
		return CellPos(m.Cols()-1, p.row)
	case KindTotal:
		return TotalPos(m.Cols() - 1)
	case KindButton:
		return ButtonPos(buttonCount - 1)
	}
	return p
}
