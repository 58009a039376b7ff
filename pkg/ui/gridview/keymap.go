package gridview

import (
	"strings"
	"unicode"

	"github.com/odvcencio/kakeibo/pkg/ui/grid"
	"github.com/odvcencio/kakeibo/pkg/ui/runtime"
	"github.com/odvcencio/kakeibo/pkg/ui/terminal"
)

// The key map is vim-flavored: hjkl and arrows move, g/G jump to the
// top and bottom, 0/_ and $ jump within the line, i edits, r replaces,
// d clears, y/p copy and paste, +/- add and remove rows. I and A jump
// to the first or last element of the line and open an edit there.

func (v *View) handleNavigatingKey(m runtime.KeyMsg) bool {
	g := v.grid
	switch m.Key {
	case terminal.KeyUp:
		g.Apply(grid.ActMoveUp)
	case terminal.KeyDown:
		g.Apply(grid.ActMoveDown)
	case terminal.KeyLeft:
		g.Apply(grid.ActMoveLeft)
	case terminal.KeyRight:
		g.Apply(grid.ActMoveRight)
	case terminal.KeyHome:
		g.Apply(grid.ActJumpStart)
	case terminal.KeyEnd:
		g.Apply(grid.ActJumpEnd)
	case terminal.KeyEnter:
		g.Apply(grid.ActCommit)
	case terminal.KeyEscape:
		g.Apply(grid.ActExit)
	case terminal.KeyCtrlC:
		g.Apply(grid.ActExit)
	case terminal.KeyRune:
		return v.handleNavigatingRune(m.Rune)
	default:
		return false
	}
	return true
}

func (v *View) handleNavigatingRune(r rune) bool {
	g := v.grid
	switch r {
	case 'k':
		g.Apply(grid.ActMoveUp)
	case 'j':
		g.Apply(grid.ActMoveDown)
	case 'h':
		g.Apply(grid.ActMoveLeft)
	case 'l':
		g.Apply(grid.ActMoveRight)
	case 'g':
		g.Apply(grid.ActJumpTop)
	case 'G':
		g.Apply(grid.ActJumpBottom)
	case '0', '_':
		g.Apply(grid.ActJumpStart)
	case '$':
		g.Apply(grid.ActJumpEnd)
	case 'i':
		g.Apply(grid.ActStartEdit)
	case 'r':
		g.Apply(grid.ActStartReplace)
	case 'I':
		g.Apply(grid.ActJumpStart)
		g.Apply(grid.ActStartEdit)
	case 'A':
		g.Apply(grid.ActJumpEnd)
		g.Apply(grid.ActStartEdit)
	case 'd':
		g.Apply(grid.ActClear)
	case 'y':
		g.Apply(grid.ActCopy)
	case 'p':
		g.Apply(grid.ActPaste)
	case '+':
		g.Apply(grid.ActAddRow)
	case '-':
		g.Apply(grid.ActRemoveRow)
	default:
		return false
	}
	return true
}

// handleEditingKey consumes every key while a session is open so a
// stray motion key cannot move focus mid-edit.
func (v *View) handleEditingKey(m runtime.KeyMsg) bool {
	g := v.grid
	switch m.Key {
	case terminal.KeyRune:
		if isEditRune(m.Rune) {
			g.InsertRune(m.Rune)
		}
	case terminal.KeyLeft:
		g.Apply(grid.ActCursorLeft)
	case terminal.KeyRight:
		g.Apply(grid.ActCursorRight)
	case terminal.KeyHome:
		g.Apply(grid.ActJumpStart)
	case terminal.KeyEnd:
		g.Apply(grid.ActJumpEnd)
	case terminal.KeyBackspace:
		g.Apply(grid.ActDeleteLeft)
	case terminal.KeyDelete:
		g.Apply(grid.ActDeleteRight)
	case terminal.KeyEnter:
		g.Apply(grid.ActCommit)
	case terminal.KeyEscape:
		g.Apply(grid.ActCancel)
	case terminal.KeyCtrlC:
		g.Apply(grid.ActCancel)
		g.Apply(grid.ActExit)
	}
	return true
}

// isEditRune reports whether r may be typed into an edit buffer:
// letters, digits, space, and the punctuation that appears in names
// and amounts.
func isEditRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' ||
		strings.ContainsRune(".,-'!?", r)
}
