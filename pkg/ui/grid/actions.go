package grid

// Action is the abstract input vocabulary of the widget. The view
// layer owns the key map that produces Actions; the state machine
// never sees raw key events.
type Action int

const (
	// ActNone does nothing.
	ActNone Action = iota

	// Cursor motion while navigating.
	ActMoveUp
	ActMoveDown
	ActMoveLeft
	ActMoveRight
	ActJumpTop
	ActJumpBottom
	ActJumpStart
	ActJumpEnd

	// Entering and leaving edits.
	ActStartEdit
	ActStartReplace
	ActCommit
	ActCancel

	// Whole-cell operations while navigating.
	ActClear
	ActCopy
	ActPaste
	ActAddRow
	ActRemoveRow

	// In-buffer operations while editing. ActInsertRune carries a
	// rune payload via Grid.InsertRune.
	ActInsertRune
	ActCursorLeft
	ActCursorRight
	ActDeleteLeft
	ActDeleteRight

	// ActExit closes the widget without pressing Confirm.
	ActExit
)
