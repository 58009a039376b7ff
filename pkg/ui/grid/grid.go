// Package grid implements an interactive grid editor as a pure state
// machine: a matrix of fixed-point amounts with a name field, column
// and row labels, a totals row, and an action-button row. A focus
// cursor moves over the addressable space, an edit session handles
// in-place text editing, and a policy decides what may change.
//
// The package knows nothing about terminals. Rendering and raw input
// are adapters layered on top (see gridview); everything here is
// synchronous and single-threaded.
package grid

// Grid ties a Model, a Policy, the focus cursor, the edit session,
// and the clipboard together and advances them one Action at a time.
type Grid struct {
	model  *Model
	policy *Policy

	cursor  Position
	session Session
	clip    *Value

	lastErr  error
	finished bool
	accepted bool
}

// New assembles a widget state machine over model with the given
// policy and initial cursor, as produced by PolicyBuilder.Build.
func New(model *Model, policy *Policy, start Position) *Grid {
	return &Grid{model: model, policy: policy, cursor: start}
}

// Model returns the underlying model.
func (g *Grid) Model() *Model { return g.model }

// Cursor returns the current focus position.
func (g *Grid) Cursor() Position { return g.cursor }

// Editing reports whether an edit session is open.
func (g *Grid) Editing() bool { return g.session.Active() }

// EditText returns the edit buffer contents while editing.
func (g *Grid) EditText() string { return g.session.Text() }

// EditOffset returns the rune offset of the edit cursor.
func (g *Grid) EditOffset() int { return g.session.Offset() }

// Err returns the parse failure of the last rejected commit, or nil.
// It clears on the next successful commit or cancel.
func (g *Grid) Err() error { return g.lastErr }

// Finished reports whether the widget wants to close.
func (g *Grid) Finished() bool { return g.finished }

// Accepted reports whether the close came from the Confirm button
// rather than from an exit.
func (g *Grid) Accepted() bool { return g.accepted }

// InsertRune feeds one typed rune into the open edit session.
func (g *Grid) InsertRune(r rune) { g.apply(ActInsertRune, r) }

// Apply advances the state machine by one action. Unknown or
// inapplicable actions are ignored; Apply never panics and never
// moves the cursor outside the addressable space.
func (g *Grid) Apply(a Action) { g.apply(a, 0) }

func (g *Grid) apply(a Action, r rune) {
	if g.session.Active() {
		g.applyEditing(a, r)
		return
	}
	g.applyNavigating(a)
}

func (g *Grid) applyNavigating(a Action) {
	switch a {
	case ActMoveUp:
		g.cursor = g.model.Above(g.cursor)
	case ActMoveDown:
		g.cursor = g.model.Below(g.cursor)
	case ActMoveLeft:
		g.cursor = g.model.LeftOf(g.cursor)
	case ActMoveRight:
		g.cursor = g.model.RightOf(g.cursor)
	case ActJumpTop:
		g.cursor = g.model.Top()
	case ActJumpBottom:
		g.cursor = g.model.Bottom()
	case ActJumpStart:
		g.cursor = g.model.StartOfLine(g.cursor)
	case ActJumpEnd:
		g.cursor = g.model.EndOfLine(g.cursor)
	case ActStartEdit:
		g.startEdit(seedCurrent)
	case ActStartReplace:
		g.startEdit(seedEmpty)
	case ActClear:
		if ref, ok := g.editableRef(); ok {
			ref.Clear()
			g.policy.notify(g.model, g.cursor)
		}
	case ActCopy:
		if ref, ok := g.model.RefAt(g.cursor); ok {
			v := ref.Copy()
			g.clip = &v
		}
	case ActPaste:
		if g.clip == nil {
			return
		}
		if ref, ok := g.editableRef(); ok && ref.Paste(*g.clip) {
			g.policy.notify(g.model, g.cursor)
		}
	case ActAddRow:
		g.model.AddRow()
	case ActRemoveRow:
		g.removeLastRow()
	case ActCommit:
		if g.cursor.Kind() == KindButton {
			g.pressButton(g.cursor.Col())
		}
	case ActExit:
		g.finished = true
	}
}

type editSeed int

const (
	seedCurrent editSeed = iota
	seedEmpty
)

func (g *Grid) startEdit(seed editSeed) {
	if g.cursor.Kind() == KindButton {
		g.pressButton(g.cursor.Col())
		return
	}
	ref, ok := g.editableRef()
	if !ok {
		return
	}
	initial := ""
	if seed == seedCurrent {
		initial = ref.Text(g.policy.DecimalSep())
	}
	g.session.Start(initial)
}

// editableRef resolves the cursor to an accessor when the policy
// allows writing there.
func (g *Grid) editableRef() (CellRef, bool) {
	if !g.policy.IsEditable(g.cursor) {
		return CellRef{}, false
	}
	return g.model.RefAt(g.cursor)
}

func (g *Grid) pressButton(i int) {
	switch i {
	case ButtonAddRow:
		g.model.AddRow()
	case ButtonDeleteRow:
		g.removeLastRow()
	case ButtonConfirm:
		g.finished = true
		g.accepted = true
	}
}

// removeLastRow deletes the bottom row and pulls the cursor back
// inside the grid if it referenced it.
func (g *Grid) removeLastRow() {
	last := g.model.Rows() - 1
	g.model.RemoveRow(last)
	limit := g.model.Rows() - 1
	switch g.cursor.Kind() {
	case KindRowLabel:
		if g.cursor.Row() > limit {
			g.cursor = RowLabelPos(limit)
		}
	case KindCell:
		if g.cursor.Row() > limit {
			g.cursor = CellPos(g.cursor.Col(), limit)
		}
	}
}

func (g *Grid) applyEditing(a Action, r rune) {
	switch a {
	case ActInsertRune:
		g.session.InsertRune(r)
	case ActCursorLeft:
		g.session.MoveLeft()
	case ActCursorRight:
		g.session.MoveRight()
	case ActDeleteLeft:
		g.session.DeleteLeft()
	case ActDeleteRight:
		g.session.DeleteRight()
	case ActJumpStart:
		g.session.MoveToStart()
	case ActJumpEnd:
		g.session.MoveToEnd()
	case ActCancel:
		g.session.Cancel()
		g.lastErr = nil
	case ActCommit:
		g.commitEdit()
	}
}

// commitEdit parses the buffer for the focused element and writes it
// through. A parse failure keeps the session open so the text can be
// corrected, and is reported via Err.
func (g *Grid) commitEdit() {
	ref, ok := g.model.RefAt(g.cursor)
	if !ok {
		g.session.Cancel()
		return
	}
	if err := ref.CommitText(g.session.Text()); err != nil {
		g.lastErr = err
		return
	}
	g.session.Commit()
	g.lastErr = nil
	g.policy.notify(g.model, g.cursor)
}
