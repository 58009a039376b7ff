package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/kakeibo/pkg/money"
)

// recordingHook remembers every position handed to it.
type recordingHook struct {
	calls []Position
}

func (h *recordingHook) CellCommitted(m *Model, pos Position) {
	h.calls = append(h.calls, pos)
}

// newTestGrid builds a 2x2 grid over the given policy builder, wiring
// in a recording hook. A nil builder opens both columns for editing.
func newTestGrid(t *testing.T, b *PolicyBuilder) (*Grid, *recordingHook) {
	t.Helper()
	m, err := NewModel("March",
		[]string{"A", "B"},
		[]string{"R1", "R2"},
		[]money.Cents{100, 200, 300, 400})
	require.NoError(t, err)

	hook := &recordingHook{}
	if b == nil {
		b = NewPolicy().EditableColumn(0, 1)
	}
	pol, start := b.OnCommit(hook).Build()
	return New(m, pol, start), hook
}

func typeText(g *Grid, s string) {
	for _, r := range s {
		g.InsertRune(r)
	}
}

func TestGridEditFlow(t *testing.T) {
	g, hook := newTestGrid(t, nil)

	// Construction totals.
	assert.Equal(t, []money.Cents{400, 600}, g.Model().Totals())

	// From the name, right is absorbed and down lands on the first cell.
	require.Equal(t, NamePos(), g.Cursor())
	g.Apply(ActMoveRight)
	assert.Equal(t, NamePos(), g.Cursor())
	g.Apply(ActMoveDown)
	require.Equal(t, CellPos(0, 0), g.Cursor())

	// Replace the cell with 9.00 and commit.
	g.Apply(ActStartReplace)
	require.True(t, g.Editing())
	assert.Equal(t, "", g.EditText())
	typeText(g, "9.00")
	g.Apply(ActCommit)

	require.False(t, g.Editing())
	v, _ := g.Model().Cell(0, 0)
	assert.Equal(t, money.Cents(900), v)
	require.Len(t, hook.calls, 1)
	assert.Equal(t, CellPos(0, 0), hook.calls[0])
}

func TestGridEditSeedsCurrentValue(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	g.Apply(ActMoveDown) // cell(0,0) = 100
	g.Apply(ActStartEdit)
	require.True(t, g.Editing())
	assert.Equal(t, "1.00", g.EditText())
	assert.Equal(t, 4, g.EditOffset())
	g.Apply(ActCancel)
	assert.False(t, g.Editing())
}

func TestGridJumpStartThenEdit(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	g.Apply(ActMoveDown)
	g.Apply(ActMoveRight)
	g.Apply(ActJumpStart)
	g.Apply(ActStartEdit)
	require.True(t, g.Editing())
	assert.Equal(t, RowLabelPos(0), g.Cursor())
	assert.Equal(t, "R1", g.EditText())
	assert.Equal(t, 2, g.EditOffset())
}

func TestGridParseFailureKeepsEditing(t *testing.T) {
	g, hook := newTestGrid(t, nil)
	g.Apply(ActMoveDown)
	g.Apply(ActStartReplace)
	typeText(g, "12.555")
	g.Apply(ActCommit)

	require.True(t, g.Editing(), "a rejected commit must keep the session open")
	assert.Equal(t, "12.555", g.EditText())
	require.Error(t, g.Err())
	assert.Empty(t, hook.calls)
	v, _ := g.Model().Cell(0, 0)
	assert.Equal(t, money.Cents(100), v, "value untouched by rejected commit")

	// Fix the text and commit again.
	g.Apply(ActDeleteLeft)
	g.Apply(ActCommit)
	require.False(t, g.Editing())
	assert.NoError(t, g.Err())
	v, _ = g.Model().Cell(0, 0)
	assert.Equal(t, money.Cents(1255), v)
}

func TestGridCancelClearsError(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	g.Apply(ActMoveDown)
	g.Apply(ActStartReplace)
	typeText(g, "junk")
	g.Apply(ActCommit)
	require.Error(t, g.Err())
	g.Apply(ActCancel)
	assert.NoError(t, g.Err())
	assert.False(t, g.Editing())
}

func TestGridReadOnlyCellRefusesEdit(t *testing.T) {
	g, _ := newTestGrid(t, NewPolicy().EditableColumn(1))
	g.Apply(ActMoveDown) // cell(0,0), read-only
	g.Apply(ActStartEdit)
	assert.False(t, g.Editing())
	g.Apply(ActStartReplace)
	assert.False(t, g.Editing())
}

func TestGridNameAlwaysEditable(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	g.Apply(ActStartEdit)
	require.True(t, g.Editing())
	assert.Equal(t, "March", g.EditText())
	typeText(g, " 2024")
	g.Apply(ActCommit)
	assert.Equal(t, "March 2024", g.Model().Name())
}

func TestGridButtons(t *testing.T) {
	g, _ := newTestGrid(t, nil)

	// Walk down to the buttons: name -> cell -> cell -> total -> button.
	g.Apply(ActMoveDown)
	g.Apply(ActMoveDown)
	g.Apply(ActMoveDown)
	g.Apply(ActMoveDown)
	require.Equal(t, KindButton, g.Cursor().Kind())
	require.Equal(t, ButtonAddRow, g.Cursor().Col())

	// Pressing Add Row grows the model; totals stay stale.
	g.Apply(ActStartEdit)
	assert.Equal(t, 3, g.Model().Rows())
	assert.Equal(t, []money.Cents{400, 600}, g.Model().Totals())
	assert.False(t, g.Editing(), "buttons never open an edit session")

	// Delete Last Row takes it back.
	g.Apply(ActMoveRight)
	g.Apply(ActCommit)
	assert.Equal(t, 2, g.Model().Rows())

	// Confirm finishes and accepts.
	g.Apply(ActMoveRight)
	require.Equal(t, ButtonConfirm, g.Cursor().Col())
	g.Apply(ActCommit)
	assert.True(t, g.Finished())
	assert.True(t, g.Accepted())
}

func TestGridExitDoesNotAccept(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	g.Apply(ActExit)
	assert.True(t, g.Finished())
	assert.False(t, g.Accepted())
}

func TestGridDeleteRowClampsCursor(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	g.Model().AddRow() // 3 rows
	g.Apply(ActMoveDown)
	g.Apply(ActMoveDown)
	g.Apply(ActMoveDown) // cell(0,2), the new row
	require.Equal(t, CellPos(0, 2), g.Cursor())

	g.Apply(ActRemoveRow)
	assert.Equal(t, 2, g.Model().Rows())
	assert.Equal(t, CellPos(0, 1), g.Cursor(), "cursor pulled back inside")

	// At the floor the removal is silent and the cursor stays put.
	g.Apply(ActRemoveRow)
	assert.Equal(t, 1, g.Model().Rows())
	g.Apply(ActRemoveRow)
	assert.Equal(t, 1, g.Model().Rows())
	assert.Equal(t, CellPos(0, 0), g.Cursor())
}

func TestGridAddRowKeepsTotals(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	g.Apply(ActAddRow)

	m := g.Model()
	assert.Equal(t, 3, m.Rows())
	assert.Len(t, m.cells, 6)
	for c := 0; c < m.Cols(); c++ {
		v, ok := m.Cell(c, 2)
		require.True(t, ok)
		assert.Equal(t, money.Cents(0), v)
	}
	assert.Equal(t, []money.Cents{400, 600}, m.Totals())
}

func TestGridClear(t *testing.T) {
	g, hook := newTestGrid(t, nil)
	g.Apply(ActMoveDown)
	g.Apply(ActClear)
	v, _ := g.Model().Cell(0, 0)
	assert.Equal(t, money.Cents(0), v)
	require.Len(t, hook.calls, 1)
	assert.Equal(t, CellPos(0, 0), hook.calls[0])
}

func TestGridClearRespectsPolicy(t *testing.T) {
	g, hook := newTestGrid(t, NewPolicy())
	g.Apply(ActMoveDown)
	g.Apply(ActClear)
	v, _ := g.Model().Cell(0, 0)
	assert.Equal(t, money.Cents(100), v)
	assert.Empty(t, hook.calls)
}

func TestGridCopyPaste(t *testing.T) {
	g, hook := newTestGrid(t, nil)

	g.Apply(ActMoveDown) // cell(0,0) = 100
	g.Apply(ActCopy)
	g.Apply(ActMoveRight) // cell(1,0)
	g.Apply(ActPaste)

	v, _ := g.Model().Cell(1, 0)
	assert.Equal(t, money.Cents(100), v)
	require.Len(t, hook.calls, 1)
	assert.Equal(t, CellPos(1, 0), hook.calls[0])

	// The clipboard survives a paste.
	g.Apply(ActMoveDown) // cell(1,1)
	g.Apply(ActPaste)
	v, _ = g.Model().Cell(1, 1)
	assert.Equal(t, money.Cents(100), v)
}

func TestGridPasteTypeMismatchIsSilent(t *testing.T) {
	g, hook := newTestGrid(t, nil)

	g.Apply(ActCopy) // copies the name, a text value
	g.Apply(ActMoveDown)
	g.Apply(ActPaste) // onto an amount cell

	v, _ := g.Model().Cell(0, 0)
	assert.Equal(t, money.Cents(100), v, "mismatched paste writes nothing")
	assert.Empty(t, hook.calls)
	assert.NoError(t, g.Err())
}

func TestGridPasteEmptyClipboard(t *testing.T) {
	g, hook := newTestGrid(t, nil)
	g.Apply(ActMoveDown)
	g.Apply(ActPaste)
	v, _ := g.Model().Cell(0, 0)
	assert.Equal(t, money.Cents(100), v)
	assert.Empty(t, hook.calls)
}

func TestGridHookRecomputesTotals(t *testing.T) {
	m, err := NewModel("m", []string{"A"}, []string{"r"}, []money.Cents{500})
	require.NoError(t, err)
	pol, start := NewPolicy().
		EditableColumn(0).
		OnCommit(CommitHookFunc(func(m *Model, _ Position) { m.RecomputeTotals() })).
		Build()
	g := New(m, pol, start)

	g.Apply(ActMoveDown)
	g.Apply(ActStartReplace)
	typeText(g, "2,50")
	g.Apply(ActCommit)

	assert.Equal(t, []money.Cents{250}, m.Totals())
}

func TestGridInsertIgnoredWhileNavigating(t *testing.T) {
	g, _ := newTestGrid(t, nil)
	g.InsertRune('x')
	assert.False(t, g.Editing())
	assert.Equal(t, "March", g.Model().Name())
}
