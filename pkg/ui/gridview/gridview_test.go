package gridview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/kakeibo/pkg/money"
	"github.com/odvcencio/kakeibo/pkg/ui/backend"
	"github.com/odvcencio/kakeibo/pkg/ui/backend/sim"
	"github.com/odvcencio/kakeibo/pkg/ui/grid"
	"github.com/odvcencio/kakeibo/pkg/ui/runtime"
	"github.com/odvcencio/kakeibo/pkg/ui/terminal"
)

// newTestView builds a 2x2 grid: gutter 5 wide, both value columns 4
// wide, so cells start at x=6 and x=11.
//
//	March A    B
//	R1    1.00 2.00
//	R2    3.00 4.00
//	      4.00 6.00
//	[Add Row] [Delete Last Row] [Confirm]
func newTestView(t *testing.T) (*View, *sim.Backend) {
	t.Helper()
	model, err := grid.NewModel("March",
		[]string{"A", "B"},
		[]string{"R1", "R2"},
		[]money.Cents{100, 200, 300, 400})
	require.NoError(t, err)
	policy, start := grid.NewPolicy().EditableColumn(0, 1).Build()
	v := New(grid.New(model, policy, start))

	be := sim.New(40, 10)
	require.NoError(t, be.Init())
	t.Cleanup(be.Fini)

	v.Layout(runtime.NewRect(0, 0, 40, 10))
	return v, be
}

func render(v *View, be *sim.Backend) {
	be.Clear()
	v.Render(runtime.RenderContext{Target: be, Bounds: runtime.NewRect(0, 0, 40, 10)})
	be.Show()
}

func pressKey(v *View, k terminal.Key) runtime.HandleResult {
	return v.HandleMessage(runtime.KeyMsg{Key: k})
}

func pressRune(v *View, r rune) runtime.HandleResult {
	return v.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: r})
}

func typeText(v *View, s string) {
	for _, r := range s {
		pressRune(v, r)
	}
}

func TestViewRendersGrid(t *testing.T) {
	v, be := newTestView(t)
	render(v, be)

	wants := []struct {
		text string
		x, y int
	}{
		{"March", 0, 0},
		{"A", 6, 0},
		{"B", 11, 0},
		{"R1", 0, 1},
		{"1.00", 6, 1},
		{"2.00", 11, 1},
		{"R2", 0, 2},
		{"3.00", 6, 2},
		{"6.00", 11, 3},
		{"[Add Row]", 0, 4},
		{"[Delete Last Row]", 10, 4},
		{"[Confirm]", 28, 4},
	}
	for _, w := range wants {
		x, y := be.FindText(w.text)
		assert.Equal(t, [2]int{w.x, w.y}, [2]int{x, y}, "position of %q", w.text)
	}
}

func TestViewRightAlignsAmounts(t *testing.T) {
	model, err := grid.NewModel("Trip",
		[]string{"Cost"},
		[]string{"R1", "R2"},
		[]money.Cents{100, 1000})
	require.NoError(t, err)
	policy, start := grid.NewPolicy().EditableColumn(0).Build()
	v := New(grid.New(model, policy, start))
	be := sim.New(40, 10)
	require.NoError(t, be.Init())
	t.Cleanup(be.Fini)
	v.Layout(runtime.NewRect(0, 0, 40, 10))
	render(v, be)

	// Column is 5 wide for "10.00"; "1.00" gets one cell of padding.
	x, y := be.FindText("10.00")
	assert.Equal(t, [2]int{5, 2}, [2]int{x, y})
	x, y = be.FindText("1.00")
	assert.Equal(t, [2]int{6, 1}, [2]int{x, y})
}

func TestViewFocusStyling(t *testing.T) {
	v, be := newTestView(t)
	render(v, be)

	mainc, _, style := be.CaptureCell(0, 0)
	assert.Equal(t, 'M', mainc)
	assert.NotZero(t, style.Attributes()&backend.AttrReverse, "name under cursor renders reversed")

	pressRune(v, 'j')
	render(v, be)
	mainc, _, style = be.CaptureCell(6, 1)
	assert.Equal(t, '1', mainc)
	assert.NotZero(t, style.Attributes()&backend.AttrReverse, "focused cell renders reversed")

	pressRune(v, 'G')
	render(v, be)
	mainc, _, style = be.CaptureCell(11, 4)
	assert.Equal(t, 'D', mainc)
	assert.NotZero(t, style.Attributes()&backend.AttrReverse, "focused button label renders reversed")
}

func TestViewNavigationKeys(t *testing.T) {
	v, _ := newTestView(t)
	g := v.Grid()

	pressRune(v, 'j')
	assert.Equal(t, grid.CellPos(0, 0), g.Cursor())
	pressKey(v, terminal.KeyDown)
	assert.Equal(t, grid.CellPos(0, 1), g.Cursor())
	pressRune(v, 'l')
	assert.Equal(t, grid.CellPos(1, 1), g.Cursor())
	pressRune(v, 'G')
	assert.Equal(t, grid.ButtonPos(1), g.Cursor())
	pressRune(v, 'g')
	assert.Equal(t, grid.NamePos(), g.Cursor())

	res := pressRune(v, 'x')
	assert.False(t, res.Handled, "unmapped rune stays unhandled")
}

func TestViewEditFlow(t *testing.T) {
	v, be := newTestView(t)
	g := v.Grid()

	pressRune(v, 'j')
	pressRune(v, 'r')
	require.True(t, g.Editing())
	typeText(v, "12.50")
	assert.Equal(t, "12.50", g.EditText())

	render(v, be)
	x, y := be.FindText("12.50")
	assert.Equal(t, [2]int{6, 1}, [2]int{x, y}, "edit buffer drawn left-aligned in the cell")

	cx, cy, visible := v.CursorScreen()
	require.True(t, visible)
	assert.Equal(t, [2]int{11, 1}, [2]int{cx, cy}, "hardware cursor after the last typed rune")

	res := pressKey(v, terminal.KeyEnter)
	assert.True(t, res.Handled)
	assert.Empty(t, res.Commands)
	require.False(t, g.Editing())
	val, ok := g.Model().Cell(0, 0)
	require.True(t, ok)
	assert.Equal(t, money.Cents(1250), val)

	_, _, visible = v.CursorScreen()
	assert.False(t, visible, "cursor hidden while navigating")
}

func TestViewJumpEditBindings(t *testing.T) {
	v, _ := newTestView(t)
	g := v.Grid()

	pressRune(v, 'j')
	pressRune(v, 'l')
	pressRune(v, 'I')
	require.True(t, g.Editing())
	assert.Equal(t, grid.RowLabelPos(0), g.Cursor())
	assert.Equal(t, "R1", g.EditText())

	pressKey(v, terminal.KeyEscape)
	require.False(t, g.Editing())

	pressRune(v, 'A')
	require.True(t, g.Editing())
	assert.Equal(t, grid.CellPos(1, 0), g.Cursor())
	assert.Equal(t, "2.00", g.EditText())
}

func TestViewEditingConsumesKeys(t *testing.T) {
	v, _ := newTestView(t)
	g := v.Grid()

	pressRune(v, 'j')
	pressRune(v, 'i')
	require.True(t, g.Editing())
	require.Equal(t, "1.00", g.EditText())

	res := pressKey(v, terminal.KeyUp)
	assert.True(t, res.Handled, "motion keys are consumed while editing")
	assert.Equal(t, grid.CellPos(0, 0), g.Cursor())
	assert.True(t, g.Editing())

	pressRune(v, 'j')
	assert.Equal(t, "1.00j", g.EditText(), "letters insert instead of moving")
}

func TestViewErrorLine(t *testing.T) {
	v, be := newTestView(t)
	g := v.Grid()

	pressRune(v, 'j')
	pressRune(v, 'r')
	typeText(v, "9.999")
	pressKey(v, terminal.KeyEnter)
	require.True(t, g.Editing(), "rejected commit keeps the session open")
	require.Error(t, g.Err())

	render(v, be)
	assert.True(t, be.ContainsText("parse amount"), "error line rendered:\n%s", be.Capture())

	pressKey(v, terminal.KeyEscape)
	render(v, be)
	assert.False(t, be.ContainsText("parse amount"), "error line cleared on cancel")
}

func TestViewConfirm(t *testing.T) {
	v, _ := newTestView(t)
	g := v.Grid()

	pressRune(v, 'G')
	pressRune(v, 'l')
	require.Equal(t, grid.ButtonPos(grid.ButtonConfirm), g.Cursor())

	res := pressKey(v, terminal.KeyEnter)
	require.True(t, g.Finished())
	assert.True(t, g.Accepted())
	require.Len(t, res.Commands, 1)
	assert.IsType(t, runtime.Quit{}, res.Commands[0])
}

func TestViewEscapeQuits(t *testing.T) {
	v, _ := newTestView(t)
	g := v.Grid()

	res := pressKey(v, terminal.KeyEscape)
	require.True(t, g.Finished())
	assert.False(t, g.Accepted())
	require.Len(t, res.Commands, 1)
	assert.IsType(t, runtime.Quit{}, res.Commands[0])
}

func TestViewPaste(t *testing.T) {
	v, _ := newTestView(t)
	g := v.Grid()

	res := v.HandleMessage(runtime.PasteMsg{Text: "12,50"})
	assert.False(t, res.Handled, "paste ignored while navigating")

	pressRune(v, 'j')
	pressRune(v, 'r')
	res = v.HandleMessage(runtime.PasteMsg{Text: "12,50\n"})
	assert.True(t, res.Handled)
	assert.Equal(t, "12,50", g.EditText(), "paste inserts printable runes only")
}

func TestViewMeasure(t *testing.T) {
	v, _ := newTestView(t)

	size := v.Measure(runtime.Loose(100, 100))
	assert.Equal(t, runtime.Size{Width: 37, Height: 6}, size)

	size = v.Measure(runtime.Tight(20, 4))
	assert.Equal(t, runtime.Size{Width: 20, Height: 4}, size)
}

func TestViewRunsInApp(t *testing.T) {
	model, err := grid.NewModel("March",
		[]string{"A", "B"},
		[]string{"R1", "R2"},
		[]money.Cents{100, 200, 300, 400})
	require.NoError(t, err)
	policy, start := grid.NewPolicy().EditableColumn(0, 1).Build()
	v := New(grid.New(model, policy, start))

	// app.Run owns Init and Fini here.
	be := sim.New(40, 10)
	app := runtime.NewApp(runtime.AppConfig{Backend: be, Root: v})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	waitForText(t, be, "March")

	app.Post(runtime.KeyMsg{Key: terminal.KeyEscape})
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("app did not exit after Escape")
	}
	assert.True(t, v.Grid().Finished())
	assert.False(t, v.Grid().Accepted())
}

func waitForText(t *testing.T, be *sim.Backend, text string) {
	t.Helper()

	deadline := time.After(500 * time.Millisecond)
	for {
		if be.ContainsText(text) {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("text %q did not appear, screen:\n%s", text, be.Capture())
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
}
