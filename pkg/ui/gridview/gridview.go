// Package gridview renders a grid editor to a terminal and feeds it
// key input. The grid state machine (pkg/ui/grid) stays free of
// terminal concerns; this package owns the key map, the styles, and
// the status line, and implements runtime.Widget so the editor can
// run as the root of a runtime.App.
package gridview

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/kakeibo/pkg/ui/backend"
	"github.com/odvcencio/kakeibo/pkg/ui/grid"
	"github.com/odvcencio/kakeibo/pkg/ui/runtime"
)

// View is the terminal widget around a grid.Grid.
type View struct {
	grid   *grid.Grid
	bounds runtime.Rect

	headerStyle backend.Style
	labelStyle  backend.Style
	valueStyle  backend.Style
	totalStyle  backend.Style
	buttonStyle backend.Style
	focusStyle  backend.Style
	editStyle   backend.Style
	errorStyle  backend.Style
}

// New creates a view over g.
func New(g *grid.Grid) *View {
	return &View{
		grid:        g,
		headerStyle: backend.DefaultStyle().Bold(true),
		labelStyle:  backend.DefaultStyle(),
		valueStyle:  backend.DefaultStyle(),
		totalStyle:  backend.DefaultStyle().Bold(true),
		buttonStyle: backend.DefaultStyle().Dim(true),
		focusStyle:  backend.DefaultStyle().Reverse(true),
		editStyle:   backend.DefaultStyle().Underline(true),
		errorStyle:  backend.DefaultStyle().Foreground(backend.ColorRed),
	}
}

// Grid returns the wrapped state machine.
func (v *View) Grid() *grid.Grid { return v.grid }

// Measure returns the grid's rendered size plus the status line.
func (v *View) Measure(c runtime.Constraints) runtime.Size {
	m := v.grid.Metrics()
	return c.Constrain(runtime.Size{Width: m.Width(), Height: m.Height() + 1})
}

// Layout stores the allocated bounds.
func (v *View) Layout(bounds runtime.Rect) {
	v.bounds = bounds
}

// Render draws the header line, data rows, totals, buttons, and the
// error line. Amounts are right-aligned in their columns; the open
// edit buffer is drawn left-aligned so the hardware cursor lands on
// the character being edited.
func (v *View) Render(ctx runtime.RenderContext) {
	g := v.grid
	met := g.Metrics()
	model := g.Model()
	x0, y0 := ctx.Bounds.X, ctx.Bounds.Y

	v.draw(ctx, x0, y0, g.DisplayText(grid.NamePos()), v.styleAt(grid.NamePos(), v.headerStyle))
	for c := 0; c < model.Cols(); c++ {
		label, _ := model.ColumnLabel(c)
		v.draw(ctx, x0+met.ColumnX(c), y0, label, v.headerStyle)
	}

	for r := 0; r < model.Rows(); r++ {
		y := y0 + met.RowY(r)
		pos := grid.RowLabelPos(r)
		v.draw(ctx, x0, y, g.DisplayText(pos), v.styleAt(pos, v.labelStyle))
		for c := 0; c < model.Cols(); c++ {
			v.drawAmount(ctx, x0+met.ColumnX(c), y, met.Columns[c], grid.CellPos(c, r), v.valueStyle)
		}
	}

	ty := y0 + met.TotalsY()
	for c := 0; c < model.Cols(); c++ {
		v.drawAmount(ctx, x0+met.ColumnX(c), ty, met.Columns[c], grid.TotalPos(c), v.totalStyle)
	}

	by := y0 + met.ButtonsY()
	for i := grid.ButtonAddRow; i <= grid.ButtonConfirm; i++ {
		x := x0 + met.ButtonX(i)
		label := grid.ButtonLabel(i)
		style := v.buttonStyle
		if grid.ButtonPos(i) == g.Cursor() {
			style = v.focusStyle
		}
		v.draw(ctx, x, by, "[", v.buttonStyle)
		v.draw(ctx, x+1, by, label, style)
		v.draw(ctx, x+1+runewidth.StringWidth(label), by, "]", v.buttonStyle)
	}

	if err := g.Err(); err != nil {
		v.draw(ctx, x0, by+1, err.Error(), v.errorStyle)
	}
}

// CursorScreen places the hardware cursor inside the open edit
// buffer. While navigating, focus is shown by cell styling and the
// cursor stays hidden.
func (v *View) CursorScreen() (int, int, bool) {
	if !v.grid.Editing() {
		return 0, 0, false
	}
	x, y := v.grid.CursorScreenPos()
	return v.bounds.X + x, v.bounds.Y + y, true
}

// HandleMessage translates keys and paste events into grid actions.
func (v *View) HandleMessage(msg runtime.Message) runtime.HandleResult {
	g := v.grid
	switch m := msg.(type) {
	case runtime.KeyMsg:
		var handled bool
		if g.Editing() {
			handled = v.handleEditingKey(m)
		} else {
			handled = v.handleNavigatingKey(m)
		}
		if g.Finished() {
			return runtime.WithCommand(runtime.Quit{})
		}
		if handled {
			return runtime.Handled()
		}
		return runtime.Unhandled()

	case runtime.PasteMsg:
		if !g.Editing() {
			return runtime.Unhandled()
		}
		for _, r := range m.Text {
			if isEditRune(r) {
				g.InsertRune(r)
			}
		}
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

// styleAt overlays focus or edit styling when pos is the cursor.
func (v *View) styleAt(pos grid.Position, base backend.Style) backend.Style {
	if pos != v.grid.Cursor() {
		return base
	}
	if v.grid.Editing() {
		return v.editStyle
	}
	return v.focusStyle
}

func (v *View) drawAmount(ctx runtime.RenderContext, x, y, width int, pos grid.Position, base backend.Style) {
	g := v.grid
	text := g.DisplayText(pos)
	if g.Editing() && pos == g.Cursor() {
		v.draw(ctx, x, y, text, v.editStyle)
		return
	}
	style := base
	if pos == g.Cursor() {
		style = v.focusStyle
	}
	pad := width - runewidth.StringWidth(text)
	if pad < 0 {
		pad = 0
	}
	v.draw(ctx, x+pad, y, text, style)
}

func (v *View) draw(ctx runtime.RenderContext, x, y int, s string, style backend.Style) {
	if y < ctx.Bounds.Y || y >= ctx.Bounds.Y+ctx.Bounds.Height {
		return
	}
	limit := ctx.Bounds.X + ctx.Bounds.Width
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x+w > limit {
			return
		}
		ctx.Target.SetContent(x, y, r, nil, style)
		x += w
	}
}
