// Package sim runs the tcell adapter against tcell's in-memory
// simulation screen, so tests can feed keystrokes in and read the
// rendered frame back out without a terminal.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/kakeibo/pkg/ui/backend"
	"github.com/odvcencio/kakeibo/pkg/ui/backend/tcell"
	"github.com/odvcencio/kakeibo/pkg/ui/terminal"
)

// Backend is the simulation screen behind the regular tcell adapter.
// Everything injected with Press or Type travels the same conversion
// path a real keystroke would.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	mu     sync.Mutex
}

// New creates a simulation backend with the given screen size in cells.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)
	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
	}
}

// Press feeds one keystroke into the event queue. For KeyRune the rune
// is the character typed; for other keys it is ignored.
func (s *Backend) Press(key terminal.Key, r rune) {
	s.screen.InjectKey(simKey(key), r, tcellv2.ModNone)
}

// Type feeds a string one keystroke at a time.
func (s *Backend) Type(text string) {
	for _, r := range text {
		s.Press(terminal.KeyRune, r)
	}
}

// Resize grows or shrinks the simulated terminal and queues the
// matching resize event.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	s.screen.SetSize(width, height)
	s.mu.Unlock()
	_ = s.screen.PostEvent(tcellv2.NewEventResize(width, height))
}

// Capture returns the visible frame as newline-joined rows, with empty
// cells as spaces.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	rows := make([]string, 0, h)
	for y := 0; y < h; y++ {
		var row strings.Builder
		for x := 0; x < w; x++ {
			mainc, comb, _, _ := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			row.WriteRune(mainc)
			for _, c := range comb {
				row.WriteRune(c)
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// CaptureCell returns one cell's rune, combining runes, and style.
func (s *Backend) CaptureCell(x, y int) (mainc rune, comb []rune, style backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, c, ts, _ := s.screen.GetContent(x, y)
	return m, c, fromTcellStyle(ts)
}

// FindText returns the screen position where text starts, or -1, -1
// when it is not on screen.
func (s *Backend) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return col, row
		}
	}
	return -1, -1
}

// ContainsText reports whether text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, _ := s.FindText(text)
	return x >= 0
}

func simKey(k terminal.Key) tcellv2.Key {
	switch k {
	case terminal.KeyRune:
		return tcellv2.KeyRune
	case terminal.KeyEnter:
		return tcellv2.KeyEnter
	case terminal.KeyBackspace:
		return tcellv2.KeyBackspace2
	case terminal.KeyEscape:
		return tcellv2.KeyEscape
	case terminal.KeyUp:
		return tcellv2.KeyUp
	case terminal.KeyDown:
		return tcellv2.KeyDown
	case terminal.KeyLeft:
		return tcellv2.KeyLeft
	case terminal.KeyRight:
		return tcellv2.KeyRight
	case terminal.KeyHome:
		return tcellv2.KeyHome
	case terminal.KeyEnd:
		return tcellv2.KeyEnd
	case terminal.KeyDelete:
		return tcellv2.KeyDelete
	case terminal.KeyCtrlC:
		return tcellv2.KeyCtrlC
	default:
		return tcellv2.KeyNUL
	}
}

func fromTcellStyle(ts tcellv2.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().
		Foreground(fromTcellColor(fg)).
		Background(fromTcellColor(bg))

	if attrs&tcellv2.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&tcellv2.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&tcellv2.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&tcellv2.AttrDim != 0 {
		style = style.Dim(true)
	}
	return style
}

func fromTcellColor(tc tcellv2.Color) backend.Color {
	if tc == tcellv2.ColorDefault {
		return backend.ColorDefault
	}
	if tc&tcellv2.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	return backend.Color(tc & 0xFF)
}

var _ backend.Backend = (*Backend)(nil)
