// Package tcell adapts a tcell screen to the backend interface.
package tcell

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/kakeibo/pkg/ui/backend"
	"github.com/odvcencio/kakeibo/pkg/ui/terminal"
)

// Backend drives a real terminal through tcell.
type Backend struct {
	screen tcell.Screen

	// Bracketed paste arrives as a start marker, a stream of key
	// events, and an end marker. The runes collect here until the end
	// marker turns them into a single PasteEvent.
	inPaste bool
	paste   strings.Builder
}

// New allocates a backend for the process's terminal. The terminal is
// not touched until Init.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing screen. The sim package uses this to
// run the same adapter against tcell's simulation screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnablePaste()
	return nil
}

func (b *Backend) Fini() {
	b.screen.Fini()
}

func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, toTcellStyle(style))
}

func (b *Backend) Show() {
	b.screen.Show()
}

func (b *Backend) Clear() {
	b.screen.Clear()
}

func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// ShowCursor is a no-op: tcell shows the cursor when SetCursorPos
// places it.
func (b *Backend) ShowCursor() {}

func (b *Backend) SetCursorPos(x, y int) {
	b.screen.ShowCursor(x, y)
}

// PollEvent blocks for the next terminal event. Paste markers and the
// key events between them never reach the caller; they surface as one
// PasteEvent. Events with no translation are skipped rather than
// returned as noise.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventPaste:
			if done := b.pasteMarker(e); done != nil {
				return done
			}
			continue
		case *tcell.EventKey:
			if b.inPaste {
				b.pasteRune(e)
				continue
			}
			return terminal.KeyEvent{
				Key:   toKey(e.Key()),
				Rune:  e.Rune(),
				Alt:   e.Modifiers()&tcell.ModAlt != 0,
				Ctrl:  e.Modifiers()&tcell.ModCtrl != 0,
				Shift: e.Modifiers()&tcell.ModShift != 0,
			}
		case *tcell.EventResize:
			w, h := e.Size()
			return terminal.ResizeEvent{Width: w, Height: h}
		}
	}
}

func (b *Backend) Sync() {
	b.screen.Sync()
}

// pasteMarker handles a paste start or end marker. It returns the
// finished PasteEvent on the end marker, or nil when there is nothing
// to deliver yet.
func (b *Backend) pasteMarker(e *tcell.EventPaste) terminal.Event {
	if e.Start() {
		b.inPaste = true
		b.paste.Reset()
		return nil
	}
	b.inPaste = false
	text := b.paste.String()
	b.paste.Reset()
	if text == "" {
		return nil
	}
	return terminal.PasteEvent{Text: text}
}

func (b *Backend) pasteRune(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyRune:
		b.paste.WriteRune(e.Rune())
	case tcell.KeyEnter:
		b.paste.WriteRune('\n')
	case tcell.KeyTab:
		b.paste.WriteRune('\t')
	}
}

func toTcellStyle(s backend.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	style := tcell.StyleDefault.
		Foreground(toTcellColor(fg)).
		Background(toTcellColor(bg))

	if attrs&backend.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&backend.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&backend.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&backend.AttrDim != 0 {
		style = style.Dim(true)
	}
	return style
}

func toTcellColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

func toKey(k tcell.Key) terminal.Key {
	switch k {
	case tcell.KeyRune:
		return terminal.KeyRune
	case tcell.KeyEnter:
		return terminal.KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return terminal.KeyBackspace
	case tcell.KeyEscape:
		return terminal.KeyEscape
	case tcell.KeyUp:
		return terminal.KeyUp
	case tcell.KeyDown:
		return terminal.KeyDown
	case tcell.KeyLeft:
		return terminal.KeyLeft
	case tcell.KeyRight:
		return terminal.KeyRight
	case tcell.KeyHome:
		return terminal.KeyHome
	case tcell.KeyEnd:
		return terminal.KeyEnd
	case tcell.KeyDelete:
		return terminal.KeyDelete
	case tcell.KeyCtrlC:
		return terminal.KeyCtrlC
	default:
		return terminal.KeyNone
	}
}

var _ backend.Backend = (*Backend)(nil)
