// Package terminal provides the terminal input event types used
// throughout the UI.
package terminal

// Event represents a terminal input event.
type Event interface {
	eventMarker()
}

// KeyEvent represents a key press.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) eventMarker() {}

// ResizeEvent indicates the terminal size changed.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) eventMarker() {}

// PasteEvent carries bracketed paste content as one event.
type PasteEvent struct {
	Text string
}

func (PasteEvent) eventMarker() {}

// Key identifies which key a KeyEvent is for. KeyRune means a printable
// character; the character itself is in the event's Rune field. Keys the
// editor has no binding for arrive as KeyNone and are ignored.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyCtrlC
)
