// Package backend abstracts the terminal behind a small interface so
// the widget runtime can run against a real screen (the tcell
// subpackage) or an in-memory one (the sim subpackage) without
// changing.
package backend

import "github.com/odvcencio/kakeibo/pkg/ui/terminal"

// Backend is one attached terminal. Rendering goes into an off-screen
// buffer cell by cell; Show flushes the buffer. Implementations are
// driven from a single goroutine except PollEvent, which the runtime
// calls from its event-reading goroutine.
type Backend interface {
	// Init takes over the terminal: alternate screen, raw mode,
	// bracketed paste. Fini undoes all of it and must run even when
	// the program is exiting on an error, or the user's shell is left
	// unusable.
	Init() error
	Fini()

	// Size returns the current terminal dimensions in cells.
	Size() (width, height int)

	// Clear empties the buffer. SetContent writes one cell, with comb
	// carrying any combining runes (usually nil). Show flushes
	// whatever changed since the last Show.
	Clear()
	SetContent(x, y int, mainc rune, comb []rune, style Style)
	Show()

	// Sync forces the next Show to repaint every cell, for when the
	// terminal content can no longer be trusted, as after a resize.
	Sync()

	// The hardware cursor. SetCursorPos also makes the cursor visible
	// at that position on the next Show.
	HideCursor()
	ShowCursor()
	SetCursorPos(x, y int)

	// PollEvent blocks until the terminal produces an event, and
	// returns nil once the backend is shut down.
	PollEvent() terminal.Event
}

// RenderTarget is the drawing subset of Backend. Widgets render
// through this so they cannot reach lifecycle or input methods.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style Style)
}
