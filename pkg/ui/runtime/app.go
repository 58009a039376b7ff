package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/odvcencio/kakeibo/pkg/ui/backend"
	"github.com/odvcencio/kakeibo/pkg/ui/terminal"
)

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend       backend.Backend
	Root          Widget
	MessageBuffer int
}

// App runs a root widget against a terminal backend: it polls input
// events, dispatches them as messages, and re-renders after handled
// messages. Quit commands or context cancellation end the loop.
type App struct {
	backend  backend.Backend
	root     Widget
	messages chan Message

	running  bool
	dirty    bool
	renderMu sync.Mutex
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	return &App{
		backend:  cfg.Backend,
		root:     cfg.Root,
		messages: make(chan Message, bufferSize),
	}
}

// Post sends a message to the event loop. Messages posted while the
// queue is full are dropped.
func (a *App) Post(msg Message) {
	select {
	case a.messages <- msg:
	default:
	}
}

// Run starts the event loop until a Quit command or context
// cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	if a.root == nil {
		return errors.New("root widget is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	a.root.Layout(NewRect(0, 0, w, h))

	a.running = true
	a.dirty = true

	go a.pollEvents()

	for a.running {
		if a.dirty {
			a.render()
			a.dirty = false
		}

		select {
		case <-ctx.Done():
			a.running = false
		case msg := <-a.messages:
			if a.update(msg) {
				a.dirty = true
			}
		}
	}

	return ctx.Err()
}

// update handles one message and reports whether a render is needed.
func (a *App) update(msg Message) bool {
	if resize, ok := msg.(ResizeMsg); ok {
		a.root.Layout(NewRect(0, 0, resize.Width, resize.Height))
		a.backend.Sync()
		return true
	}

	result := a.root.HandleMessage(msg)
	dirty := result.Handled
	for _, cmd := range result.Commands {
		switch cmd.(type) {
		case Quit:
			a.running = false
		case Refresh:
			a.backend.Sync()
			dirty = true
		}
	}
	return dirty
}

func (a *App) pollEvents() {
	for a.running {
		ev := a.backend.PollEvent()
		if ev == nil {
			continue
		}

		switch e := ev.(type) {
		case terminal.KeyEvent:
			a.Post(KeyMsg{
				Key:   e.Key,
				Rune:  e.Rune,
				Alt:   e.Alt,
				Ctrl:  e.Ctrl,
				Shift: e.Shift,
			})
		case terminal.ResizeEvent:
			a.Post(ResizeMsg{Width: e.Width, Height: e.Height})
		case terminal.PasteEvent:
			a.Post(PasteMsg{Text: e.Text})
		}
	}
}

func (a *App) render() {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()

	w, h := a.backend.Size()
	a.backend.Clear()
	a.root.Render(RenderContext{
		Target: a.backend,
		Bounds: NewRect(0, 0, w, h),
	})

	if cp, ok := a.root.(CursorProvider); ok {
		if x, y, visible := cp.CursorScreen(); visible {
			a.backend.SetCursorPos(x, y)
			a.backend.ShowCursor()
		} else {
			a.backend.HideCursor()
		}
	}

	a.backend.Show()
}
