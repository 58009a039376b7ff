package runtime

// Command represents an intent emitted by widgets. Commands bubble up
// from HandleMessage to the app for handling.
type Command interface {
	isCommand()
}

// Quit signals the application should exit.
type Quit struct{}

func (Quit) isCommand() {}

// Refresh requests a full redraw, bypassing dirty tracking.
type Refresh struct{}

func (Refresh) isCommand() {}
