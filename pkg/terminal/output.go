// Package terminal provides styled command-line output and the
// interactive prompts the expense flows are built from: markdown
// rendering for status reports, colored messages, confirmations,
// and line input.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Writer provides styled terminal output with markdown rendering.
type Writer struct {
	in       io.Reader
	lines    *bufio.Reader
	out      io.Writer
	renderer *glamour.TermRenderer
	mu       sync.Mutex

	// Styles
	errorStyle   lipgloss.Style
	warnStyle    lipgloss.Style
	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
	dimStyle     lipgloss.Style
	boldStyle    lipgloss.Style
	headerStyle  lipgloss.Style
}

// New creates a terminal Writer on stdin/stdout.
func New() *Writer {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO creates a terminal Writer with custom input and output.
func NewWithIO(in io.Reader, out io.Writer) *Writer {
	wrap := getTerminalWidth()
	if wrap > 100 {
		wrap = 100
	}
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)

	// Detect color profile for adaptive colors
	// lipgloss uses this internally for AdaptiveColor
	_ = termenv.ColorProfile()

	return &Writer{
		in:       in,
		out:      out,
		renderer: renderer,

		// Red for errors
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D00000", Dark: "#FF5555"}).
			Bold(true),

		// Yellow for warnings
		warnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFAA00"}),

		// Green for success
		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#008000", Dark: "#55FF55"}),

		// Blue for info
		infoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"}),

		// Dim for secondary content
		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}),

		// Bold
		boldStyle: lipgloss.NewStyle().Bold(true),

		// Headers
		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"}),
	}
}

// readLine reads one line of input, without the trailing newline.
// The caller must hold w.mu.
func (w *Writer) readLine() string {
	if w.lines == nil {
		w.lines = bufio.NewReader(w.in)
	}
	line, err := w.lines.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}

// Print writes text to the terminal.
func (w *Writer) Print(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, format, args...)
}

// Println writes text with a newline.
func (w *Writer) Println(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Markdown renders markdown to the terminal with styling.
func (w *Writer) Markdown(md string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.renderer == nil {
		// Fallback to plain text
		fmt.Fprintln(w.out, md)
		return nil
	}

	rendered, err := w.renderer.Render(md)
	if err != nil {
		fmt.Fprintln(w.out, md)
		return err
	}

	fmt.Fprint(w.out, rendered)
	return nil
}

// Error prints an error message in red.
func (w *Writer) Error(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.out, w.errorStyle.Render("error: "+msg))
}

// Warn prints a warning message in yellow.
func (w *Writer) Warn(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.out, w.warnStyle.Render("warning: "+msg))
}

// Success prints a success message in green.
func (w *Writer) Success(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.out, w.successStyle.Render("✓ "+msg))
}

// Info prints an info message in blue.
func (w *Writer) Info(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.out, w.infoStyle.Render(msg))
}

// Dim prints dimmed/secondary text.
func (w *Writer) Dim(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.out, w.dimStyle.Render(msg))
}

// Bold prints bold text.
func (w *Writer) Bold(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.out, w.boldStyle.Render(msg))
}

// Header prints a section header.
func (w *Writer) Header(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, w.headerStyle.Render(title))
}

// Newline prints a blank line.
func (w *Writer) Newline() {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out)
}

// Divider prints a horizontal divider.
func (w *Writer) Divider() {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, w.dimStyle.Render(strings.Repeat("─", 60)))
}

// List prints a bulleted list.
func (w *Writer) List(items []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, item := range items {
		fmt.Fprintln(w.out, "  • "+item)
	}
}

// getTerminalWidth returns the terminal width, defaulting to 80.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width == 0 {
		return 80
	}
	return width
}

// MenuItem represents a menu option.
type MenuItem struct {
	Key         string // Keyboard shortcut (e.g., "1", "g", "q")
	Label       string // Display label
	Description string // Optional description
	Disabled    bool   // Greyed out if true
}

// Menu displays a menu and returns the selected key. Returns the
// empty string on invalid input.
func (w *Writer) Menu(title string, items []MenuItem) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, w.boldStyle.Render(title))
	fmt.Fprintln(w.out)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"}).
		Bold(true)
	disabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	for _, item := range items {
		if item.Disabled {
			line := fmt.Sprintf("  [%s] %s", item.Key, item.Label)
			if item.Description != "" {
				line += " - " + item.Description
			}
			fmt.Fprintln(w.out, disabledStyle.Render(line))
		} else {
			key := keyStyle.Render(fmt.Sprintf("[%s]", item.Key))
			line := fmt.Sprintf("  %s %s", key, item.Label)
			if item.Description != "" {
				line += w.dimStyle.Render(" - " + item.Description)
			}
			fmt.Fprintln(w.out, line)
		}
	}

	fmt.Fprintln(w.out)
	fmt.Fprint(w.out, w.dimStyle.Render("Enter choice: "))

	input := strings.TrimSpace(strings.ToLower(w.readLine()))

	for _, item := range items {
		if !item.Disabled && strings.ToLower(item.Key) == input {
			return item.Key
		}
	}

	return ""
}

// Confirm prompts for yes/no confirmation.
// Returns true if the user confirms, false otherwise.
func (w *Writer) Confirm(prompt string, defaultYes bool) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	fmt.Fprintf(w.out, "%s [%s]: ", prompt, hint)

	input := strings.TrimSpace(strings.ToLower(w.readLine()))
	if input == "" {
		return defaultYes
	}
	return input == "y" || input == "yes"
}

// Prompt asks for a line of text input.
func (w *Writer) Prompt(prompt, defaultValue string) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if defaultValue != "" {
		fmt.Fprintf(w.out, "%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Fprintf(w.out, "%s: ", prompt)
	}

	input := strings.TrimSpace(w.readLine())
	if input == "" {
		return defaultValue
	}
	return input
}

// PromptSecret asks for a line of input without echoing it, for
// passphrases. When input is not a terminal it falls back to a plain
// line read.
func (w *Writer) PromptSecret(prompt string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fmt.Fprintf(w.out, "%s: ", prompt)

	if f, ok := w.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(w.out)
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}

	return w.readLine(), nil
}
