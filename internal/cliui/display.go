// Package cliui renders comparison output for the terminal client.
package cliui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Display handles terminal output with colors and markdown rendering
type Display struct {
	width         int
	renderer      *glamour.TermRenderer
	spinnerActive bool
	spinnerDone   chan bool
}

// NewDisplay creates a new display instance sized to the terminal
func NewDisplay() *Display {
	width := terminalWidth()

	// Create markdown renderer
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-10),
	)

	return &Display{
		width:       width,
		renderer:    renderer,
		spinnerDone: make(chan bool),
	}
}

// Color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// PrintWelcome displays the welcome message
func (d *Display) PrintWelcome(server string) {
	fmt.Printf("%s%s╔════════════════════════════════════════╗%s\n", colorBold, colorCyan, colorReset)
	fmt.Printf("%s%s║   searchlens - search comparison CLI  ║%s\n", colorBold, colorCyan, colorReset)
	fmt.Printf("%s%s╚════════════════════════════════════════╝%s\n", colorBold, colorCyan, colorReset)
	fmt.Printf("\n%sServer: %s%s\n", colorGray, server, colorReset)
	fmt.Printf("%sType a query, '/history' for recent runs, or '/exit' to quit%s\n\n", colorGray, colorReset)
}

// PrintGoodbye displays the goodbye message
func (d *Display) PrintGoodbye() {
	fmt.Printf("\n%sGoodbye!%s\n", colorCyan, colorReset)
}

// PrintError displays an error message
func (d *Display) PrintError(err error) {
	fmt.Printf("%s✗ Error: %v%s\n", colorRed, err, colorReset)
}

// PrintInfo displays an info message
func (d *Display) PrintInfo(msg string) {
	fmt.Printf("%sℹ %s%s\n", colorCyan, msg, colorReset)
}

// PrintWarning displays a warning message
func (d *Display) PrintWarning(msg string) {
	fmt.Printf("%s⚠ %s%s\n", colorYellow, msg, colorReset)
}

// PrintSuccess displays a success message
func (d *Display) PrintSuccess(msg string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, msg, colorReset)
}

// PrintPrompt displays the user input prompt
func (d *Display) PrintPrompt() {
	fmt.Printf("\n%s❯ %s", colorGreen, colorReset)
}

// ShowSpinner displays a spinner with a message
func (d *Display) ShowSpinner(msg string) {
	if d.spinnerActive {
		d.StopSpinner()
	}

	d.spinnerActive = true
	d.spinnerDone = make(chan bool)

	go func() {
		spinnerChars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		i := 0
		for {
			select {
			case <-d.spinnerDone:
				// Clear the spinner line
				fmt.Printf("\r\033[2K\r")
				return
			default:
				fmt.Printf("\r%s%s %s%s", colorCyan, spinnerChars[i], msg, colorReset)
				i = (i + 1) % len(spinnerChars)
				time.Sleep(80 * time.Millisecond)
			}
		}
	}()
}

// StopSpinner stops the currently active spinner
func (d *Display) StopSpinner() {
	if d.spinnerActive {
		d.spinnerActive = false
		d.spinnerDone <- true
		time.Sleep(10 * time.Millisecond) // Give time for goroutine to clean up
	}
}

// Cleanup ensures the display is in a good state before exit
func (d *Display) Cleanup() {
	d.StopSpinner()
}

// RenderMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func (d *Display) RenderMarkdown(markdown string) string {
	if d.renderer == nil {
		return markdown
	}
	rendered, err := d.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}

// IsTerminal checks if stdout is a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatDuration renders a duration compactly for status lines
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
