// Package ui renders operator-facing status output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// UI provides color-coded output methods.
type UI struct {
	output       io.Writer
	colorInfo    *color.Color
	colorSuccess *color.Color
	colorWarning *color.Color
	colorError   *color.Color
	colorBold    *color.Color
}

// New creates a new UI instance writing to stdout.
func New() *UI {
	return &UI{
		output:       os.Stdout,
		colorInfo:    color.New(color.FgBlue),
		colorSuccess: color.New(color.FgGreen),
		colorWarning: color.New(color.FgYellow),
		colorError:   color.New(color.FgRed),
		colorBold:    color.New(color.Bold),
	}
}

// NewWithWriter creates a UI with a custom output writer (useful for testing).
func NewWithWriter(w io.Writer) *UI {
	ui := New()
	ui.output = w
	return ui
}

// Info prints an info message.
func (u *UI) Info(format string, args ...any) {
	u.colorInfo.Fprintf(u.output, "[INFO] %s\n", fmt.Sprintf(format, args...))
}

// Success prints a success message.
func (u *UI) Success(format string, args ...any) {
	u.colorSuccess.Fprintf(u.output, "[OK] %s\n", fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (u *UI) Warning(format string, args ...any) {
	u.colorWarning.Fprintf(u.output, "[WARN] %s\n", fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (u *UI) Error(format string, args ...any) {
	u.colorError.Fprintf(u.output, "[ERROR] %s\n", fmt.Sprintf(format, args...))
}

// Section prints a bold section header.
func (u *UI) Section(title string) {
	u.colorBold.Fprintf(u.output, "%s\n", title)
}
