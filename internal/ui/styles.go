// Package ui holds the terminal styling for skillbook's commands. All
// output degrades to plain text when stdout is not a TTY.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// Palette
var (
	Blue   = lipgloss.Color("#4FA3E3")
	Cyan   = lipgloss.Color("#6FD1C8")
	Green  = lipgloss.Color("#5FC98A")
	Yellow = lipgloss.Color("#E8C35A")
	Red    = lipgloss.Color("#E06A6A")

	White    = lipgloss.Color("#F5F7F7")
	Gray     = lipgloss.Color("#A7B2B5")
	DarkGray = lipgloss.Color("#5E6B70")
)

// Text styles
var (
	// Title for command headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue)

	// Subtitle for secondary headings
	Subtitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	// Success messages
	Success = lipgloss.NewStyle().
		Foreground(Green)

	// Warning messages
	Warning = lipgloss.NewStyle().
		Foreground(Yellow)

	// Error messages
	Error = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Dim - even more subtle
	Dim = lipgloss.NewStyle().
		Foreground(DarkGray)

	// Highlight for important values
	Highlight = lipgloss.NewStyle().
		Foreground(Yellow).
		Bold(true)
)

// Divider returns a horizontal divider
func Divider(width int) string {
	return Dim.Render(strings.Repeat("-", width))
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return "  " + Success.Render("✓ "+message)
}

// ErrorLine creates an error status line
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return "  " + Error.Render("✗ "+message)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return "  " + Warning.Render("! "+message)
}

// Truncate shortens text to width, appending an ellipsis when it was cut.
func Truncate(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	if width <= 3 || len(text) <= width {
		return text
	}
	return text[:width-3] + "..."
}
