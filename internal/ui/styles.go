package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	ColorCyan = lipgloss.Color("#00FFFF")
	ColorBlue = lipgloss.Color("#5555FF")
)

// Styles groups the lipgloss styles used when rendering the feed.
type Styles struct {
	// Heading styles the "## Recent Activity" line
	Heading lipgloss.Style
	// Header styles the "type(scope)!:" block of a conventional commit
	Header lipgloss.Style
	// Scope styles the scope token inside the header
	Scope lipgloss.Style
	// Hash styles the linked short commit hash
	Hash lipgloss.Style
}

// DefaultStyles returns the styles used for terminal output
func DefaultStyles() Styles {
	return Styles{
		Heading: lipgloss.NewStyle().Bold(true),
		Header:  lipgloss.NewStyle().Foreground(ColorBlue),
		Scope:   lipgloss.NewStyle().Bold(true),
		Hash:    lipgloss.NewStyle().Foreground(ColorCyan),
	}
}

// PlainStyles renders everything unstyled. Used in tests and wherever
// escape sequences are unwelcome.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Heading: plain,
		Header:  plain,
		Scope:   plain,
		Hash:    plain,
	}
}

// Hyperlink wraps text in an OSC 8 escape sequence pointing at url, so
// supporting terminals render it as a clickable link.
func Hyperlink(url, text string) string {
	return termenv.Hyperlink(url, text)
}
