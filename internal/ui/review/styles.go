package review

import "github.com/charmbracelet/lipgloss"

// Markers prefixing the grammatical and ungrammatical sentence.
const (
	goodMark = "✓"
	badMark  = "✗"
)

// diffStyle emphasizes tokens where the bad sentence diverges.
var diffStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("212")).
	Bold(true)

// headerStyle for the status line above the list.
var headerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#8b949e"))

// helpStyle for the key hints at the bottom.
var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#484f58"))

// errorStyle for live-mode failures.
var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196"))
