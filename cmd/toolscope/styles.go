package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for the TUI.
var (
	// Header bar styles.
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray

	// Card styles.
	cardNameStyle     = lipgloss.NewStyle().Bold(true)
	selectedNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	chipStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // magenta
	descStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bodyStyle         = lipgloss.NewStyle().PaddingLeft(4)
	schemaStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("8"))

	// Cursor markers.
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green

	// Spinner / animation styles.
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // magenta

	// Status line styles.
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)

	// Error block style.
	errorBlockStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("1"))
)

const (
	cursorMarker = "▸ "
	blankMarker  = "  "
)
