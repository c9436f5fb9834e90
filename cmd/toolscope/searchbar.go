package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var searchBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("2")) // green

// searchBarModel wraps a textinput in a rounded border box. Typing
// filters the visible cards as the query changes.
type searchBarModel struct {
	input   textinput.Model
	enabled bool
	width   int
}

func newSearchBar() searchBarModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter tools..."
	ti.Prompt = "/ "
	ti.CharLimit = 0
	// Don't focus yet — the terminal may still be sending OSC responses
	// that bubbletea misinterprets as key events. We focus after a short
	// drain delay in appModel.Init().

	return searchBarModel{input: ti, enabled: false}
}

func (m searchBarModel) Update(msg tea.Msg) (searchBarModel, tea.Cmd) {
	if !m.enabled {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m searchBarModel) View() string {
	innerWidth := max(m.width-4, 10) // account for border padding
	m.input.Width = innerWidth - len(m.input.Prompt) - 1

	return searchBorder.Width(innerWidth).Render(m.input.View())
}

func (m searchBarModel) value() string {
	return m.input.Value()
}

func (m *searchBarModel) clear() {
	m.input.Reset()
}

func (m *searchBarModel) setWidth(w int) {
	m.width = w
}

func (m *searchBarModel) enable() tea.Cmd {
	m.enabled = true
	return m.input.Focus()
}
