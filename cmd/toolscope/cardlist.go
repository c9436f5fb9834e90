package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolscope/toolscope/pkg/cards"
	"github.com/toolscope/toolscope/pkg/catalog"
)

// listEntry pairs a record with its card key. The key's index is the
// record's position in the full catalog, so expansion survives
// filtering.
type listEntry struct {
	rec catalog.ToolRecord
	key cards.Key
}

// cardListModel renders tool cards inside a scrolling viewport and
// tracks the cursor.
type cardListModel struct {
	viewport  viewport.Model
	viewState *cards.ViewState
	entries   []listEntry
	cursor    int
	offsets   []int // first content line of each card
	width     int
}

func newCardList(vs *cards.ViewState) cardListModel {
	return cardListModel{
		viewport:  viewport.New(0, 0),
		viewState: vs,
	}
}

func (m *cardListModel) setSize(w, h int) {
	m.width = w
	m.viewport.Width = w
	m.viewport.Height = max(h, 1)
	m.refresh()
}

// setEntries replaces the visible entries, clamping the cursor.
func (m *cardListModel) setEntries(entries []listEntry) {
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = max(len(entries)-1, 0)
	}
	m.refresh()
}

func (m *cardListModel) moveCursor(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.entries)-1)
	m.refresh()
}

// cursorKey returns the key of the card under the cursor.
func (m cardListModel) cursorKey() (cards.Key, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return cards.Key{}, false
	}
	return m.entries[m.cursor].key, true
}

func (m cardListModel) Update(msg tea.Msg) (cardListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m cardListModel) View() string {
	if len(m.entries) == 0 {
		return dimStyle.Render("  No tools match.")
	}
	return m.viewport.View()
}

// refresh re-renders all cards into the viewport and keeps the cursor
// card in view.
func (m *cardListModel) refresh() {
	if m.width == 0 {
		return
	}

	var sb strings.Builder
	m.offsets = m.offsets[:0]
	line := 0

	for i, e := range m.entries {
		card := m.renderCard(e, i == m.cursor)
		m.offsets = append(m.offsets, line)
		line += strings.Count(card, "\n") + 1
		sb.WriteString(card)
		sb.WriteString("\n")
	}

	m.viewport.SetContent(strings.TrimRight(sb.String(), "\n"))
	m.scrollToCursor(line)
}

// scrollToCursor adjusts the viewport offset so the cursor card's first
// line is visible.
func (m *cardListModel) scrollToCursor(totalLines int) {
	if m.cursor >= len(m.offsets) {
		return
	}
	top := m.offsets[m.cursor]

	bottom := totalLines
	if m.cursor+1 < len(m.offsets) {
		bottom = m.offsets[m.cursor+1]
	}

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		// Show as much of the card as fits, keeping its header visible.
		offset := min(bottom-m.viewport.Height, top)
		m.viewport.SetYOffset(max(offset, 0))
	}
}

// renderCard renders one tool card. Collapsed cards show the name, the
// required-parameter chips, and a one-line description. Expanded cards
// add the full description and the pretty-printed input schema.
func (m cardListModel) renderCard(e listEntry, selected bool) string {
	expanded := m.viewState.Expanded(e.key)
	view := cards.Present(e.rec, expanded)

	marker := blankMarker
	nameStyle := cardNameStyle
	if selected {
		marker = cursorStyle.Render(cursorMarker)
		nameStyle = selectedNameStyle
	}

	var sb strings.Builder
	sb.WriteString(marker)
	sb.WriteString(nameStyle.Render(view.Header.Name))
	for _, chip := range view.Header.Chips {
		sb.WriteString(" ")
		sb.WriteString(chipStyle.Render(fmt.Sprintf("[%s:%s]", chip.Name, chip.Type)))
	}

	if view.Body == nil {
		if e.rec.Description != "" {
			sb.WriteString("\n")
			sb.WriteString(blankMarker)
			sb.WriteString(descStyle.Render(truncate(e.rec.Description, max(m.width-4, 10))))
		}
		return sb.String()
	}

	if view.Body.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(bodyStyle.Render(renderMarkdown(view.Body.Description)))
	}
	sb.WriteString("\n")
	sb.WriteString(schemaStyle.Render(view.Body.Schema))

	return sb.String()
}
