package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/toolscope/toolscope/pkg/cards"
	"github.com/toolscope/toolscope/pkg/catalog"
	"github.com/toolscope/toolscope/pkg/search"
	"github.com/toolscope/toolscope/pkg/source"
)

// appState represents the application state machine.
type appState int

const (
	stateLoading appState = iota
	stateReady
	stateFailed
)

// appModel is the root bubbletea model.
type appModel struct {
	ctx    context.Context
	src    source.Source
	logger *log.Logger
	watch  bool

	state   appState
	loading bool   // a load is in flight (also true while showing stale records)
	loadGen uint64 // generation counter; only the latest load's result is applied

	records   []catalog.ToolRecord
	viewState *cards.ViewState
	list      cardListModel
	searchBar searchBarModel

	loadErr      error
	loadDuration time.Duration
	spinnerIdx   int

	cancelBridge context.CancelFunc
	width        int
	height       int
}

func newAppModel(ctx context.Context, src source.Source, logger *log.Logger, watch bool) appModel {
	vs := cards.NewViewState()
	return appModel{
		ctx:       ctx,
		src:       src,
		logger:    logger,
		watch:     watch,
		state:     stateLoading,
		viewState: vs,
		list:      newCardList(vs),
		searchBar: newSearchBar(),
	}
}

func (m appModel) Init() tea.Cmd {
	// Delay focusing the input so that stale terminal escape-sequence
	// responses (e.g. OSC 11 background-color) are drained first.
	drain := tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return initDrainMsg{}
	})

	// The first load goes through Update so the generation counter
	// lives on the model bubbletea keeps, not on a discarded copy.
	kick := func() tea.Msg { return catalogChangedMsg{} }

	return tea.Batch(drain, kick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case initDrainMsg:
		cmd := m.searchBar.enable()
		return m, cmd

	case programReadyMsg:
		if w, ok := m.src.(source.Watchable); ok && m.watch {
			m.cancelBridge = startWatchBridge(m.ctx, msg.program, w.Path(), m.logger)
		}
		return m, nil

	case catalogLoadedMsg:
		if msg.generation != m.loadGen {
			return m, nil // a newer load superseded this one
		}
		m.logger.Info("catalog loaded", "tools", len(msg.records), "took", msg.duration)
		m.loading = false
		m.state = stateReady
		m.loadErr = nil
		m.loadDuration = msg.duration
		m.records = msg.records
		m.viewState.Reset()
		m.searchBar.clear()
		m.refreshVisible()
		return m, nil

	case loadFailedMsg:
		if msg.generation != m.loadGen {
			return m, nil
		}
		m.logger.Error("catalog load failed", "err", msg.err)
		m.loading = false
		m.loadErr = msg.err
		// Keep showing the previous catalog if we have one.
		if len(m.records) == 0 {
			m.state = stateFailed
		}
		return m, nil

	case catalogChangedMsg:
		m.logger.Debug("catalog changed on disk")
		cmd := m.startLoad()
		return m, cmd

	case tickMsg:
		if m.loading {
			m.spinnerIdx++
			return m, tickCmd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.searchBar.View(),
		m.renderMain(),
		m.renderStatus(),
	)
}

func (m appModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	initMarkdownRenderer(m.width - 8)
	m.searchBar.setWidth(m.width)
	m.recalcLayout()

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.cancelBridge != nil {
			m.cancelBridge()
		}
		return m, tea.Quit

	case tea.KeyCtrlR:
		cmd := m.startLoad()
		return m, cmd

	case tea.KeyEsc:
		m.searchBar.clear()
		m.refreshVisible()
		return m, nil

	case tea.KeyUp:
		m.list.moveCursor(-1)
		return m, nil

	case tea.KeyDown:
		m.list.moveCursor(1)
		return m, nil

	case tea.KeyPgUp:
		m.list.moveCursor(-5)
		return m, nil

	case tea.KeyPgDown:
		m.list.moveCursor(5)
		return m, nil

	case tea.KeyEnter:
		if key, ok := m.list.cursorKey(); ok {
			m.viewState.Toggle(key)
			m.list.refresh()
		}
		return m, nil
	}

	// Everything else edits the search query.
	before := m.searchBar.value()
	var cmd tea.Cmd
	m.searchBar, cmd = m.searchBar.Update(msg)
	if m.searchBar.value() != before {
		m.refreshVisible()
	}
	return m, cmd
}

// startLoad kicks off an asynchronous catalog load. Each call bumps the
// generation so that out-of-order completions never clobber a newer
// load's result.
func (m *appModel) startLoad() tea.Cmd {
	m.loadGen++
	m.loading = true

	gen := m.loadGen
	src := m.src
	ctx := m.ctx

	load := func() tea.Msg {
		start := time.Now()

		data, err := src.Fetch(ctx)
		if err != nil {
			return loadFailedMsg{generation: gen, err: err}
		}

		var store catalog.Store
		if err := store.Load(data); err != nil {
			return loadFailedMsg{generation: gen, err: err}
		}

		return catalogLoadedMsg{
			generation: gen,
			records:    store.All(),
			duration:   time.Since(start),
		}
	}

	return tea.Batch(load, tickCmd())
}

// refreshVisible recomputes the filtered entries from the current query.
// Keys carry the record's position in the full catalog so expansion
// state is stable across filter changes.
func (m *appModel) refreshVisible() {
	m.viewState.Query = m.searchBar.value()

	entries := make([]listEntry, 0, len(m.records))
	for i, rec := range m.records {
		if !search.Match(rec, m.viewState.Query) {
			continue
		}
		entries = append(entries, listEntry{
			rec: rec,
			key: cards.Key{Name: rec.Name, Index: i},
		})
	}

	m.list.setEntries(entries)
}

func (m appModel) renderHeader() string {
	title := titleStyle.Render(" toolscope ")
	ref := sourceStyle.Render(truncate(m.src.Ref(), max(m.width-20, 10)))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", ref)
}

func (m appModel) renderMain() string {
	if m.state == stateFailed {
		return errorBlockStyle.Render("error: " + m.loadErr.Error())
	}
	if m.state == stateLoading {
		frame := spinnerFrames[m.spinnerIdx%len(spinnerFrames)]
		return fmt.Sprintf("  %s %s",
			spinnerStyle.Render(frame),
			spinnerStyle.Render("Loading catalog..."),
		)
	}
	return m.list.View()
}

func (m appModel) renderStatus() string {
	var line string
	switch {
	case m.loading && m.state == stateReady:
		frame := spinnerFrames[m.spinnerIdx%len(spinnerFrames)]
		line = fmt.Sprintf(" %s reloading...", frame)
	case m.loadErr != nil && m.state == stateReady:
		line = fmt.Sprintf(" reload failed: %s (showing previous catalog)", truncate(m.loadErr.Error(), max(m.width-40, 10)))
	case m.state == stateReady:
		line = fmt.Sprintf(" %d of %d tools · loaded in %s · enter expand · ctrl+r reload · ctrl+c quit",
			len(m.list.entries), len(m.records), fmtDuration(m.loadDuration))
	default:
		line = " ctrl+c quit"
	}
	return statusStyle.Render(line)
}

// recalcLayout gives the card list whatever vertical space the chrome
// leaves over: header (1) + search box (3) + status line (1).
func (m *appModel) recalcLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	searchHeight := lipgloss.Height(m.searchBar.View())
	listHeight := max(m.height-searchHeight-2, 1)
	m.list.setSize(m.width, listHeight)
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
