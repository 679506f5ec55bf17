package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/retromenu/internal/driver"
	"github.com/atomicstack/retromenu/internal/entries"
	"github.com/atomicstack/retromenu/internal/menu"
)

const defaultVisibleRows = 16

// Model implements the Bubble Tea model that feeds input into the menu
// facade and renders the backend's list state.
type Model struct {
	menu    *menu.Menu
	backend *Backend

	scrollSpeed int
	verbose     bool

	width  int
	height int
	offset int
	errMsg string

	searching bool
	search    textinput.Model

	gauge *repeatGauge
	now   func() time.Time

	styles *Styles
}

// NewModel initialises the model around an initialised menu and backend.
func NewModel(m *menu.Menu, backend *Backend, scrollSpeed int, verbose bool) *Model {
	styles := DefaultStyles()
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"
	search.CharLimit = 64
	search.PromptStyle = *styles.SearchPrompt
	search.TextStyle = *styles.Search
	return &Model{
		menu:        m,
		backend:     backend,
		scrollSpeed: scrollSpeed,
		verbose:     verbose,
		search:      search,
		gauge:       newRepeatGauge(0),
		now:         time.Now,
		styles:      styles,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.menu.Toggle(true)
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncViewport()
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateNavigation(msg)
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Reset()
		return m, nil
	case "enter":
		query := m.search.Value()
		m.searching = false
		m.search.Reset()
		if idx := entries.BestMatchIndex(m.menu.Entries().Entries(), query); idx >= 0 {
			m.menu.SetSelection(idx)
			m.menu.NavigationSet(true)
			m.syncViewport()
		} else if query != "" {
			m.errMsg = fmt.Sprintf("no entry matches %q", query)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := driver.ActionNoop
	key := msg.String()
	switch key {
	case "up", "k":
		m.moveCursor(key, false)
		action = driver.ActionUp
	case "down", "j":
		m.moveCursor(key, true)
		action = driver.ActionDown
	case "pgup":
		m.menu.Decrement(m.pageSize())
		action = driver.ActionScrollUp
	case "pgdown":
		m.menu.Increment(m.pageSize())
		action = driver.ActionScrollDown
	case "home":
		m.menu.Clear(false)
	case "end":
		m.menu.SetLast()
	case "left", "h":
		m.menu.DescendAlphabet()
		action = driver.ActionLeft
	case "right", "l":
		m.menu.AscendAlphabet()
		action = driver.ActionRight
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "enter":
		m.menu.RecordHistory()
		action = driver.ActionOK
	case "tab":
		m.menu.SetPendingQuickMenu()
	case "q", "esc", "ctrl+c":
		m.menu.SetPendingQuit()
		action = driver.ActionQuit
	}
	m.syncViewport()
	if !m.menu.Iterate(action) {
		m.menu.Toggle(false)
		return m, tea.Quit
	}
	return m, nil
}

// moveCursor applies one held-aware cursor step in the given direction.
func (m *Model) moveCursor(key string, forward bool) {
	runs := m.gauge.bump(key, m.now())
	m.menu.SetScrollAcceleration(runs)
	step := stepFor(m.scrollSpeed, runs, m.pageSize())
	if forward {
		m.menu.Increment(step)
	} else {
		m.menu.Decrement(step)
	}
}

func (m *Model) pageSize() int {
	visible := m.visibleRows()
	if visible < 1 {
		return 1
	}
	return visible
}

func (m *Model) visibleRows() int {
	// Header, footer, and status each take a line.
	rows := m.height - 3
	if rows < 1 {
		rows = defaultVisibleRows
	}
	total := m.menu.Entries().Size()
	if total > 0 && rows > total {
		rows = total
	}
	return rows
}

// syncViewport keeps the selection visible inside the scrolled window.
func (m *Model) syncViewport() {
	total := m.menu.Entries().Size()
	if total == 0 {
		m.offset = 0
		return
	}
	visible := m.visibleRows()
	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
	cursor := m.menu.Selection()
	if cursor < m.offset {
		m.offset = cursor
	}
	if upper := m.offset + visible - 1; cursor > upper {
		m.offset = cursor - visible + 1
		if m.offset > maxOffset {
			m.offset = maxOffset
		}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	title := m.menu.Ident()
	if title == "" {
		title = "retromenu"
	}
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("\n")

	if handle := m.backend.Handle(); handle != nil && handle.messageBox != "" {
		b.WriteString(m.styles.MessageBox.Render(handle.messageBox))
		b.WriteString("\n")
	}

	rows := m.menu.Entries().Entries()
	cursor := m.menu.Selection()
	offset := m.offset
	if m.searching {
		if query := m.search.Value(); query != "" {
			// Live preview while typing; the cursor only moves on enter.
			rows = entries.FilterEntries(rows, query)
			cursor = -1
			offset = 0
		}
	}
	visible := m.visibleRows()
	end := offset + visible
	if end > len(rows) {
		end = len(rows)
	}
	for i := offset; i < end; i++ {
		if i == cursor {
			b.WriteString(m.styles.SelectedItemIndicator.Render("> "))
			b.WriteString(m.styles.SelectedItem.Render(rows[i].Label))
		} else {
			b.WriteString(m.styles.ItemIndicator.Render("  "))
			b.WriteString(m.styles.Item.Render(rows[i].Label))
		}
		b.WriteString("\n")
	}

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render(m.footer()))
	return b.String()
}

func (m *Model) footer() string {
	total := m.menu.Entries().Size()
	position := 0
	if total > 0 {
		position = m.menu.Selection() + 1
	}
	hints := "↑/↓ move · ←/→ jump · / search · q quit"
	if m.verbose {
		if handle := m.backend.Handle(); handle != nil && handle.populatedLabel != "" {
			hints = handle.populatedLabel + " · " + hints
		}
	}
	return fmt.Sprintf("%d/%d  %s", position, total, hints)
}
