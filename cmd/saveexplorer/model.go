package main

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/savetree/internal/logger"
	"github.com/joshuapare/savetree/internal/session"
	"github.com/joshuapare/savetree/pkg/filetree"
)

// chromeHeight is the number of lines taken by the header and status bar.
const chromeHeight = 5

// Model is the explorer's bubbletea model. It keeps the flattened rows of
// the session's tree and a cursor into them.
type Model struct {
	session *session.Session
	rows    []filetree.Row

	cursor int
	offset int
	width  int
	height int

	keys     KeyMap
	help     help.Model
	showHelp bool
	status   string
}

// NewModel creates the explorer model for a loaded session
func NewModel(s *session.Session) Model {
	m := Model{
		session: s,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		logger.Info("saveexplorer quitting")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageSize())
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.rows))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.rows))

	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.current(); ok && !row.Leaf {
			m.session.ToggleExpand(row)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Right):
		if row, ok := m.current(); ok && !row.Leaf && !row.Expanded {
			m.session.ToggleExpand(row)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Left):
		m.collapseOrParent()

	case key.Matches(msg, m.keys.Ignore):
		m.toggleIgnored()
	}
	return m, nil
}

// current returns the row under the cursor
func (m *Model) current() (filetree.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return filetree.Row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.rows)-1, m.cursor+delta))
	m.scrollToCursor()
}

// collapseOrParent collapses an expanded row, otherwise moves to the
// row's parent.
func (m *Model) collapseOrParent() {
	row, ok := m.current()
	if !ok {
		return
	}
	if !row.Leaf && row.Expanded {
		m.session.ToggleExpand(row)
		m.refresh()
		return
	}
	for i := m.cursor - 1; i >= 0; i-- {
		if m.rows[i].Level < row.Level {
			m.cursor = i
			m.scrollToCursor()
			return
		}
	}
}

func (m *Model) toggleIgnored() {
	row, ok := m.current()
	if !ok {
		return
	}
	if !row.Checkbox {
		m.status = "nothing to toggle here"
		return
	}
	// Enable an ignored row, ignore an enabled one.
	if m.session.SetEnabled(row, row.Ignored) {
		if row.Ignored {
			m.status = fmt.Sprintf("enabled %s", row.Path)
		} else {
			m.status = fmt.Sprintf("ignored %s", row.Path)
		}
		m.refresh()
	}
}

// refresh re-flattens the tree and keeps the cursor on the same node when
// it is still visible.
func (m *Model) refresh() {
	prev, hadRow := m.current()

	m.rows = m.session.Tree.Rows(filetree.RowOptions{})

	if hadRow {
		for i, r := range m.rows {
			if sameNode(r, prev) {
				m.cursor = i
				m.scrollToCursor()
				return
			}
		}
	}
	m.cursor = max(0, min(m.cursor, len(m.rows)-1))
	m.scrollToCursor()
}

func sameNode(a, b filetree.Row) bool {
	return a.Kind == b.Kind && a.Rooted == b.Rooted && slices.Equal(a.Keys, b.Keys)
}

// pageSize is the number of rows that fit on screen. Before the first
// WindowSizeMsg every row is shown.
func (m *Model) pageSize() int {
	if m.height == 0 {
		return max(1, len(m.rows))
	}
	return max(1, m.height-chromeHeight)
}

func (m *Model) scrollToCursor() {
	size := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+size {
		m.offset = m.cursor - size + 1
	}
	m.offset = max(0, min(m.offset, len(m.rows)-1))
}
