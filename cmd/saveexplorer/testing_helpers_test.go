package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/savetree/internal/session"
	"github.com/joshuapare/savetree/pkg/filetree"
	"github.com/joshuapare/savetree/pkg/scan"
)

// TestHelper provides utilities for testing TUI components
type TestHelper struct {
	model Model
}

// NewTestHelper creates a test helper with a model over info
func NewTestHelper(info scan.ScanInfo) *TestHelper {
	return &TestHelper{
		model: NewModel(session.New(info, nil, nil, nil)),
	}
}

// SendKey simulates a key press
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	h.model = h.update(tea.KeyMsg{Type: keyType})
	return h
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	h.model = h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	h.model = h.update(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

func (h *TestHelper) update(msg tea.Msg) Model {
	updated, _ := h.model.Update(msg)
	return updated.(Model)
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// CurrentLabel returns the label of the row under the cursor
func (h *TestHelper) CurrentLabel() string {
	row, ok := h.model.current()
	if !ok {
		return ""
	}
	return row.Label
}

// fileAddr addresses a relative file path
func fileAddr(keys ...string) filetree.Address {
	return filetree.Address{Kind: filetree.KindFile, Keys: keys}
}

// regAddr addresses a registry key
func regAddr(keys ...string) filetree.Address {
	return filetree.Address{Kind: filetree.KindRegistry, Keys: keys}
}
