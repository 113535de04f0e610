package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/savetree/pkg/scan"
)

func testInfo() scan.ScanInfo {
	return scan.ScanInfo{
		GameName: "Game",
		FoundFiles: []scan.ScannedFile{
			{Path: "save/a.dat", Change: scan.ChangeNew},
			{Path: "save/b.dat", Change: scan.ChangeUnchanged},
		},
		FoundRegistryKeys: []scan.ScannedRegistry{
			{Path: `HKCU\Software\Game\Opt`},
		},
	}
}

// Rows are: HKEY_CURRENT_USER\Software\Game, Opt, save, a.dat, b.dat

func TestInitialRows(t *testing.T) {
	helper := NewTestHelper(testInfo())

	model := helper.GetModel()
	if len(model.rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(model.rows))
	}
	if got := helper.CurrentLabel(); got != `HKEY_CURRENT_USER\Software\Game` {
		t.Errorf("cursor should start on the first row, got %q", got)
	}
}

func TestCursorMovement(t *testing.T) {
	helper := NewTestHelper(testInfo())

	helper.SendKey(tea.KeyUp)
	if helper.GetModel().cursor != 0 {
		t.Error("cursor should not move above the first row")
	}

	helper.SendKey(tea.KeyDown).SendKeyRune('j')
	if got := helper.CurrentLabel(); got != "save" {
		t.Errorf("expected cursor on save, got %q", got)
	}

	helper.SendKey(tea.KeyEnd)
	if got := helper.CurrentLabel(); got != "b.dat" {
		t.Errorf("expected cursor on last row, got %q", got)
	}
	helper.SendKey(tea.KeyDown)
	if got := helper.CurrentLabel(); got != "b.dat" {
		t.Errorf("cursor should not move past the last row, got %q", got)
	}

	helper.SendKeyRune('g')
	if helper.GetModel().cursor != 0 {
		t.Error("expected cursor on first row after home")
	}
}

func TestToggleExpand(t *testing.T) {
	helper := NewTestHelper(testInfo())
	helper.SendKey(tea.KeyDown).SendKey(tea.KeyDown)

	t.Log("Pressing enter to collapse save")
	helper.SendKey(tea.KeyEnter)
	model := helper.GetModel()
	if len(model.rows) != 3 {
		t.Fatalf("expected 3 rows after collapse, got %d", len(model.rows))
	}
	if got := helper.CurrentLabel(); got != "save" {
		t.Errorf("cursor should stay on save, got %q", got)
	}
	if model.session.Tree.Find(fileAddr("save")).Expanded {
		t.Error("save should be collapsed")
	}

	t.Log("Pressing space to expand save again")
	helper.model = helper.update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if len(helper.GetModel().rows) != 5 {
		t.Errorf("expected 5 rows after expand, got %d", len(helper.GetModel().rows))
	}
}

func TestToggleOnLeafDoesNothing(t *testing.T) {
	helper := NewTestHelper(testInfo())
	helper.SendKey(tea.KeyDown)

	helper.SendKey(tea.KeyEnter)
	if len(helper.GetModel().rows) != 5 {
		t.Error("enter on a leaf should not change the rows")
	}
}

func TestLeftRight(t *testing.T) {
	helper := NewTestHelper(testInfo())
	helper.SendKey(tea.KeyEnd)

	t.Log("Left on a leaf goes to its parent row")
	helper.SendKey(tea.KeyLeft)
	if got := helper.CurrentLabel(); got != "save" {
		t.Fatalf("expected cursor on save, got %q", got)
	}

	t.Log("Left on an expanded row collapses it")
	helper.SendKeyRune('h')
	if helper.GetModel().session.Tree.Find(fileAddr("save")).Expanded {
		t.Error("save should be collapsed")
	}

	t.Log("Left on a collapsed root stays put")
	helper.SendKeyRune('h')
	if got := helper.CurrentLabel(); got != "save" {
		t.Errorf("expected cursor on save, got %q", got)
	}

	t.Log("Right expands")
	helper.SendKey(tea.KeyRight)
	if !helper.GetModel().session.Tree.Find(fileAddr("save")).Expanded {
		t.Error("save should be expanded")
	}

	t.Log("Right on an expanded row does nothing")
	helper.SendKeyRune('l')
	if !helper.GetModel().session.Tree.Find(fileAddr("save")).Expanded {
		t.Error("save should stay expanded")
	}
}

func TestToggleIgnored(t *testing.T) {
	helper := NewTestHelper(testInfo())
	helper.SendKey(tea.KeyEnd).SendKey(tea.KeyUp)
	if got := helper.CurrentLabel(); got != "a.dat" {
		t.Fatalf("expected cursor on a.dat, got %q", got)
	}

	helper.SendKeyRune('x')
	model := helper.GetModel()
	if !model.session.Tree.Find(fileAddr("save", "a.dat")).Ignored {
		t.Error("a.dat should be ignored")
	}
	if model.session.Tree.Find(fileAddr("save", "b.dat")).Ignored {
		t.Error("b.dat should not be ignored")
	}
	if row, _ := model.current(); !row.Ignored {
		t.Error("row should be refreshed as ignored")
	}
	if !strings.Contains(model.status, "ignored save/a.dat") {
		t.Errorf("unexpected status %q", model.status)
	}

	helper.SendKeyRune('x')
	model = helper.GetModel()
	if model.session.Tree.Find(fileAddr("save", "a.dat")).Ignored {
		t.Error("a.dat should be enabled again")
	}
	if model.session.Toggles.IsPathIgnored("Game", "save/a.dat") {
		t.Error("toggles should no longer ignore a.dat")
	}
}

func TestToggleIgnoredRegistry(t *testing.T) {
	helper := NewTestHelper(testInfo())

	helper.SendKeyRune('x')
	model := helper.GetModel()
	if !model.session.Tree.Find(regAddr("HKEY_CURRENT_USER", "Software", "Game", "Opt")).Ignored {
		t.Error("Opt should inherit the ignored key")
	}
	if !model.session.Toggles.IsRegistryIgnored("Game", `HKCU\Software\Game\Opt`) {
		t.Error("toggles should report the registry key as ignored")
	}
}

func TestToggleIgnoredWithoutCheckbox(t *testing.T) {
	helper := NewTestHelper(testInfo())
	helper.SendKey(tea.KeyDown).SendKey(tea.KeyDown)

	helper.SendKeyRune('x')
	model := helper.GetModel()
	if model.status != "nothing to toggle here" {
		t.Errorf("unexpected status %q", model.status)
	}
	if len(model.session.Toggles.Paths) != 0 {
		t.Error("toggles should be untouched")
	}
}

func TestToggleIgnoredWhileRestoring(t *testing.T) {
	info := testInfo()
	info.Restoring = true
	helper := NewTestHelper(info)
	helper.SendKey(tea.KeyEnd)

	helper.SendKeyRune('x')
	if helper.GetModel().session.Tree.Find(fileAddr("save", "b.dat")).Ignored {
		t.Error("restores offer no ignore toggles")
	}
	if !strings.Contains(helper.GetView(), "(restore)") {
		t.Error("view should show restore mode")
	}
}

func TestHelpToggle(t *testing.T) {
	helper := NewTestHelper(testInfo())

	helper.SendKeyRune('?')
	if !helper.GetModel().showHelp {
		t.Fatal("help should be shown after pressing '?'")
	}
	helper.SendKeyRune('?')
	if helper.GetModel().showHelp {
		t.Error("help should be hidden after pressing '?' again")
	}
}

func TestQuit(t *testing.T) {
	helper := NewTestHelper(testInfo())

	_, cmd := helper.GetModel().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestView(t *testing.T) {
	helper := NewTestHelper(testInfo())
	helper.SendWindowSize(120, 40)

	view := helper.GetView()
	for _, want := range []string{"Game", "(backup)", `HKEY_CURRENT_USER\Software\Game`, "a.dat", "new", "2 files, 1 registry keys", "row 1/5"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q\nGot: %s", want, view)
		}
	}
}

func TestViewScrolls(t *testing.T) {
	helper := NewTestHelper(testInfo())
	helper.SendWindowSize(80, chromeHeight+2)

	helper.SendKey(tea.KeyEnd)
	model := helper.GetModel()
	if model.offset != 3 {
		t.Errorf("expected offset 3, got %d", model.offset)
	}
	view := helper.GetView()
	if strings.Contains(view, "HKEY_CURRENT_USER") {
		t.Error("first row should be scrolled out of view")
	}
	if !strings.Contains(view, "b.dat") {
		t.Error("last row should be visible")
	}
}

func TestEmptyScan(t *testing.T) {
	helper := NewTestHelper(scan.ScanInfo{GameName: "Empty"})
	helper.SendKey(tea.KeyDown).SendKeyRune('x').SendKey(tea.KeyEnter)

	if !strings.Contains(helper.GetView(), "nothing to show") {
		t.Error("empty view should say so")
	}
}
