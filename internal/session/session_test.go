package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/savetree/pkg/filetree"
	"github.com/joshuapare/savetree/pkg/scan"
)

const scanJSON = `{
  "gameName": "Game",
  "foundFiles": [
    {"path": "save/profile1.dat", "change": "new"},
    {"path": "save/profile2.dat", "change": "new"},
    {"path": ""}
  ],
  "foundRegistryKeys": [
    {"path": "HKCU\\Software\\Game\\Settings", "change": "same"}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func fileAddr(keys ...string) filetree.Address {
	return filetree.Address{Kind: filetree.KindFile, Keys: keys}
}

func regAddr(keys ...string) filetree.Address {
	return filetree.Address{Kind: filetree.KindRegistry, Keys: keys}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		ScanPath:       writeFile(t, dir, "scan.json", scanJSON),
		BackupPath:     writeFile(t, dir, "backup.json", `{"failedFiles": ["save/profile1.dat"]}`),
		DuplicatesPath: writeFile(t, dir, "dupes.json", `{"registry": ["HKCU\\Software\\Game\\Settings"]}`),
		TogglesPath: writeFile(t, dir, "config.yaml", `backup:
  toggledPaths:
    Game:
      save/profile2.dat: false
`),
	}

	s, err := Load(opts)
	require.NoError(t, err)
	require.Equal(t, filetree.BuildStats{Files: 2, RegistryKeys: 1, Skipped: 1}, s.Stats)

	require.False(t, s.Tree.Find(fileAddr("save", "profile1.dat")).Succeeded)
	require.True(t, s.Tree.Find(fileAddr("save", "profile2.dat")).Ignored)
	require.True(t, s.Tree.Find(regAddr("HKEY_CURRENT_USER", "Software", "Game", "Settings")).Duplicated)
}

func TestLoadStrictRejectsEmptyPaths(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(Options{ScanPath: writeFile(t, dir, "scan.json", scanJSON), Strict: true})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid scan")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	scanPath := writeFile(t, dir, "scan.json", scanJSON)

	_, err := Load(Options{ScanPath: filepath.Join(dir, "missing.json")})
	require.Error(t, err)

	_, err = Load(Options{ScanPath: scanPath, BackupPath: writeFile(t, dir, "bad.json", "{")})
	require.Error(t, err)

	_, err = Load(Options{ScanPath: scanPath, DuplicatesPath: filepath.Join(dir, "missing.json")})
	require.Error(t, err)
}

func TestSetEnabled(t *testing.T) {
	info := scan.ScanInfo{
		GameName:   "Game",
		FoundFiles: []scan.ScannedFile{{Path: "save/a"}, {Path: "save/b"}},
		FoundRegistryKeys: []scan.ScannedRegistry{
			{Path: `HKCU\Software\Game\A`},
			{Path: `HKCU\Software\Game\B`},
		},
	}
	s := New(info, nil, nil, nil)

	rows := s.Tree.Rows(filetree.RowOptions{})
	var fileRow, regRow, rootRow filetree.Row
	for _, r := range rows {
		switch r.Label {
		case "a":
			if r.Kind == filetree.KindFile {
				fileRow = r
			}
		case "B":
			regRow = r
		case "save":
			rootRow = r
		}
	}

	require.True(t, s.SetEnabled(fileRow, false))
	require.True(t, s.Tree.Find(fileAddr("save", "a")).Ignored)
	require.False(t, s.Tree.Find(fileAddr("save", "b")).Ignored)

	require.True(t, s.SetEnabled(regRow, false))
	require.True(t, s.Tree.Find(regAddr("HKEY_CURRENT_USER", "Software", "Game", "B")).Ignored)
	require.True(t, s.Toggles.IsRegistryIgnored("Game", `HKCU\Software\Game\B`))

	require.False(t, s.SetEnabled(rootRow, false), "roots have no checkbox")

	require.True(t, s.SetEnabled(fileRow, true))
	require.False(t, s.Tree.Find(fileAddr("save", "a")).Ignored)
}

func TestSetEnabledIgnoredWhileRestoring(t *testing.T) {
	s := New(scan.ScanInfo{GameName: "Game", Restoring: true, FoundFiles: []scan.ScannedFile{{Path: "save/a"}}}, nil, nil, nil)
	row := s.Tree.Rows(filetree.RowOptions{})[1]
	require.False(t, s.SetEnabled(row, false))
	require.Empty(t, s.Toggles.Paths)
}

func TestToggleExpandAndRebuild(t *testing.T) {
	s := New(scan.ScanInfo{GameName: "Game", FoundFiles: []scan.ScannedFile{{Path: "save/a"}}}, nil, nil, nil)
	row := s.Tree.Rows(filetree.RowOptions{})[0]
	require.True(t, row.Expanded)

	s.ToggleExpand(row)
	require.False(t, s.Tree.Find(row.Address()).Expanded)

	s.Rebuild()
	require.True(t, s.Tree.Find(row.Address()).Expanded, "manual toggles do not survive a rebuild")
}
