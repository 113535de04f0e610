package session

import (
	"fmt"

	"github.com/joshuapare/savetree/internal/logger"
	"github.com/joshuapare/savetree/pkg/filetree"
	"github.com/joshuapare/savetree/pkg/scan"
)

// Options names the input files for a session. Only ScanPath is required.
type Options struct {
	ScanPath       string
	BackupPath     string
	DuplicatesPath string
	TogglesPath    string

	// Strict rejects scans with malformed entries instead of skipping them.
	Strict bool
}

// Session owns one game's scan inputs and the tree built from them. The
// front ends hold a Session for their lifetime and route toggle requests
// through it.
type Session struct {
	Info    scan.ScanInfo
	Backup  *scan.BackupInfo
	Dupes   scan.DuplicateDetector
	Toggles *scan.Toggles

	Tree  *filetree.Tree
	Stats filetree.BuildStats
}

// Load reads every input named in opts and builds the tree.
func Load(opts Options) (*Session, error) {
	info, err := scan.LoadScanInfo(opts.ScanPath)
	if err != nil {
		return nil, err
	}
	if opts.Strict {
		if err := info.Validate(); err != nil {
			return nil, fmt.Errorf("invalid scan %s: %w", opts.ScanPath, err)
		}
	}

	s := &Session{Info: info, Dupes: scan.NoDuplicates{}, Toggles: scan.NewToggles()}

	if opts.BackupPath != "" {
		if s.Backup, err = scan.LoadBackupInfo(opts.BackupPath); err != nil {
			return nil, err
		}
	}
	if opts.DuplicatesPath != "" {
		dupes, err := scan.LoadDuplicates(opts.DuplicatesPath)
		if err != nil {
			return nil, err
		}
		s.Dupes = dupes
	}
	if opts.TogglesPath != "" {
		if s.Toggles, err = scan.LoadToggles(opts.TogglesPath); err != nil {
			return nil, err
		}
	}

	s.Rebuild()
	logger.Info("session loaded",
		"game", info.GameName,
		"scan", opts.ScanPath,
		"files", s.Stats.Files,
		"registry", s.Stats.RegistryKeys,
		"skipped", s.Stats.Skipped,
	)
	return s, nil
}

// New wraps already-loaded inputs. Nil toggles or dupes are replaced with
// empty ones.
func New(info scan.ScanInfo, toggles *scan.Toggles, backup *scan.BackupInfo, dupes scan.DuplicateDetector) *Session {
	if toggles == nil {
		toggles = scan.NewToggles()
	}
	if dupes == nil {
		dupes = scan.NoDuplicates{}
	}
	s := &Session{Info: info, Backup: backup, Dupes: dupes, Toggles: toggles}
	s.Rebuild()
	return s
}

// Rebuild replaces the tree with a fresh build. Manual expansion state is
// lost.
func (s *Session) Rebuild() {
	tree, stats := filetree.Build(s.Info, s.Toggles, s.Backup, s.Dupes)
	s.Tree, s.Stats = tree, stats
}

// ToggleExpand flips expansion of the node a row addresses.
func (s *Session) ToggleExpand(row filetree.Row) {
	s.Tree.ToggleExpand(row.Address())
}

// SetEnabled records an enable/disable choice for the row's path and
// refreshes the tree's ignore flags. Rows without a checkbox are left
// alone. It reports whether anything changed.
func (s *Session) SetEnabled(row filetree.Row, enabled bool) bool {
	if row.Path == "" || s.Info.Restoring {
		return false
	}
	switch row.Kind {
	case filetree.KindRegistry:
		s.Toggles.SetRegistryEnabled(s.Info.GameName, row.Path, enabled)
	default:
		s.Toggles.SetPathEnabled(s.Info.GameName, row.Path, enabled)
	}
	s.Tree.RecomputeIgnored(s.Info.GameName, s.Toggles)
	logger.Debug("toggled ignore", "game", s.Info.GameName, "path", row.Path, "enabled", enabled)
	return true
}
