package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/savetree/internal/session"
	"github.com/joshuapare/savetree/pkg/filetree"
	"github.com/joshuapare/savetree/pkg/pathkey"
)

var (
	treeBackup     string
	treeDuplicates string
	treeToggles    string
	treeAll        bool
	treeStrict     bool
	treeToggle     []string
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().StringVar(&treeBackup, "backup", "", "JSON file listing failed files and registry keys")
	cmd.Flags().StringVar(&treeDuplicates, "duplicates", "", "JSON file listing duplicated files and registry keys")
	cmd.Flags().StringVar(&treeToggles, "toggles", cfg.TogglesPath, "YAML config with ignore toggles (SAVETREE_TOGGLES)")
	cmd.Flags().BoolVar(&treeAll, "all", false, "Show children of collapsed nodes")
	cmd.Flags().BoolVar(&treeStrict, "strict", false, "Reject scans with empty paths instead of skipping them")
	cmd.Flags().StringArrayVar(&treeToggle, "toggle", nil, "Toggle expansion at a path before printing (repeatable)")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <scan.json>",
		Short: "Display a scan result as a tree",
		Long: `The tree command builds the file tree for a scan result and prints the
rows a browser would show: single-child directory chains are merged into one
row, directories with 30 or more entries start collapsed, and leaves carry
badges for new, changed, duplicated, failed and redirected entries.

Example:
  savetree tree scan.json
  savetree tree scan.json --backup backup.json --toggles config.yaml
  savetree tree scan.json --toggle "C:/Games/Studio/save" --all
  savetree tree scan.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	scanPath := args[0]
	printVerbose("Loading scan: %s\n", scanPath)

	s, err := session.Load(session.Options{
		ScanPath:       scanPath,
		BackupPath:     treeBackup,
		DuplicatesPath: treeDuplicates,
		TogglesPath:    treeToggles,
		Strict:         treeStrict,
	})
	if err != nil {
		return fmt.Errorf("failed to load scan: %w", err)
	}

	// Unknown addresses would be created as empty leaves, so they are
	// reported instead of toggled.
	for _, p := range treeToggle {
		addr, err := toggleAddress(p)
		if err != nil || s.Tree.Find(addr) == nil {
			printError("no node at %s\n", p)
			continue
		}
		s.Tree.ToggleExpand(addr)
	}

	rows := s.Tree.Rows(filetree.RowOptions{IncludeCollapsed: treeAll})

	if jsonOut {
		return printJSON(struct {
			Game      string              `json:"game"`
			Restoring bool                `json:"restoring"`
			Stats     filetree.BuildStats `json:"stats"`
			Rows      []filetree.Row      `json:"rows"`
		}{s.Info.GameName, s.Info.Restoring, s.Stats, rows})
	}

	printInfo("%s\n", s.Info.GameName)
	if !quiet {
		writeRows(os.Stdout, rows)
	}
	if s.Stats.Skipped > 0 {
		printInfo("(%d entries skipped: empty path)\n", s.Stats.Skipped)
	}
	printVerbose("files: %d, registry keys: %d\n", s.Stats.Files, s.Stats.RegistryKeys)
	return nil
}

// toggleAddress parses a --toggle value. Values containing a backslash
// are registry keys; anything else is a file path, rooted when it starts
// with "/".
func toggleAddress(p string) (filetree.Address, error) {
	if strings.Contains(p, pathkey.RegistrySeparator) {
		key, err := pathkey.FromRegistryPath(p)
		if err != nil {
			return filetree.Address{}, err
		}
		return filetree.Address{Kind: filetree.KindRegistry, Keys: key.Segments}, nil
	}
	key, err := pathkey.FromDisplayPath(p, pathkey.FileSeparator)
	if err != nil {
		return filetree.Address{}, err
	}
	return filetree.Address{Kind: filetree.KindFile, Rooted: key.Rooted, Keys: key.Segments}, nil
}

func writeRows(w io.Writer, rows []filetree.Row) {
	for _, r := range rows {
		fmt.Fprintln(w, formatRow(r))
	}
}

func formatRow(r filetree.Row) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", r.Level))

	switch {
	case r.Leaf:
		b.WriteString("- ")
	case r.Expanded:
		b.WriteString("v ")
	default:
		b.WriteString("> ")
	}

	if r.Checkbox {
		if r.Ignored {
			b.WriteString("[ ] ")
		} else {
			b.WriteString("[x] ")
		}
	}

	b.WriteString(r.Label)

	for _, badge := range r.Badges {
		b.WriteString(" [")
		b.WriteString(badgeText(badge))
		b.WriteString("]")
	}
	return b.String()
}

func badgeText(b filetree.Badge) string {
	switch b.Kind {
	case filetree.BadgeRedirectedFrom:
		return "redirected from " + b.Detail
	case filetree.BadgeRedirectingTo:
		return "redirecting to " + b.Detail
	default:
		return b.Kind.String()
	}
}
