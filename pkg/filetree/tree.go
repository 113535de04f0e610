package filetree

import (
	"cmp"
	"slices"

	"github.com/joshuapare/savetree/internal/logger"
	"github.com/joshuapare/savetree/pkg/pathkey"
	"github.com/joshuapare/savetree/pkg/scan"
)

// Tree is the root of a file tree: one subtree per top-level segment,
// kind and rootedness. "/home/a" and "home/a" live in separate subtrees,
// as do a file and a registry key that share a first segment.
// A Tree is not safe for concurrent mutation. Rebuild it with Build on
// every scan and swap the old value out once the new one is complete.
type Tree struct {
	GameName  string
	Restoring bool

	roots map[rootID]*Node
	order []rootID
}

// rootID identifies a top-level subtree.
type rootID struct {
	head   string
	kind   Kind
	rooted bool
}

func compareRootIDs(a, b rootID) int {
	if c := cmp.Compare(a.head, b.head); c != 0 {
		return c
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	switch {
	case a.rooted == b.rooted:
		return 0
	case a.rooted:
		return 1
	default:
		return -1
	}
}

// Address locates a node: the subtree it belongs to and its segments from
// the top-level node down.
type Address struct {
	Kind   Kind
	Rooted bool
	Keys   []string
}

// Address returns the address that resolves to n.
func (n *Node) Address() Address {
	return Address{Kind: n.Kind, Rooted: n.Keys.Rooted, Keys: slices.Clone(n.Keys.Segments)}
}

// BuildStats summarizes a Build.
type BuildStats struct {
	Files        int `json:"files"`        // file entries inserted
	RegistryKeys int `json:"registryKeys"` // registry entries inserted
	Skipped      int `json:"skipped"`      // entries dropped because their path had no segments
}

// Build folds a flat scan result into a tree. backup may be nil when no
// backup or restore has run; dupes may be nil when duplicates are not
// tracked. Entries whose path has no segments are skipped and counted in
// the returned stats.
func Build(
	info scan.ScanInfo,
	cfg scan.IgnoreConfig,
	backup *scan.BackupInfo,
	dupes scan.DuplicateDetector,
) (*Tree, BuildStats) {
	if dupes == nil {
		dupes = scan.NoDuplicates{}
	}

	t := &Tree{
		GameName:  info.GameName,
		Restoring: info.Restoring,
	}
	var stats BuildStats

	for i := range info.FoundFiles {
		file := info.FoundFiles[i]
		key, err := pathkey.FromDisplayPath(file.Readable(info.Restoring), pathkey.FileSeparator)
		if err != nil {
			stats.Skipped++
			logger.Debug("skipping file entry", "game", info.GameName, "path", file.Path, "error", err)
			continue
		}

		t.root(key, KindFile).insert(key.Tail(), leaf{
			succeeded:  !backup.FileFailed(file),
			duplicated: dupes.IsFileDuplicated(file.Path),
			change:     file.Change,
			file:       &file,
		})
		stats.Files++
	}

	for _, item := range info.FoundRegistryKeys {
		key, err := pathkey.FromRegistryPath(item.Path)
		if err != nil {
			stats.Skipped++
			logger.Debug("skipping registry entry", "game", info.GameName, "path", item.Path, "error", err)
			continue
		}

		t.root(key, KindRegistry).insert(key.Tail(), leaf{
			succeeded:  !backup.RegistryFailed(item.Path),
			duplicated: dupes.IsRegistryDuplicated(item.Path),
			change:     item.Change,
		})
		stats.RegistryKeys++
	}

	for _, node := range t.roots {
		node.autoExpand()
		node.RecomputeIgnored(info.GameName, cfg)
	}

	logger.Debug("built file tree",
		"game", info.GameName,
		"roots", len(t.order),
		"files", stats.Files,
		"registry", stats.RegistryKeys,
		"skipped", stats.Skipped,
	)

	return t, stats
}

// root returns the top-level node for key's first segment within kind,
// creating it when missing. Rooted and relative keys get separate roots.
func (t *Tree) root(key pathkey.Key, kind Kind) *Node {
	id := rootID{head: key.Head(), kind: kind, rooted: key.Rooted}
	if n := t.roots[id]; n != nil {
		return n
	}
	if t.roots == nil {
		t.roots = make(map[rootID]*Node)
	}
	n := newNode(pathkey.Key{Segments: []string{id.head}, Rooted: id.rooted}, kind)
	t.roots[id] = n
	i, _ := slices.BinarySearchFunc(t.order, id, compareRootIDs)
	t.order = slices.Insert(t.order, i, id)
	return n
}

// lookupRoot returns the top-level node addr starts in, or nil.
func (t *Tree) lookupRoot(addr Address) *Node {
	if len(addr.Keys) == 0 {
		return nil
	}
	return t.roots[rootID{head: addr.Keys[0], kind: addr.Kind, rooted: addr.Rooted}]
}

// Len returns the number of top-level nodes.
func (t *Tree) Len() int { return len(t.order) }

// Roots returns the top-level nodes ordered by first segment, then kind,
// with relative paths before rooted ones.
func (t *Tree) Roots() []*Node {
	out := make([]*Node, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.roots[id])
	}
	return out
}

// Find returns the node at addr, or nil. It never creates nodes.
func (t *Tree) Find(addr Address) *Node {
	root := t.lookupRoot(addr)
	if root == nil {
		return nil
	}
	return root.find(addr.Keys[1:])
}

// ToggleExpand flips the expanded flag at addr. Addresses that match no
// top-level node are ignored.
func (t *Tree) ToggleExpand(addr Address) {
	root := t.lookupRoot(addr)
	if root == nil {
		return
	}
	root.ToggleExpand(addr.Keys[1:])
}

// RecomputeIgnored refreshes every node's Ignored flag from cfg without
// rebuilding. Call it after the ignore configuration changes.
func (t *Tree) RecomputeIgnored(game string, cfg scan.IgnoreConfig) {
	for _, node := range t.roots {
		node.RecomputeIgnored(game, cfg)
	}
}

// AnythingShowable reports whether any top-level subtree has a leaf.
func (t *Tree) AnythingShowable() bool {
	for _, node := range t.roots {
		if node.AnythingShowable() {
			return true
		}
	}
	return false
}

// Walk visits every node depth-first in sorted order. Returning false from
// fn skips the node's children.
func (t *Tree) Walk(fn func(*Node) bool) {
	for _, root := range t.Roots() {
		walk(root, fn)
	}
}

func walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children() {
		walk(child, fn)
	}
}
