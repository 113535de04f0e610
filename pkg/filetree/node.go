package filetree

import (
	"slices"

	"github.com/joshuapare/savetree/pkg/pathkey"
	"github.com/joshuapare/savetree/pkg/scan"
)

// AutoExpandThreshold is the direct child count at which a node stays
// collapsed after a build. Nodes with fewer children open automatically.
const AutoExpandThreshold = 30

// Kind says which namespace a subtree belongs to. It is fixed per root and
// inherited by every descendant.
type Kind int

const (
	KindFile Kind = iota
	KindRegistry
)

func (k Kind) String() string {
	if k == KindRegistry {
		return "registry"
	}
	return "file"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Separator returns the separator used between segments when a path of
// this kind is rendered.
func (k Kind) Separator() string {
	if k == KindRegistry {
		return pathkey.RegistrySeparator
	}
	return pathkey.FileSeparator
}

// render builds the path used for ignore lookups.
func (k Kind) render(key pathkey.Key) string {
	if k == KindRegistry {
		return key.RegistryPath()
	}
	return key.FilePath()
}

// children is a name -> node mapping iterated in sorted order.
type children struct {
	byName map[string]*Node
	names  []string
}

func (c *children) get(name string) *Node {
	return c.byName[name]
}

func (c *children) add(name string, n *Node) {
	if c.byName == nil {
		c.byName = make(map[string]*Node)
	}
	if _, ok := c.byName[name]; !ok {
		i, _ := slices.BinarySearch(c.names, name)
		c.names = slices.Insert(c.names, i, name)
	}
	c.byName[name] = n
}

func (c *children) len() int { return len(c.names) }

// Node is one segment's subtree.
//
// Only leaves represent scanned entries, so Succeeded, Duplicated, Change
// and File are meaningful on leaves alone. Intermediate nodes keep inert
// defaults (succeeded, not duplicated, unknown change, no file).
type Node struct {
	// Keys is the full segment path from the tree root to this node.
	Keys pathkey.Key
	Kind Kind

	Expanded bool
	Ignored  bool

	Succeeded  bool
	Duplicated bool
	Change     scan.Change
	File       *scan.ScannedFile

	// path is what ignore lookups are made against. Empty when the node
	// is not addressable for ignoring (tree roots, defensive nodes).
	path  string
	nodes children
}

func newNode(keys pathkey.Key, kind Kind) *Node {
	return &Node{
		Keys:      keys,
		Kind:      kind,
		Succeeded: true,
	}
}

// Name returns the node's own segment.
func (n *Node) Name() string {
	if len(n.Keys.Segments) == 0 {
		return ""
	}
	return n.Keys.Segments[len(n.Keys.Segments)-1]
}

// Path returns the rendered path used for ignore lookups, or "" when the
// node carries none.
func (n *Node) Path() string { return n.path }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.nodes.len() == 0 }

// Len returns the number of direct children.
func (n *Node) Len() int { return n.nodes.len() }

// Child returns the direct child named name, or nil.
func (n *Node) Child(name string) *Node { return n.nodes.get(name) }

// Children returns the direct children in sorted order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, n.nodes.len())
	for _, name := range n.nodes.names {
		out = append(out, n.nodes.byName[name])
	}
	return out
}

// leaf is the per-entry state written onto a terminal node.
type leaf struct {
	succeeded  bool
	duplicated bool
	change     scan.Change
	file       *scan.ScannedFile
}

// insert walks rest below n, creating collapsed nodes as needed, and
// writes l onto the last one. Repeated inserts of the same path overwrite
// the earlier leaf state.
func (n *Node) insert(rest []string, l leaf) *Node {
	node := n
	for _, seg := range rest {
		child := node.nodes.get(seg)
		if child == nil {
			child = newNode(node.Keys.Child(seg), node.Kind)
			child.path = node.Kind.render(child.Keys)
			node.nodes.add(seg, child)
		}
		node = child
	}

	node.path = node.Kind.render(node.Keys)
	node.Succeeded = l.succeeded
	node.Duplicated = l.duplicated
	node.Change = l.change
	node.File = l.file
	return node
}

// find walks rest below n without creating anything.
func (n *Node) find(rest []string) *Node {
	node := n
	for _, seg := range rest {
		node = node.nodes.get(seg)
		if node == nil {
			return nil
		}
	}
	return node
}

// ToggleExpand flips the expanded flag of the node addressed by rest,
// relative to n. Missing nodes along the way are created with default
// state so that every address resolves.
func (n *Node) ToggleExpand(rest []string) *Node {
	node := n
	for _, seg := range rest {
		child := node.nodes.get(seg)
		if child == nil {
			child = newNode(node.Keys.Child(seg), node.Kind)
			node.nodes.add(seg, child)
		}
		node = child
	}
	node.Expanded = !node.Expanded
	return node
}

// AnythingShowable reports whether the subtree holds at least one leaf.
func (n *Node) AnythingShowable() bool {
	if n.IsLeaf() {
		return true
	}
	for _, child := range n.nodes.byName {
		if child.AnythingShowable() {
			return true
		}
	}
	return false
}

// autoExpand opens every node with fewer than AutoExpandThreshold direct
// children. Wide nodes stay as they are but their children are still
// visited.
func (n *Node) autoExpand() {
	if n.nodes.len() < AutoExpandThreshold {
		n.Expanded = true
	}
	for _, child := range n.nodes.byName {
		child.autoExpand()
	}
}

// RecomputeIgnored refreshes Ignored for every addressable node in the
// subtree from cfg. A nil cfg ignores nothing.
func (n *Node) RecomputeIgnored(game string, cfg scan.IgnoreConfig) {
	if n.path != "" {
		switch {
		case cfg == nil:
			n.Ignored = false
		case n.Kind == KindRegistry:
			n.Ignored = cfg.IsRegistryIgnored(game, n.path)
		default:
			n.Ignored = cfg.IsPathIgnored(game, n.path)
		}
	}
	for _, child := range n.nodes.byName {
		child.RecomputeIgnored(game, cfg)
	}
}
