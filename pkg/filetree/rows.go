package filetree

import (
	"fmt"

	"github.com/joshuapare/savetree/pkg/scan"
)

// BadgeKind labels a per-leaf annotation.
type BadgeKind int

const (
	BadgeNew BadgeKind = iota
	BadgeChanged
	BadgeDuplicated
	BadgeFailed
	BadgeRedirectedFrom
	BadgeRedirectingTo
)

var badgeNames = [...]string{
	BadgeNew:            "new",
	BadgeChanged:        "changed",
	BadgeDuplicated:     "duplicated",
	BadgeFailed:         "failed",
	BadgeRedirectedFrom: "redirected-from",
	BadgeRedirectingTo:  "redirecting-to",
}

func (b BadgeKind) String() string {
	if int(b) >= 0 && int(b) < len(badgeNames) {
		return badgeNames[b]
	}
	return fmt.Sprintf("BadgeKind(%d)", int(b))
}

// MarshalText implements encoding.TextMarshaler.
func (b BadgeKind) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Badge is one annotation on a leaf row. Detail carries the counterpart
// path for redirect badges.
type Badge struct {
	Kind   BadgeKind `json:"kind"`
	Detail string    `json:"detail,omitempty"`
}

// Row is one displayed line of a flattened tree. Kind, Rooted and Keys
// address the node the row stands for; after path compression that is the
// deepest node of the merged chain.
type Row struct {
	Label    string   `json:"label"`
	Keys     []string `json:"keys"`
	Rooted   bool     `json:"rooted,omitempty"`
	Level    int      `json:"level"`
	Kind     Kind     `json:"kind"`
	Leaf     bool     `json:"leaf"`
	Expanded bool     `json:"expanded"`
	Ignored  bool     `json:"ignored"`

	// Checkbox is set when the row offers an enable/disable control, which
	// is the case for addressable nodes outside of restores.
	Checkbox bool   `json:"checkbox"`
	Path     string `json:"path,omitempty"`

	Badges []Badge `json:"badges,omitempty"`
}

// Address returns the address of the node the row stands for.
func (r Row) Address() Address {
	return Address{Kind: r.Kind, Rooted: r.Rooted, Keys: r.Keys}
}

// RowOptions controls Rows.
type RowOptions struct {
	// IncludeCollapsed lists the children of collapsed nodes as well.
	IncludeCollapsed bool
}

// Rows flattens the tree for display. Subtrees with nothing showable are
// pruned, and a node with a single child that itself has children is
// merged with that child into one row labelled "parent<sep>child". The
// tree is not modified.
func (t *Tree) Rows(opts RowOptions) []Row {
	var rows []Row
	for _, root := range t.Roots() {
		if !root.AnythingShowable() {
			continue
		}
		root.appendRows(&rows, 0, rootLabel(root), t.Restoring, opts)
	}
	return rows
}

// Rows flattens the subtree below n, with n itself at level 0.
func (n *Node) Rows(restoring bool, opts RowOptions) []Row {
	var rows []Row
	if n.AnythingShowable() {
		n.appendRows(&rows, 0, n.Name(), restoring, opts)
	}
	return rows
}

// rootLabel shows the leading separator of rooted file paths.
func rootLabel(n *Node) string {
	if n.Kind == KindFile && n.Keys.Rooted {
		return n.Kind.Separator() + n.Name()
	}
	return n.Name()
}

func (n *Node) appendRows(rows *[]Row, level int, label string, restoring bool, opts RowOptions) {
	if n.IsLeaf() {
		*rows = append(*rows, n.row(level, label, restoring))
		return
	}

	if n.nodes.len() == 1 {
		name := n.nodes.names[0]
		only := n.nodes.byName[name]
		if !only.IsLeaf() {
			only.appendRows(rows, level, label+n.Kind.Separator()+name, restoring, opts)
			return
		}
	}

	*rows = append(*rows, n.row(level, label, restoring))
	if !n.Expanded && !opts.IncludeCollapsed {
		return
	}
	for _, name := range n.nodes.names {
		child := n.nodes.byName[name]
		if !child.AnythingShowable() {
			continue
		}
		child.appendRows(rows, level+1, name, restoring, opts)
	}
}

func (n *Node) row(level int, label string, restoring bool) Row {
	r := Row{
		Label:    label,
		Keys:     append([]string(nil), n.Keys.Segments...),
		Rooted:   n.Keys.Rooted,
		Level:    level,
		Kind:     n.Kind,
		Leaf:     n.IsLeaf(),
		Expanded: n.Expanded,
		Ignored:  n.Ignored,
		Checkbox: !restoring && n.path != "",
		Path:     n.path,
	}
	if r.Leaf {
		r.Badges = n.badges(restoring)
	}
	return r
}

func (n *Node) badges(restoring bool) []Badge {
	var out []Badge
	switch n.Change {
	case scan.ChangeNew:
		out = append(out, Badge{Kind: BadgeNew})
	case scan.ChangeModified:
		out = append(out, Badge{Kind: BadgeChanged})
	}
	if n.Duplicated {
		out = append(out, Badge{Kind: BadgeDuplicated})
	}
	if !n.Succeeded {
		out = append(out, Badge{Kind: BadgeFailed})
	}
	if n.File != nil {
		if alt := n.File.Alt(restoring); alt != "" {
			kind := BadgeRedirectingTo
			if restoring {
				kind = BadgeRedirectedFrom
			}
			out = append(out, Badge{Kind: kind, Detail: alt})
		}
	}
	return out
}
