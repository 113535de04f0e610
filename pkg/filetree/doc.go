// Package filetree folds a flat scan result into a navigable tree.
//
// Files and registry keys from one scan are split into segments (see
// package pathkey) and inserted into a single tree, one subtree per
// top-level segment, Kind and rootedness. Each subtree has a fixed Kind,
// so filesystem and registry entries never mix, and "/home/a" never joins
// "home/a". An Address (kind, rooted flag, segments) locates any node.
//
// # Building
//
// Build runs in one synchronous pass: it inserts every entry, opens nodes
// with fewer than AutoExpandThreshold children and computes ignore flags
// from the supplied IgnoreConfig. Entries that reduce to an empty path are
// skipped and counted in BuildStats.
//
//	tree, stats := filetree.Build(info, toggles, backup, dupes)
//	if stats.Skipped > 0 {
//		log.Printf("%d malformed entries", stats.Skipped)
//	}
//
// # Mutation
//
// A built tree survives redraws. ToggleExpand flips one node's expansion by
// its Address, and RecomputeIgnored refreshes ignore flags after
// the configuration changes. Neither rebuilds the tree. Manual expansion is
// lost on the next Build.
//
// # Display
//
// Rows flattens the tree into display rows. A node with exactly one child
// that itself has children is merged with it into a single row
// ("saves/profiles", or "Software\Studio" for registry subtrees); the
// merged row's Address still points at the deepest node, so toggles keep
// working on the uncompressed structure.
package filetree
