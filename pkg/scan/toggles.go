package scan

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/joshuapare/savetree/pkg/pathkey"
)

// IgnoreConfig answers whether a path has been excluded from backups for
// a game. File paths and registry paths are separate namespaces.
type IgnoreConfig interface {
	IsPathIgnored(game, path string) bool
	IsRegistryIgnored(game, path string) bool
}

// Toggles is the per-game set of explicit enable/disable choices. An entry
// applies to its path and everything below it; the nearest explicit entry
// wins, and a path with no entry on itself or any ancestor is enabled.
type Toggles struct {
	Paths    map[string]map[string]bool `yaml:"toggledPaths"`
	Registry map[string]map[string]bool `yaml:"toggledRegistry"`
}

// NewToggles returns an empty Toggles.
func NewToggles() *Toggles {
	return &Toggles{
		Paths:    make(map[string]map[string]bool),
		Registry: make(map[string]map[string]bool),
	}
}

// IsPathIgnored implements IgnoreConfig.
func (t *Toggles) IsPathIgnored(game, path string) bool {
	if t == nil {
		return false
	}
	return lookupIgnored(t.Paths[game], filePathKey(path), pathkey.FileSeparator)
}

// IsRegistryIgnored implements IgnoreConfig.
func (t *Toggles) IsRegistryIgnored(game, path string) bool {
	if t == nil {
		return false
	}
	return lookupIgnored(t.Registry[game], registryKey(path), pathkey.RegistrySeparator)
}

// SetPathEnabled records a choice for a file path. Choices below the path
// are dropped so the new choice covers the whole subtree, and the entry
// itself is dropped when it matches what the path would inherit anyway.
func (t *Toggles) SetPathEnabled(game, path string, enabled bool) {
	if t.Paths == nil {
		t.Paths = make(map[string]map[string]bool)
	}
	setEnabled(t.Paths, game, filePathKey(path), pathkey.FileSeparator, enabled)
}

// SetRegistryEnabled is SetPathEnabled for registry keys.
func (t *Toggles) SetRegistryEnabled(game, path string, enabled bool) {
	if t.Registry == nil {
		t.Registry = make(map[string]map[string]bool)
	}
	setEnabled(t.Registry, game, registryKey(path), pathkey.RegistrySeparator, enabled)
}

// normalize rewrites every stored key into canonical form. Entries that
// collapse onto the same key keep the last one in iteration order, so
// callers should not rely on conflicting spellings.
func (t *Toggles) normalize() {
	for game, entries := range t.Paths {
		out := make(map[string]bool, len(entries))
		for p, v := range entries {
			out[filePathKey(p)] = v
		}
		t.Paths[game] = out
	}
	for game, entries := range t.Registry {
		out := make(map[string]bool, len(entries))
		for p, v := range entries {
			out[registryKey(p)] = v
		}
		t.Registry[game] = out
	}
}

func lookupIgnored(entries map[string]bool, path, sep string) bool {
	if len(entries) == 0 {
		return false
	}
	for p := path; p != ""; p = parentPath(p, sep) {
		if enabled, ok := entries[p]; ok {
			return !enabled
		}
	}
	return false
}

func setEnabled(all map[string]map[string]bool, game, path, sep string, enabled bool) {
	entries := all[game]
	if entries == nil {
		entries = make(map[string]bool)
		all[game] = entries
	}

	prefix := path + sep
	for p := range entries {
		if strings.HasPrefix(p, prefix) {
			delete(entries, p)
		}
	}
	delete(entries, path)

	inherited := !lookupIgnored(entries, parentPath(path, sep), sep)
	if enabled != inherited {
		entries[path] = enabled
	}
	if len(entries) == 0 {
		delete(all, game)
	}
}

// parentPath strips the last segment. A rooted single-segment path
// ("/home") has no parent.
func parentPath(p, sep string) string {
	i := strings.LastIndex(p, sep)
	if i <= 0 {
		return ""
	}
	return p[:i]
}

// filePathKey canonicalizes a file path for map lookups: forward slashes,
// NFC, no trailing separator. Tree nodes render their paths from NFC
// segments, so both sides meet in the same form.
func filePathKey(p string) string {
	p = norm.NFC.String(renderPath(p))
	if len(p) > 1 {
		p = strings.TrimSuffix(p, pathkey.FileSeparator)
	}
	return p
}
