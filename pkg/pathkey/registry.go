package pathkey

import (
	"strings"
)

// rootAliases maps the short hive names to their canonical form.
var rootAliases = map[string]string{
	"HKLM": "HKEY_LOCAL_MACHINE",
	"HKCR": "HKEY_CLASSES_ROOT",
	"HKCU": "HKEY_CURRENT_USER",
	"HKU":  "HKEY_USERS",
	"HKCC": "HKEY_CURRENT_CONFIG",
}

var canonicalRoots = []string{
	"HKEY_LOCAL_MACHINE",
	"HKEY_CLASSES_ROOT",
	"HKEY_CURRENT_USER",
	"HKEY_USERS",
	"HKEY_CURRENT_CONFIG",
}

// FromRegistryPath splits a registry key path into a Key. Both "\" and "/"
// are accepted as separators, surrounding whitespace on each segment is
// trimmed, and a leading hive alias such as HKCU is expanded to its
// canonical name so that aliases and full names share one subtree.
func FromRegistryPath(text string) (Key, error) {
	text = strings.ReplaceAll(text, "/", RegistrySeparator)
	parts := strings.Split(text, RegistrySeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	k, err := New(parts...)
	if err != nil {
		return Key{}, err
	}
	k.Segments[0] = CanonicalRoot(k.Segments[0])
	return k, nil
}

// CanonicalRoot returns the canonical hive name for seg, or seg unchanged
// when it is not a known hive root.
func CanonicalRoot(seg string) string {
	upper := strings.ToUpper(seg)
	if canon, ok := rootAliases[upper]; ok {
		return canon
	}
	for _, canon := range canonicalRoots {
		if upper == canon {
			return canon
		}
	}
	return seg
}
