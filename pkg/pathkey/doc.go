// Package pathkey turns rendered filesystem paths and registry key paths
// into a uniform, ordered sequence of segments.
//
// A Key is the only addressing scheme the file tree understands: files
// split on "/", registry keys split on "\" (or "/"), and both end up as a
// plain []string. Keys compare segment by segment, which is the order the
// tree uses when iterating children.
//
//	k, err := pathkey.FromDisplayPath("C:/Games/Save/slot1.dat", "/")
//	if errors.Is(err, pathkey.ErrEmptyPath) {
//		// malformed entry, skip it
//	}
//
//	r, _ := pathkey.FromRegistryPath(`HKCU\Software\Studio\Game`)
//	r.RegistryPath() // HKEY_CURRENT_USER\Software\Studio\Game
package pathkey
