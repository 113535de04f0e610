// Package scan holds the inputs a file tree is built from: the flat scan
// result for one game, the outcome of the last backup or restore, the
// duplicate oracle and the per-game ignore toggles.
//
// The scanner and backup engine that produce these values live elsewhere;
// this package only describes them and reads them from JSON (scan results,
// backup outcomes, duplicates) or YAML (toggles).
package scan
