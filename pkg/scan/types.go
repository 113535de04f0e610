package scan

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Change classifies how a scanned entry differs from the previous scan.
type Change int

const (
	ChangeUnknown   Change = iota // no prior state to compare against
	ChangeUnchanged               // identical to the prior state
	ChangeNew                     // did not exist before
	ChangeModified                // existed with different content
)

var changeNames = map[Change]string{
	ChangeUnknown:   "unknown",
	ChangeUnchanged: "same",
	ChangeNew:       "new",
	ChangeModified:  "different",
}

func (c Change) String() string {
	if s, ok := changeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Change(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Change) MarshalText() ([]byte, error) {
	s, ok := changeNames[c]
	if !ok {
		return nil, fmt.Errorf("scan: invalid change %d", int(c))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both the short names
// ("same", "different") and the long ones ("unchanged", "modified") are
// accepted; an empty string means unknown.
func (c *Change) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "unknown":
		*c = ChangeUnknown
	case "same", "unchanged":
		*c = ChangeUnchanged
	case "new":
		*c = ChangeNew
	case "different", "modified":
		*c = ChangeModified
	default:
		return fmt.Errorf("scan: unknown change %q", string(text))
	}
	return nil
}

// ScannedFile is one file found by a backup or restore scan.
type ScannedFile struct {
	// Path is the file's location on this system.
	Path string `json:"path"`

	// Redirect is the other side of a configured redirect: where the file
	// goes when backing up, or where it came from when restoring. Empty when
	// no redirect applies.
	Redirect string `json:"redirect,omitempty"`

	Change Change `json:"change"`
}

// Readable returns the slash-separated display path for the given
// direction. Restores show the redirect target when one exists.
func (f ScannedFile) Readable(restoring bool) string {
	p := f.Path
	if restoring && f.Redirect != "" {
		p = f.Redirect
	}
	return renderPath(p)
}

// Alt returns the counterpart of Readable: the original location when
// restoring a redirected file, or the redirect target when backing up.
// Empty when the file is not redirected.
func (f ScannedFile) Alt(restoring bool) string {
	if f.Redirect == "" {
		return ""
	}
	if restoring {
		return renderPath(f.Path)
	}
	return renderPath(f.Redirect)
}

// Validate implements validation.Validatable.
func (f ScannedFile) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Path, validation.Required),
	)
}

// ScannedRegistry is one registry key found by a scan.
type ScannedRegistry struct {
	Path   string `json:"path"`
	Change Change `json:"change"`
}

// Validate implements validation.Validatable.
func (r ScannedRegistry) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Path, validation.Required),
	)
}

// ScanInfo is the flat result of scanning one game.
type ScanInfo struct {
	GameName          string            `json:"gameName"`
	Restoring         bool              `json:"restoring"`
	FoundFiles        []ScannedFile     `json:"foundFiles"`
	FoundRegistryKeys []ScannedRegistry `json:"foundRegistryKeys"`
}

// Validate checks that the scan names a game and that no entry has an
// empty path. File trees tolerate bad entries on their own; this is for
// callers that want to reject malformed input up front.
func (s ScanInfo) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.GameName, validation.Required),
		validation.Field(&s.FoundFiles),
		validation.Field(&s.FoundRegistryKeys),
	)
}

// renderPath converts Windows separators to the forward slashes used for
// display.
func renderPath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
