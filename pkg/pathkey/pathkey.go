package pathkey

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// FileSeparator separates segments of a rendered filesystem path.
	FileSeparator = "/"

	// RegistrySeparator is the backslash used between Windows Registry
	// key names.
	RegistrySeparator = "\\"
)

// ErrEmptyPath is returned when a path yields no segments after
// normalization.
var ErrEmptyPath = errors.New("pathkey: path has no segments")

// Key is an ordered sequence of non-empty path segments. It is the
// addressing scheme for every node in a file tree, regardless of whether
// the path came from the filesystem or the registry.
type Key struct {
	Segments []string

	// Rooted records that the display path began with the separator
	// ("/home/user/..."). It does not take part in Equal or Compare.
	Rooted bool
}

// New builds a Key from already-split segments. Empty segments are
// dropped and the rest are NFC-normalized.
func New(segments ...string) (Key, error) {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		out = append(out, norm.NFC.String(seg))
	}
	if len(out) == 0 {
		return Key{}, ErrEmptyPath
	}
	return Key{Segments: out}, nil
}

// FromDisplayPath splits text on sep, dropping empty segments.
func FromDisplayPath(text, sep string) (Key, error) {
	if sep == "" {
		sep = FileSeparator
	}
	k, err := New(strings.Split(text, sep)...)
	if err != nil {
		return Key{}, err
	}
	k.Rooted = strings.HasPrefix(text, sep)
	return k, nil
}

// Len returns the number of segments.
func (k Key) Len() int { return len(k.Segments) }

// Head returns the first segment, or "" for the zero Key.
func (k Key) Head() string {
	if len(k.Segments) == 0 {
		return ""
	}
	return k.Segments[0]
}

// Tail returns the segments after the first one.
func (k Key) Tail() []string {
	if len(k.Segments) < 2 {
		return nil
	}
	return k.Segments[1:]
}

// Equal reports whether both keys hold the same segments in the same order.
func (k Key) Equal(other Key) bool {
	return slices.Equal(k.Segments, other.Segments)
}

// Compare orders keys lexicographically, segment by segment.
func (k Key) Compare(other Key) int {
	return slices.Compare(k.Segments, other.Segments)
}

// Child returns a new Key with seg appended.
func (k Key) Child(seg string) Key {
	segs := make([]string, len(k.Segments), len(k.Segments)+1)
	copy(segs, k.Segments)
	return Key{Segments: append(segs, seg), Rooted: k.Rooted}
}

// FilePath renders the key as a slash-separated filesystem path.
func (k Key) FilePath() string {
	p := strings.Join(k.Segments, FileSeparator)
	if k.Rooted {
		return FileSeparator + p
	}
	return p
}

// RegistryPath renders the key as a backslash-separated registry path.
func (k Key) RegistryPath() string {
	return strings.Join(k.Segments, RegistrySeparator)
}

func (k Key) String() string {
	return k.FilePath()
}
