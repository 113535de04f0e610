package scan

import (
	"github.com/joshuapare/savetree/pkg/pathkey"
)

// BackupInfo records which entries failed during the most recent backup
// or restore. A nil *BackupInfo means no operation has run and nothing
// failed.
type BackupInfo struct {
	failedFiles    map[string]struct{}
	failedRegistry map[string]struct{}
}

// NewBackupInfo indexes the failed file paths and registry key paths.
// Both are canonicalized so that separator and normalization differences
// between the listing and the scan do not matter.
func NewBackupInfo(failedFiles, failedRegistry []string) *BackupInfo {
	b := &BackupInfo{
		failedFiles:    make(map[string]struct{}, len(failedFiles)),
		failedRegistry: make(map[string]struct{}, len(failedRegistry)),
	}
	for _, p := range failedFiles {
		b.failedFiles[filePathKey(p)] = struct{}{}
	}
	for _, p := range failedRegistry {
		b.failedRegistry[registryKey(p)] = struct{}{}
	}
	return b
}

// FileFailed reports whether f is listed as failed.
func (b *BackupInfo) FileFailed(f ScannedFile) bool {
	if b == nil {
		return false
	}
	_, ok := b.failedFiles[filePathKey(f.Path)]
	return ok
}

// RegistryFailed reports whether the registry key at path is listed as
// failed.
func (b *BackupInfo) RegistryFailed(path string) bool {
	if b == nil {
		return false
	}
	_, ok := b.failedRegistry[registryKey(path)]
	return ok
}

// DuplicateDetector answers whether an entry's content is also claimed by
// another game's backup. Implementations must be free of side effects.
type DuplicateDetector interface {
	IsFileDuplicated(path string) bool
	IsRegistryDuplicated(path string) bool
}

// NoDuplicates is a DuplicateDetector that never reports a duplicate.
type NoDuplicates struct{}

func (NoDuplicates) IsFileDuplicated(string) bool     { return false }
func (NoDuplicates) IsRegistryDuplicated(string) bool { return false }

// Duplicates is a set-backed DuplicateDetector.
type Duplicates struct {
	files    map[string]struct{}
	registry map[string]struct{}
}

// NewDuplicates builds a detector from the duplicated file paths and
// registry key paths.
func NewDuplicates(files, registry []string) *Duplicates {
	d := &Duplicates{
		files:    make(map[string]struct{}, len(files)),
		registry: make(map[string]struct{}, len(registry)),
	}
	for _, p := range files {
		d.files[filePathKey(p)] = struct{}{}
	}
	for _, p := range registry {
		d.registry[registryKey(p)] = struct{}{}
	}
	return d
}

func (d *Duplicates) IsFileDuplicated(path string) bool {
	_, ok := d.files[filePathKey(path)]
	return ok
}

func (d *Duplicates) IsRegistryDuplicated(path string) bool {
	_, ok := d.registry[registryKey(path)]
	return ok
}

// registryKey canonicalizes a registry path for set membership. Paths with
// no segments are kept verbatim so they can still match themselves.
func registryKey(path string) string {
	k, err := pathkey.FromRegistryPath(path)
	if err != nil {
		return path
	}
	return k.RegistryPath()
}
