package scan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoGame is returned when a decoded scan names no game.
var ErrNoGame = errors.New("scan: missing game name")

type backupInfoFile struct {
	FailedFiles    []string `json:"failedFiles"`
	FailedRegistry []string `json:"failedRegistry"`
}

type duplicatesFile struct {
	Files    []string `json:"files"`
	Registry []string `json:"registry"`
}

type togglesFile struct {
	Backup Toggles `yaml:"backup"`
}

// DecodeScanInfo reads a JSON scan result.
func DecodeScanInfo(r io.Reader) (ScanInfo, error) {
	var info ScanInfo
	if err := json.NewDecoder(r).Decode(&info); err != nil {
		return ScanInfo{}, fmt.Errorf("decode scan: %w", err)
	}
	if info.GameName == "" {
		return ScanInfo{}, ErrNoGame
	}
	return info, nil
}

// LoadScanInfo reads a JSON scan result from a file.
func LoadScanInfo(path string) (ScanInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ScanInfo{}, fmt.Errorf("open scan %s: %w", path, err)
	}
	defer f.Close()

	info, err := DecodeScanInfo(f)
	if err != nil {
		return ScanInfo{}, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}

// DecodeBackupInfo reads a JSON backup outcome
// ({"failedFiles": [...], "failedRegistry": [...]}).
func DecodeBackupInfo(r io.Reader) (*BackupInfo, error) {
	var raw backupInfoFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode backup outcome: %w", err)
	}
	return NewBackupInfo(raw.FailedFiles, raw.FailedRegistry), nil
}

// LoadBackupInfo reads a JSON backup outcome from a file.
func LoadBackupInfo(path string) (*BackupInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open backup outcome %s: %w", path, err)
	}
	defer f.Close()
	return DecodeBackupInfo(f)
}

// DecodeDuplicates reads a JSON duplicate listing
// ({"files": [...], "registry": [...]}).
func DecodeDuplicates(r io.Reader) (*Duplicates, error) {
	var raw duplicatesFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode duplicates: %w", err)
	}
	return NewDuplicates(raw.Files, raw.Registry), nil
}

// LoadDuplicates reads a JSON duplicate listing from a file.
func LoadDuplicates(path string) (*Duplicates, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open duplicates %s: %w", path, err)
	}
	defer f.Close()
	return DecodeDuplicates(f)
}

// DecodeToggles reads the backup toggles section of a YAML config:
//
//	backup:
//	  toggledPaths:
//	    Game Name:
//	      /home/user/.local/share/game/cache: false
//	  toggledRegistry:
//	    Game Name:
//	      HKEY_CURRENT_USER\Software\Studio\Game\Telemetry: false
func DecodeToggles(r io.Reader) (*Toggles, error) {
	var raw togglesFile
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode toggles: %w", err)
	}
	t := raw.Backup
	if t.Paths == nil {
		t.Paths = make(map[string]map[string]bool)
	}
	if t.Registry == nil {
		t.Registry = make(map[string]map[string]bool)
	}
	t.normalize()
	return &t, nil
}

// LoadToggles reads toggles from a YAML file. A missing file yields empty
// toggles.
func LoadToggles(path string) (*Toggles, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewToggles(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open toggles %s: %w", path, err)
	}
	defer f.Close()
	return DecodeToggles(f)
}
