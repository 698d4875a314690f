// Package manifest persists the contents of a kernel registry as a
// versioned JSON manifest with atomic CURRENT/MANIFEST-NNNNNN rotation.
//
// A manifest is a point-in-time snapshot of every registered kernel:
// identifier, canonical name and parameter list. Readers always go through
// the CURRENT pointer, so a crash mid-save never exposes a torn manifest.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	ManifestFileName = "MANIFEST"
	CurrentFileName  = "CURRENT"
	CurrentVersion   = 1
)

// Manifest describes the registered kernels at a specific point in time.
type Manifest struct {
	Version int          `json:"version"`
	ID      uint64       `json:"id"`
	Kernels []KernelInfo `json:"kernels"`
}

// KernelInfo describes a single registered kernel.
type KernelInfo struct {
	ID     uint32      `json:"id"`
	Name   string      `json:"name"`
	Params []ParamInfo `json:"params,omitempty"`
}

// ParamInfo describes one parameter slot of a kernel signature.
type ParamInfo struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Type      string `json:"type"`
	Optional  bool   `json:"optional,omitempty"`
}

// Store manages the manifest files in a directory and their atomic updates.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates a manifest store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load loads the current manifest. A missing CURRENT pointer yields an
// empty manifest at the current version, not an error.
func (s *Store) Load() (*Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	readFile := func(path string) ([]byte, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}

	currentPath := filepath.Join(s.dir, CurrentFileName)
	content, err := readFile(currentPath)
	if os.IsNotExist(err) {
		return &Manifest{ID: 0, Version: CurrentVersion}, nil
	}
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(s.dir, string(content))
	data, err := readFile(manifestPath)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	if m.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported manifest version: %d (expected %d)", m.Version, CurrentVersion)
	}

	return &m, nil
}

// Save atomically saves a new manifest and advances the CURRENT pointer.
func (s *Store) Save(m *Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.Version = CurrentVersion
	m.ID++

	filename := fmt.Sprintf("%s-%06d.json", ManifestFileName, m.ID)
	path := filepath.Join(s.dir, filename)

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	if err := s.syncDir(); err != nil {
		return err
	}

	if err := writeFileAtomic(filepath.Join(s.dir, CurrentFileName), []byte(filename)); err != nil {
		return err
	}
	return s.syncDir()
}

// writeFileAtomic writes data to a temp file, fsyncs it and renames it over
// the target.
func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

func (s *Store) syncDir() error {
	f, err := os.Open(s.dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
