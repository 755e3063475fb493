package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

const (
	payloadExt  = ".bin"
	metadataExt = ".yaml"
)

// CrashStore persists failing iterations.
type CrashStore interface {
	// SaveCrash writes the crash and returns the path of its metadata file.
	SaveCrash(crash m.Crash) (m.Path, error)
	// LoadCrash reads a crash back from its metadata file.
	LoadCrash(path m.Path) (m.Crash, error)
	// ListCrashes returns every stored crash, ordered by iteration.
	ListCrashes() ([]m.Crash, error)
}

// FSCrashStore keeps each crash as <seed>-<iteration>.bin with the raw payload
// next to a .yaml metadata file.
type FSCrashStore struct {
	dir string
}

// NewFSCrashStore returns a store rooted at dir. The directory is created on
// first save.
func NewFSCrashStore(dir m.Path) *FSCrashStore {
	return &FSCrashStore{dir: string(dir)}
}

// Dir returns the store root.
func (s *FSCrashStore) Dir() m.Path {
	return m.Path(s.dir)
}

func (s *FSCrashStore) baseName(crash m.Crash) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d-%d", crash.Seed, crash.Iteration))
}

func (s *FSCrashStore) SaveCrash(crash m.Crash) (m.Path, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", fmt.Errorf("create crash dir: %w", err)
	}

	crash.Size = len(crash.Payload)

	meta, err := yaml.Marshal(crash)
	if err != nil {
		return "", fmt.Errorf("marshal crash metadata: %w", err)
	}

	base := s.baseName(crash)

	if err := atomic.WriteFile(base+payloadExt, bytes.NewReader(crash.Payload)); err != nil {
		return "", fmt.Errorf("write crash payload: %w", err)
	}

	if err := atomic.WriteFile(base+metadataExt, bytes.NewReader(meta)); err != nil {
		return "", fmt.Errorf("write crash metadata: %w", err)
	}

	return m.Path(base + metadataExt), nil
}

func (s *FSCrashStore) LoadCrash(path m.Path) (m.Crash, error) {
	var crash m.Crash

	meta, err := os.ReadFile(string(path))
	if err != nil {
		return crash, fmt.Errorf("read crash metadata: %w", err)
	}

	if err := yaml.Unmarshal(meta, &crash); err != nil {
		return crash, fmt.Errorf("parse crash metadata %s: %w", path, err)
	}

	payloadPath := strings.TrimSuffix(string(path), metadataExt) + payloadExt

	payload, err := os.ReadFile(payloadPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return crash, fmt.Errorf("read crash payload: %w", err)
	}

	crash.Payload = payload

	return crash, nil
}

func (s *FSCrashStore) ListCrashes() ([]m.Crash, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+metadataExt))
	if err != nil {
		return nil, fmt.Errorf("list crashes: %w", err)
	}

	crashes := make([]m.Crash, 0, len(matches))

	for _, match := range matches {
		crash, err := s.LoadCrash(m.Path(match))
		if err != nil {
			return nil, err
		}

		crashes = append(crashes, crash)
	}

	sort.Slice(crashes, func(i, j int) bool {
		if crashes[i].Seed != crashes[j].Seed {
			return crashes[i].Seed < crashes[j].Seed
		}

		return crashes[i].Iteration < crashes[j].Iteration
	})

	return crashes, nil
}
