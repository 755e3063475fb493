// Package spill provides an append-only, gob-encoded record log kept on disk,
// for campaign data that should not accumulate in memory.
package spill

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrOutOfBounds is returned by Get for an index past the end.
var ErrOutOfBounds = errors.New("spill index out of bounds")

// Spill is an append-only sequence of T stored in a single file.
type Spill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Get(index uint64) (T, error)
	Range(fn func(index uint64, item T) error) error
	Close() error
	Remove() error
}

type fileSpill[T any] struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *gob.Encoder
	length  uint64
}

// New creates a spill file in dir. An empty dir uses the system temp dir.
func New[T any](dir string) (Spill[T], error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "wirefuzz-spill")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create spill dir: %w", err)
	}

	file, err := os.CreateTemp(dir, "spill-*.gob")
	if err != nil {
		return nil, fmt.Errorf("create spill file: %w", err)
	}

	slog.Debug("Created spill", "path", file.Name())

	return &fileSpill[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

func (s *fileSpill[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

func (s *fileSpill[T]) Path() string {
	return s.path
}

func (s *fileSpill[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return fmt.Errorf("append to closed spill %s", s.path)
	}

	if err := s.encoder.Encode(item); err != nil {
		return fmt.Errorf("encode spill record %d: %w", s.length, err)
	}

	s.length++

	return nil
}

func (s *fileSpill[T]) Get(index uint64) (T, error) {
	var (
		found T
		hit   bool
	)

	err := s.Range(func(i uint64, item T) error {
		if i == index {
			found, hit = item, true
			return errStop
		}

		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return found, err
	}

	if !hit {
		return found, fmt.Errorf("%w: %d (length %d)", ErrOutOfBounds, index, s.Len())
	}

	return found, nil
}

var errStop = errors.New("stop")

// Range decodes the records in append order. An error from fn stops the
// iteration and is returned as is.
func (s *fileSpill[T]) Range(fn func(index uint64, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.length == 0 {
		return nil
	}

	file, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open spill: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("Failed to close spill reader", "path", s.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range s.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			return fmt.Errorf("decode spill record %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close stops further appends. Recorded items remain readable.
func (s *fileSpill[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil

	if err != nil {
		return fmt.Errorf("close spill: %w", err)
	}

	slog.Debug("Closed spill", "path", s.path, "length", s.length)

	return nil
}

// Remove closes the spill and deletes its file.
func (s *fileSpill[T]) Remove() error {
	if err := s.Close(); err != nil {
		return err
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove spill: %w", err)
	}

	return nil
}
