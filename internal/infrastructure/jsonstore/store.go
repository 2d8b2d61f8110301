// Package jsonstore persists each entity type as one pretty-printed JSON
// array file under a shared data directory. Every write replaces the whole
// file; there are no partial updates.
//
// A per-store mutex serializes read-modify-write cycles inside the process.
// Writers in other processes still race with last-writer-wins semantics,
// which is the accepted trade-off of flat-file storage here.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
)

// Store owns the data directory. Entity repositories share one Store so
// their file operations serialize on the same mutex.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the backing data directory.
func (s *Store) Dir() string {
	return s.dir
}

// readFile loads the named JSON array file into out (a pointer to a slice).
// A missing file reads as an empty list. A file that exists but cannot be
// parsed is a real failure and surfaces as domain.ErrCorruptStore: silently
// treating corruption as emptiness would invite a later write to destroy
// whatever the file still holds.
func (s *Store) readFile(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrCorruptStore, name, err)
	}
	return nil
}

// writeFile replaces the named file with records serialized as an indented
// JSON array, creating the data directory first when absent.
func (s *Store) writeFile(name string, records any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
