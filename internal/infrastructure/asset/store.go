// Package asset stores the uploaded client icons on disk, one file per
// owning record id. The extension follows the original upload, so lookups
// match on the id prefix rather than a fixed name.
package asset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
	"github.com/josecarlosjccf/crud-clientes/internal/core/ports"
)

// Store writes icons into dir and records paths relative to the process
// working directory, matching what the web client is served.
type Store struct {
	dir      string
	maxBytes int64
	mu       sync.Mutex
}

func NewStore(dir string, maxBytes int64) *Store {
	return &Store{dir: dir, maxBytes: maxBytes}
}

// Save validates and stores an upload under recordID, replacing any asset
// the record already owns. The declared media type must have an image/
// prefix and the file content must sniff as an image; both checks have to
// agree before anything touches disk.
func (s *Store) Save(_ context.Context, recordID string, upload ports.Upload) (string, error) {
	if upload.Size > s.maxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", domain.ErrImageTooLarge, s.maxBytes)
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return "", domain.ErrNotAnImage
	}

	data, err := io.ReadAll(io.LimitReader(upload.Content, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", domain.ErrImageTooLarge, s.maxBytes)
	}
	if mt := mimetype.Detect(data); !strings.HasPrefix(mt.String(), "image/") {
		return "", domain.ErrNotAnImage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create icon dir: %w", err)
	}
	if err := s.removeLocked(recordID); err != nil {
		return "", err
	}

	name := recordID + strings.ToLower(filepath.Ext(upload.Filename))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write icon: %w", err)
	}
	return s.relPath(name), nil
}

// Remove deletes the record's asset, whatever its extension. A record with
// no asset is not an error.
func (s *Store) Remove(_ context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(recordID)
}

// Rename relocates the asset from oldID to newID, keeping the extension.
// It reports whether an asset was found; a missing source is not an error.
func (s *Store) Rename(_ context.Context, oldID, newID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok, err := s.findLocked(oldID)
	if err != nil || !ok {
		return "", false, err
	}

	newName := newID + filepath.Ext(name)
	if err := os.Rename(filepath.Join(s.dir, name), filepath.Join(s.dir, newName)); err != nil {
		return "", false, fmt.Errorf("rename icon: %w", err)
	}
	return s.relPath(newName), true, nil
}

// findLocked returns the stored file name owned by recordID, if any. Ownership
// means the name is exactly the id or the id followed by an extension.
func (s *Store) findLocked(recordID string) (string, bool, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("scan icon dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name == recordID || strings.HasPrefix(name, recordID+".") {
			return name, true, nil
		}
	}
	return "", false, nil
}

func (s *Store) removeLocked(recordID string) error {
	name, ok, err := s.findLocked(recordID)
	if err != nil || !ok {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove icon: %w", err)
	}
	return nil
}

// relPath builds the forward-slash path recorded on the client record.
func (s *Store) relPath(name string) string {
	return path.Join(filepath.ToSlash(s.dir), name)
}
