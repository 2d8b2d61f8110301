package asset

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
	"github.com/josecarlosjccf/crud-clientes/internal/core/ports"
)

// pngBytes is a minimal payload carrying the PNG magic number, enough for
// content sniffing to classify it as image/png.
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func pngUpload(name string) ports.Upload {
	return ports.Upload{
		Filename:    name,
		ContentType: "image/png",
		Size:        int64(len(pngBytes)),
		Content:     bytes.NewReader(pngBytes),
	}
}

func TestStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, 1<<20)

	path, err := store.Save(context.Background(), "A1B2C3D4", pngUpload("photo.PNG"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if filepath.Base(path) != "A1B2C3D4.png" {
		t.Fatalf("expected id plus lowercased extension, got %q", path)
	}
	if _, err := os.Stat(filepath.Join(dir, "A1B2C3D4.png")); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}

func TestStore_Save_RejectsDeclaredNonImage(t *testing.T) {
	store := NewStore(t.TempDir(), 1<<20)

	upload := pngUpload("photo.png")
	upload.ContentType = "application/pdf"
	if _, err := store.Save(context.Background(), "AAA", upload); !errors.Is(err, domain.ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage, got %v", err)
	}
}

func TestStore_Save_RejectsSniffedNonImage(t *testing.T) {
	store := NewStore(t.TempDir(), 1<<20)

	// Declared image/png but the bytes are plain text.
	upload := ports.Upload{
		Filename:    "fake.png",
		ContentType: "image/png",
		Size:        9,
		Content:     bytes.NewReader([]byte("plaintext")),
	}
	if _, err := store.Save(context.Background(), "AAA", upload); !errors.Is(err, domain.ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage for mismatched content, got %v", err)
	}
}

func TestStore_Save_RejectsOversized(t *testing.T) {
	store := NewStore(t.TempDir(), 4)

	upload := pngUpload("big.png")
	if _, err := store.Save(context.Background(), "AAA", upload); !errors.Is(err, domain.ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
}

func TestStore_Save_ReplacesPreviousExtension(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, 1<<20)
	ctx := context.Background()

	if _, err := store.Save(ctx, "AAA", pngUpload("a.png")); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	gif := ports.Upload{
		Filename:    "a.gif",
		ContentType: "image/gif",
		Size:        13,
		Content:     bytes.NewReader([]byte("GIF89a\x01\x00\x01\x00\x00\x00;")),
	}
	if _, err := store.Save(ctx, "AAA", gif); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "AAA.png")); !os.IsNotExist(err) {
		t.Fatalf("stale .png should be gone, stat err: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "AAA.gif")); err != nil {
		t.Fatalf("replacement .gif missing: %v", err)
	}
}

func TestStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, 1<<20)
	ctx := context.Background()

	if _, err := store.Save(ctx, "AAA", pngUpload("a.png")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Remove(ctx, "AAA"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "AAA.png")); !os.IsNotExist(err) {
		t.Fatalf("file should be gone, stat err: %v", err)
	}

	// Absence is not an error.
	if err := store.Remove(ctx, "AAA"); err != nil {
		t.Fatalf("removing an absent asset must not fail: %v", err)
	}
}

func TestStore_Remove_DoesNotTouchPrefixSiblings(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, 1<<20)
	ctx := context.Background()

	if _, err := store.Save(ctx, "AAA", pngUpload("a.png")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := store.Save(ctx, "AAAB", pngUpload("b.png")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := store.Remove(ctx, "AAA"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "AAAB.png")); err != nil {
		t.Fatalf("sibling with id prefix must survive: %v", err)
	}
}

func TestStore_Rename(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, 1<<20)
	ctx := context.Background()

	if _, err := store.Save(ctx, "OLD", pngUpload("a.png")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	path, found, err := store.Rename(ctx, "OLD", "NEW")
	if err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if !found {
		t.Fatalf("expected asset to be found")
	}
	if filepath.Base(path) != "NEW.png" {
		t.Fatalf("expected extension preserved, got %q", path)
	}
	if _, err := os.Stat(filepath.Join(dir, "NEW.png")); err != nil {
		t.Fatalf("renamed file missing: %v", err)
	}

	// Missing source is reported, not failed.
	_, found, err = store.Rename(ctx, "GHOST", "ELSEWHERE")
	if err != nil {
		t.Fatalf("rename of missing asset must not fail: %v", err)
	}
	if found {
		t.Fatalf("expected found=false for missing asset")
	}
}
