package ports

import (
	"context"
	"io"
)

// Upload carries one file received over multipart form data.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// AssetStore manages the image file associated with a client record. A
// record owns at most one asset, addressed by its id regardless of file
// extension.
type AssetStore interface {
	// Save stores the upload under the record's id and returns the relative
	// path to record on the client. Rejects non-images and oversized files
	// with domain.ErrNotAnImage / domain.ErrImageTooLarge.
	Save(ctx context.Context, recordID string, upload Upload) (string, error)
	// Remove deletes the record's asset. Absence is not an error.
	Remove(ctx context.Context, recordID string) error
	// Rename relocates the asset from oldID to newID, preserving the
	// extension. It returns the new relative path and whether an asset was
	// found; a missing source is not an error.
	Rename(ctx context.Context, oldID, newID string) (string, bool, error)
}
