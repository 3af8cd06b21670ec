package mediastore

import (
	"context"
	"errors"
	"io"
)

// ErrNotExist is returned by Open and Delete when the requested file is not
// in the store.
var ErrNotExist = errors.New("media file does not exist")

// MediaStore persists uploaded files under a category-scoped key.
type MediaStore interface {
	// Save writes the full contents of r as category/filename.
	Save(ctx context.Context, category, filename string, r io.Reader) error
	// Open returns the stored file for reading. The caller must close it.
	Open(ctx context.Context, category, filename string) (io.ReadCloser, error)
	// Delete removes the stored file.
	Delete(ctx context.Context, category, filename string) error
}
