package local

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hvillega/mantenimiento-api/internal/mediastore"
)

// LocalMediaStore keeps uploaded files on disk, one subdirectory per
// category.
type LocalMediaStore struct {
	basePath string
}

func NewLocalMediaStore(basePath string) (*LocalMediaStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &LocalMediaStore{basePath: basePath}, nil
}

func (s *LocalMediaStore) Save(ctx context.Context, category, filename string, r io.Reader) error {
	filePath, err := s.safeJoin(category, filename)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create category directory: %w", err)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		if cerr := f.Close(); cerr != nil {
			slog.Error("failed to close file after write error", "error", cerr)
		}
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

func (s *LocalMediaStore) Open(ctx context.Context, category, filename string) (io.ReadCloser, error) {
	filePath, err := s.safeJoin(category, filename)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mediastore.ErrNotExist
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func (s *LocalMediaStore) Delete(ctx context.Context, category, filename string) error {
	filePath, err := s.safeJoin(category, filename)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return mediastore.ErrNotExist
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// safeJoin resolves category/filename relative to basePath and rejects
// directory traversal.
func (s *LocalMediaStore) safeJoin(category, filename string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, category, filename))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}
