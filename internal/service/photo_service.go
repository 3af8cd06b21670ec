package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hvillega/mantenimiento-api/internal/domain"
	"github.com/hvillega/mantenimiento-api/internal/mediastore"
	"github.com/hvillega/mantenimiento-api/internal/store"
)

// photoRepository is the subset of store.PhotoStore that PhotoService
// requires.
type photoRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Photo, error)
	Create(ctx context.Context, params store.PhotoParams) (*domain.Photo, error)
	Delete(ctx context.Context, id string) (*domain.Photo, error)
}

// PhotoService keeps photo rows and the files they point at in step: an
// upload writes the file before the row, and a delete removes the file
// best-effort before the row.
type PhotoService struct {
	photos photoRepository
	media  mediastore.MediaStore
	logger *slog.Logger
}

func NewPhotoService(photos photoRepository, media mediastore.MediaStore, logger *slog.Logger) *PhotoService {
	return &PhotoService{
		photos: photos,
		media:  media,
		logger: logger,
	}
}

// Upload stores data under a fresh filename that keeps originalName's
// extension, then creates the photo record pointing at it. When the record
// insert fails the file is removed again.
func (s *PhotoService) Upload(ctx context.Context, category, equipmentID, originalName string, data []byte) (*domain.Photo, error) {
	filename := uuid.NewString() + filepath.Ext(originalName)

	if err := s.media.Save(ctx, category, filename, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to save media file: %w", err)
	}
	s.logger.Debug("media file saved", "category", category, "filename", filename, "bytes", len(data))

	photo, err := s.photos.Create(ctx, store.PhotoParams{
		Category:    category,
		URL:         "/media/" + category + "/" + filename,
		Filename:    filename,
		EquipmentID: equipmentID,
	})
	if err != nil {
		if rerr := s.media.Delete(ctx, category, filename); rerr != nil {
			s.logger.Error("failed to remove media file after insert error", "filename", filename, "error", rerr)
		}
		return nil, err
	}

	s.logger.Info("photo uploaded", "photo_id", photo.ID, "category", category, "equipment_id", equipmentID)
	return photo, nil
}

// Delete removes the photo's file best-effort, then deletes the row. A
// missing or unremovable file never blocks the row deletion. Returns the
// deleted row, or nil when the id does not exist.
func (s *PhotoService) Delete(ctx context.Context, id string) (*domain.Photo, error) {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil || photo == nil {
		return photo, err
	}

	if category, filename, ok := splitMediaURL(photo.URL); ok {
		if err := s.media.Delete(ctx, category, filename); err != nil {
			s.logger.Warn("could not remove photo file", "photo_id", id, "url", photo.URL, "error", err)
		}
	}

	return s.photos.Delete(ctx, id)
}

// splitMediaURL extracts the category and filename from a /media/... URL.
func splitMediaURL(url string) (category, filename string, ok bool) {
	rest, found := strings.CutPrefix(url, "/media/")
	if !found {
		return "", "", false
	}
	category, filename, found = strings.Cut(rest, "/")
	if !found || category == "" || filename == "" {
		return "", "", false
	}
	return category, filename, true
}
