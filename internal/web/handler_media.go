package web

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/hvillega/mantenimiento-api/internal/mediastore"
)

// handleGetMedia streams a stored media file. Serving goes through the media
// store so the s3 backend works and directory listings are impossible.
func (s *Server) handleGetMedia(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "categoria")
	filename := chi.URLParam(r, "nombre")

	f, err := s.media.Open(r.Context(), category, filename)
	if errors.Is(err, mediastore.ErrNotExist) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("failed to open media file", "category", category, "filename", filename, "error", err)
		http.Error(w, "failed to open media file", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if _, err := io.Copy(w, f); err != nil {
		s.logger.Error("failed to stream media file", "filename", filename, "error", err)
	}
}
