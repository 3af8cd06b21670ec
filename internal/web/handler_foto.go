package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/hvillega/mantenimiento-api/internal/domain"
	"github.com/hvillega/mantenimiento-api/internal/store"
)

type fotoCreateRequest struct {
	Category    string `json:"categoria"`
	URL         string `json:"url"`
	Filename    string `json:"nombre"`
	EquipmentID string `json:"equipos_mantenimiento_id"`
}

type fotoUpdateRequest struct {
	Category    *string `json:"categoria"`
	URL         *string `json:"url"`
	Filename    *string `json:"nombre"`
	EquipmentID *string `json:"equipos_mantenimiento_id"`
}

// fotoUploadData is the reduced payload returned by the upload endpoint.
type fotoUploadData struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Category string `json:"categoria"`
	Filename string `json:"nombre"`
}

func (s *Server) handleListFotos(w http.ResponseWriter, r *http.Request) {
	skip, limit, fields := pagination(r)
	if len(fields) > 0 {
		writeValidationError(w, fields...)
		return
	}

	photos, err := s.photos.List(r.Context(), skip, limit)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, photos)
}

func (s *Server) handleGetFoto(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	photo, err := s.photos.GetByID(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if photo == nil {
		writeNotFound(w, "foto_mantenimiento")
		return
	}
	writeSuccess(w, http.StatusOK, photo)
}

func (s *Server) handleCreateFoto(w http.ResponseWriter, r *http.Request) {
	var req fotoCreateRequest
	if ferr := decodeJSON(r, &req); ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	var fields []fieldError
	for _, f := range []struct{ name, value string }{
		{"categoria", req.Category},
		{"url", req.URL},
		{"nombre", req.Filename},
	} {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, fieldError{Field: f.name, Message: "is required"})
		}
	}
	equipmentID, ferr := checkUUID("equipos_mantenimiento_id", req.EquipmentID)
	if ferr != nil {
		fields = append(fields, *ferr)
	}
	if len(fields) > 0 {
		writeValidationError(w, fields...)
		return
	}

	photo, err := s.photos.Create(r.Context(), store.PhotoParams{
		Category:    req.Category,
		URL:         req.URL,
		Filename:    req.Filename,
		EquipmentID: equipmentID,
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, photo)
}

func (s *Server) handleUpdateFoto(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	var req fotoUpdateRequest
	if ferr := decodeJSON(r, &req); ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	patch := domain.PhotoPatch{
		Category: req.Category,
		URL:      req.URL,
		Filename: req.Filename,
	}
	if req.EquipmentID != nil {
		equipmentID, ferr := checkUUID("equipos_mantenimiento_id", *req.EquipmentID)
		if ferr != nil {
			writeValidationError(w, *ferr)
			return
		}
		patch.EquipmentID = &equipmentID
	}

	photo, err := s.photos.Update(r.Context(), id, patch)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if photo == nil {
		writeNotFound(w, "foto_mantenimiento")
		return
	}
	writeSuccess(w, http.StatusOK, photo)
}

// handleDeleteFoto goes through the photo service so the stored file is
// removed along with the row.
func (s *Server) handleDeleteFoto(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	photo, err := s.photoSvc.Delete(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if photo == nil {
		writeNotFound(w, "foto_mantenimiento")
		return
	}
	writeSuccess(w, http.StatusOK, photo)
}

func (s *Server) handleUploadFoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeValidationError(w, fieldError{Field: "body", Message: "invalid multipart form"})
		return
	}

	var fields []fieldError
	category := strings.TrimSpace(r.FormValue("categoria"))
	switch {
	case category == "":
		fields = append(fields, fieldError{Field: "categoria", Message: "is required"})
	case strings.ContainsAny(category, "/\\") || category == "." || category == "..":
		fields = append(fields, fieldError{Field: "categoria", Message: "must not contain path separators"})
	}

	equipmentID, ferr := checkUUID("equipos_mantenimiento_id", r.FormValue("equipos_mantenimiento_id"))
	if ferr != nil {
		fields = append(fields, *ferr)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		fields = append(fields, fieldError{Field: "file", Message: "is required"})
	}
	if len(fields) > 0 {
		writeValidationError(w, fields...)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("failed to read upload", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Message: "unexpected error", Details: "failed to read uploaded file"})
		return
	}

	photo, err := s.photoSvc.Upload(r.Context(), category, equipmentID, header.Filename, data)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, fotoUploadData{
		ID:       photo.ID,
		URL:      photo.URL,
		Category: photo.Category,
		Filename: photo.Filename,
	})
}
