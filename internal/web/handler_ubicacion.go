package web

import (
	"net/http"
	"strings"

	"github.com/hvillega/mantenimiento-api/internal/domain"
)

type ubicacionCreateRequest struct {
	Name string `json:"ubicacion"`
}

type ubicacionUpdateRequest struct {
	Name *string `json:"ubicacion"`
}

func (s *Server) handleListUbicaciones(w http.ResponseWriter, r *http.Request) {
	skip, limit, fields := pagination(r)
	if len(fields) > 0 {
		writeValidationError(w, fields...)
		return
	}

	locations, err := s.locations.List(r.Context(), skip, limit)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, locations)
}

func (s *Server) handleGetUbicacion(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	location, err := s.locations.GetByID(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if location == nil {
		writeNotFound(w, "ubicacion")
		return
	}
	writeSuccess(w, http.StatusOK, location)
}

func (s *Server) handleCreateUbicacion(w http.ResponseWriter, r *http.Request) {
	var req ubicacionCreateRequest
	if ferr := decodeJSON(r, &req); ferr != nil {
		writeValidationError(w, *ferr)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeValidationError(w, fieldError{Field: "ubicacion", Message: "is required"})
		return
	}

	location, err := s.locations.Create(r.Context(), req.Name)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, location)
}

func (s *Server) handleUpdateUbicacion(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	var req ubicacionUpdateRequest
	if ferr := decodeJSON(r, &req); ferr != nil {
		writeValidationError(w, *ferr)
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeValidationError(w, fieldError{Field: "ubicacion", Message: "is required"})
		return
	}

	location, err := s.locations.Update(r.Context(), id, domain.LocationPatch{Name: req.Name})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if location == nil {
		writeNotFound(w, "ubicacion")
		return
	}
	writeSuccess(w, http.StatusOK, location)
}

func (s *Server) handleDeleteUbicacion(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	location, err := s.locations.Delete(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if location == nil {
		writeNotFound(w, "ubicacion")
		return
	}
	writeSuccess(w, http.StatusOK, location)
}
