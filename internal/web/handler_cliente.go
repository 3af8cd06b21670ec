package web

import (
	"net/http"

	"github.com/hvillega/mantenimiento-api/internal/domain"
)

const maxClientNameLen = 100

type clienteCreateRequest struct {
	Name string `json:"nombre"`
}

type clienteUpdateRequest struct {
	Name *string `json:"nombre"`
}

func (s *Server) handleListClientes(w http.ResponseWriter, r *http.Request) {
	skip, limit, fields := pagination(r)
	if len(fields) > 0 {
		writeValidationError(w, fields...)
		return
	}

	clients, err := s.clients.List(r.Context(), skip, limit)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, clients)
}

func (s *Server) handleGetCliente(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	client, err := s.clients.GetByID(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if client == nil {
		writeNotFound(w, "cliente")
		return
	}
	writeSuccess(w, http.StatusOK, client)
}

func (s *Server) handleCreateCliente(w http.ResponseWriter, r *http.Request) {
	var req clienteCreateRequest
	if ferr := decodeJSON(r, &req); ferr != nil {
		writeValidationError(w, *ferr)
		return
	}
	if ferr := checkLength("nombre", req.Name, 1, maxClientNameLen); ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	client, err := s.clients.Create(r.Context(), req.Name)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, client)
}

func (s *Server) handleUpdateCliente(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	var req clienteUpdateRequest
	if ferr := decodeJSON(r, &req); ferr != nil {
		writeValidationError(w, *ferr)
		return
	}
	if req.Name != nil {
		if ferr := checkLength("nombre", *req.Name, 1, maxClientNameLen); ferr != nil {
			writeValidationError(w, *ferr)
			return
		}
	}

	client, err := s.clients.Update(r.Context(), id, domain.ClientPatch{Name: req.Name})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if client == nil {
		writeNotFound(w, "cliente")
		return
	}
	writeSuccess(w, http.StatusOK, client)
}

func (s *Server) handleDeleteCliente(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	client, err := s.clients.Delete(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if client == nil {
		writeNotFound(w, "cliente")
		return
	}
	writeSuccess(w, http.StatusOK, client)
}
