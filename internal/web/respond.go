package web

import (
	"encoding/json"
	"net/http"

	"github.com/hvillega/mantenimiento-api/internal/store"
)

// envelope is the uniform success shape for every endpoint.
type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// apiError is the uniform error shape. Details carries either a string or a
// list of field errors.
type apiError struct {
	Message string `json:"message"`
	Details any    `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Status: "success", Data: data, Message: "Success"})
}

func writeNotFound(w http.ResponseWriter, entity string) {
	writeJSON(w, http.StatusNotFound, apiError{Message: entity + " not found"})
}

// writeStoreError classifies a store failure: constraint violations become
// 409, anything else is a generic 500.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	if store.IsConflict(err) {
		writeJSON(w, http.StatusConflict, apiError{Message: "integrity error", Details: err.Error()})
		return
	}
	s.logger.Error("unhandled store error", "error", err)
	writeJSON(w, http.StatusInternalServerError, apiError{Message: "unexpected error", Details: err.Error()})
}
