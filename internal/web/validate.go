package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// fieldError is one entry in a 422 response's details list.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeValidationError(w http.ResponseWriter, fields ...fieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, apiError{Message: "validation error", Details: fields})
}

// decodeJSON decodes the request body into dst, returning a field error for
// malformed JSON.
func decodeJSON(r *http.Request, dst any) *fieldError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &fieldError{Field: "body", Message: "invalid JSON body"}
	}
	return nil
}

// pathID extracts and canonicalizes the {id} path parameter.
func pathID(r *http.Request) (string, *fieldError) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", &fieldError{Field: "id", Message: "must be a valid UUID"}
	}
	return id.String(), nil
}

// checkUUID validates a body/form field expected to hold a UUID, returning
// the canonical form.
func checkUUID(field, value string) (string, *fieldError) {
	if value == "" {
		return "", &fieldError{Field: field, Message: "is required"}
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return "", &fieldError{Field: field, Message: "must be a valid UUID"}
	}
	return id.String(), nil
}

func checkLength(field, value string, min, max int) *fieldError {
	if len(value) < min {
		if value == "" {
			return &fieldError{Field: field, Message: "is required"}
		}
		return &fieldError{Field: field, Message: "must be at least " + strconv.Itoa(min) + " characters"}
	}
	if len(value) > max {
		return &fieldError{Field: field, Message: "must be at most " + strconv.Itoa(max) + " characters"}
	}
	return nil
}

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// pagination parses the skip/limit query parameters, applying the shared
// defaults.
func pagination(r *http.Request) (skip, limit int, fields []fieldError) {
	skip, limit = defaultSkip, defaultLimit

	if raw := r.URL.Query().Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fields = append(fields, fieldError{Field: "skip", Message: "must be a non-negative integer"})
		} else {
			skip = n
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			fields = append(fields, fieldError{Field: "limit", Message: "must be a positive integer"})
		} else {
			limit = n
		}
	}
	return skip, limit, fields
}
