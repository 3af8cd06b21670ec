package web

import (
	"net/http"
	"strings"

	"github.com/hvillega/mantenimiento-api/internal/domain"
	"github.com/hvillega/mantenimiento-api/internal/store"
)

type mantenimientoCreateRequest struct {
	ClientID   string `json:"cliente_id"`
	LocationID string `json:"ubicacion_id"`
	Period     string `json:"periodo"`
}

type mantenimientoUpdateRequest struct {
	ClientID   *string `json:"cliente_id"`
	LocationID *string `json:"ubicacion_id"`
	Period     *string `json:"periodo"`
}

func (s *Server) handleListMantenimientos(w http.ResponseWriter, r *http.Request) {
	skip, limit, fields := pagination(r)
	if len(fields) > 0 {
		writeValidationError(w, fields...)
		return
	}

	campaigns, err := s.campaigns.List(r.Context(), skip, limit)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, campaigns)
}

func (s *Server) handleGetMantenimiento(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	campaign, err := s.campaigns.GetByID(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if campaign == nil {
		writeNotFound(w, "mantenimiento_general")
		return
	}
	writeSuccess(w, http.StatusOK, campaign)
}

func (s *Server) handleCreateMantenimiento(w http.ResponseWriter, r *http.Request) {
	var req mantenimientoCreateRequest
	if ferr := decodeJSON(r, &req); ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	var fields []fieldError
	clientID, ferr := checkUUID("cliente_id", req.ClientID)
	if ferr != nil {
		fields = append(fields, *ferr)
	}
	locationID, ferr := checkUUID("ubicacion_id", req.LocationID)
	if ferr != nil {
		fields = append(fields, *ferr)
	}
	if strings.TrimSpace(req.Period) == "" {
		fields = append(fields, fieldError{Field: "periodo", Message: "is required"})
	}
	if len(fields) > 0 {
		writeValidationError(w, fields...)
		return
	}

	campaign, err := s.campaigns.Create(r.Context(), store.CampaignParams{
		ClientID:   clientID,
		LocationID: locationID,
		Period:     req.Period,
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, campaign)
}

func (s *Server) handleUpdateMantenimiento(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	var req mantenimientoUpdateRequest
	if ferr := decodeJSON(r, &req); ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	var fields []fieldError
	patch := domain.CampaignPatch{Period: req.Period}
	if req.ClientID != nil {
		clientID, ferr := checkUUID("cliente_id", *req.ClientID)
		if ferr != nil {
			fields = append(fields, *ferr)
		} else {
			patch.ClientID = &clientID
		}
	}
	if req.LocationID != nil {
		locationID, ferr := checkUUID("ubicacion_id", *req.LocationID)
		if ferr != nil {
			fields = append(fields, *ferr)
		} else {
			patch.LocationID = &locationID
		}
	}
	if req.Period != nil && strings.TrimSpace(*req.Period) == "" {
		fields = append(fields, fieldError{Field: "periodo", Message: "is required"})
	}
	if len(fields) > 0 {
		writeValidationError(w, fields...)
		return
	}

	campaign, err := s.campaigns.Update(r.Context(), id, patch)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if campaign == nil {
		writeNotFound(w, "mantenimiento_general")
		return
	}
	writeSuccess(w, http.StatusOK, campaign)
}

func (s *Server) handleDeleteMantenimiento(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	campaign, err := s.campaigns.Delete(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if campaign == nil {
		writeNotFound(w, "mantenimiento_general")
		return
	}
	writeSuccess(w, http.StatusOK, campaign)
}
