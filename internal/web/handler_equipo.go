package web

import (
	"net/http"

	"github.com/hvillega/mantenimiento-api/internal/domain"
	"github.com/hvillega/mantenimiento-api/internal/store"
)

const (
	minEquipmentLabelLen = 3
	maxEquipmentLabelLen = 50
)

type equipoCreateRequest struct {
	Label      string         `json:"equipo"`
	CampaignID string         `json:"mantenimiento_general_id"`
	Report     *domain.Report `json:"reporte"`
}

type equipoUpdateRequest struct {
	Label      *string        `json:"equipo"`
	CampaignID *string        `json:"mantenimiento_general_id"`
	Report     *domain.Report `json:"reporte"`
}

func (s *Server) handleListEquipos(w http.ResponseWriter, r *http.Request) {
	skip, limit, fields := pagination(r)
	if len(fields) > 0 {
		writeValidationError(w, fields...)
		return
	}

	equipment, err := s.equipment.List(r.Context(), skip, limit)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, equipment)
}

func (s *Server) handleGetEquipo(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	equipment, err := s.equipment.GetByID(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if equipment == nil {
		writeNotFound(w, "equipo_mantenimiento")
		return
	}
	writeSuccess(w, http.StatusOK, equipment)
}

func (s *Server) handleCreateEquipo(w http.ResponseWriter, r *http.Request) {
	var req equipoCreateRequest
	if ferr := decodeJSON(r, &req); ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	var fields []fieldError
	if ferr := checkLength("equipo", req.Label, minEquipmentLabelLen, maxEquipmentLabelLen); ferr != nil {
		fields = append(fields, *ferr)
	}
	campaignID, ferr := checkUUID("mantenimiento_general_id", req.CampaignID)
	if ferr != nil {
		fields = append(fields, *ferr)
	}
	if len(fields) > 0 {
		writeValidationError(w, fields...)
		return
	}

	params := store.EquipmentParams{
		Label:      req.Label,
		CampaignID: campaignID,
	}
	if req.Report != nil {
		params.Report = *req.Report
	}

	equipment, err := s.equipment.Create(r.Context(), params)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, equipment)
}

func (s *Server) handleUpdateEquipo(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	var req equipoUpdateRequest
	if ferr := decodeJSON(r, &req); ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	var fields []fieldError
	patch := domain.EquipmentPatch{Label: req.Label, Report: req.Report}
	if req.Label != nil {
		if ferr := checkLength("equipo", *req.Label, minEquipmentLabelLen, maxEquipmentLabelLen); ferr != nil {
			fields = append(fields, *ferr)
		}
	}
	if req.CampaignID != nil {
		campaignID, ferr := checkUUID("mantenimiento_general_id", *req.CampaignID)
		if ferr != nil {
			fields = append(fields, *ferr)
		} else {
			patch.CampaignID = &campaignID
		}
	}
	if len(fields) > 0 {
		writeValidationError(w, fields...)
		return
	}

	equipment, err := s.equipment.Update(r.Context(), id, patch)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if equipment == nil {
		writeNotFound(w, "equipo_mantenimiento")
		return
	}
	writeSuccess(w, http.StatusOK, equipment)
}

func (s *Server) handleDeleteEquipo(w http.ResponseWriter, r *http.Request) {
	id, ferr := pathID(r)
	if ferr != nil {
		writeValidationError(w, *ferr)
		return
	}

	equipment, err := s.equipment.Delete(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if equipment == nil {
		writeNotFound(w, "equipo_mantenimiento")
		return
	}
	writeSuccess(w, http.StatusOK, equipment)
}
