package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hvillega/mantenimiento-api/internal/domain"
)

type EquipmentStore struct {
	db *sql.DB
}

func NewEquipmentStore(db *sql.DB) *EquipmentStore {
	return &EquipmentStore{db: db}
}

// EquipmentParams holds the caller-supplied fields for a new piece of
// equipment. Report may be nil.
type EquipmentParams struct {
	Label      string
	CampaignID string
	Report     domain.Report
}

func (s *EquipmentStore) Create(ctx context.Context, params EquipmentParams) (*domain.Equipment, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	report, err := marshalReport(params.Report)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO equipos_mantenimiento (id, equipo, created_at, mantenimiento_general_id, reporte)
		VALUES (?, ?, ?, ?, ?)
	`, id, params.Label, now, params.CampaignID, report)
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", translateErr(err))
	}

	return s.GetByID(ctx, id)
}

func (s *EquipmentStore) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	var report sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, equipo, created_at, mantenimiento_general_id, reporte
		FROM equipos_mantenimiento WHERE id = ?
	`, id).Scan(&e.ID, &e.Label, &e.CreatedAt, &e.CampaignID, &report)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	if e.Report, err = unmarshalReport(report); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EquipmentStore) List(ctx context.Context, skip, limit int) ([]*domain.Equipment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, equipo, created_at, mantenimiento_general_id, reporte
		FROM equipos_mantenimiento ORDER BY rowid LIMIT ? OFFSET ?
	`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer rows.Close()

	equipment := []*domain.Equipment{}
	for rows.Next() {
		e := &domain.Equipment{}
		var report sql.NullString
		if err := rows.Scan(&e.ID, &e.Label, &e.CreatedAt, &e.CampaignID, &report); err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		if e.Report, err = unmarshalReport(report); err != nil {
			return nil, err
		}
		equipment = append(equipment, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating equipment: %w", err)
	}

	return equipment, nil
}

func (s *EquipmentStore) Update(ctx context.Context, id string, patch domain.EquipmentPatch) (*domain.Equipment, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return current, err
	}

	var sets []string
	var args []any
	if patch.Label != nil {
		sets = append(sets, "equipo = ?")
		args = append(args, *patch.Label)
	}
	if patch.CampaignID != nil {
		sets = append(sets, "mantenimiento_general_id = ?")
		args = append(args, *patch.CampaignID)
	}
	if patch.Report != nil {
		report, err := marshalReport(*patch.Report)
		if err != nil {
			return nil, err
		}
		sets = append(sets, "reporte = ?")
		args = append(args, report)
	}
	if len(sets) == 0 {
		return current, nil
	}

	args = append(args, id)
	_, err = s.db.ExecContext(ctx,
		"UPDATE equipos_mantenimiento SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update equipment: %w", translateErr(err))
	}

	return s.GetByID(ctx, id)
}

func (s *EquipmentStore) Delete(ctx context.Context, id string) (*domain.Equipment, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return current, err
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM equipos_mantenimiento WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete equipment: %w", translateErr(err))
	}

	return current, nil
}

func marshalReport(r domain.Report) (any, error) {
	if r == nil {
		return nil, nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return string(data), nil
}

func unmarshalReport(col sql.NullString) (domain.Report, error) {
	if !col.Valid {
		return nil, nil
	}
	var r domain.Report
	if err := json.Unmarshal([]byte(col.String), &r); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return r, nil
}
