package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hvillega/mantenimiento-api/internal/domain"
)

type CampaignStore struct {
	db *sql.DB
}

func NewCampaignStore(db *sql.DB) *CampaignStore {
	return &CampaignStore{db: db}
}

// CampaignParams holds the caller-supplied fields for a new campaign.
type CampaignParams struct {
	ClientID   string
	LocationID string
	Period     string
}

func (s *CampaignStore) Create(ctx context.Context, params CampaignParams) (*domain.Campaign, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO mantenimientos_generales (id, cliente_id, ubicacion_id, periodo, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, params.ClientID, params.LocationID, params.Period, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", translateErr(err))
	}

	return s.GetByID(ctx, id)
}

func (s *CampaignStore) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	c := &domain.Campaign{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, cliente_id, ubicacion_id, periodo, created_at
		FROM mantenimientos_generales WHERE id = ?
	`, id).Scan(&c.ID, &c.ClientID, &c.LocationID, &c.Period, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return c, nil
}

func (s *CampaignStore) List(ctx context.Context, skip, limit int) ([]*domain.Campaign, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, cliente_id, ubicacion_id, periodo, created_at
		FROM mantenimientos_generales ORDER BY rowid LIMIT ? OFFSET ?
	`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []*domain.Campaign{}
	for rows.Next() {
		c := &domain.Campaign{}
		if err := rows.Scan(&c.ID, &c.ClientID, &c.LocationID, &c.Period, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating campaigns: %w", err)
	}

	return campaigns, nil
}

func (s *CampaignStore) Update(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return current, err
	}

	var sets []string
	var args []any
	if patch.ClientID != nil {
		sets = append(sets, "cliente_id = ?")
		args = append(args, *patch.ClientID)
	}
	if patch.LocationID != nil {
		sets = append(sets, "ubicacion_id = ?")
		args = append(args, *patch.LocationID)
	}
	if patch.Period != nil {
		sets = append(sets, "periodo = ?")
		args = append(args, *patch.Period)
	}
	if len(sets) == 0 {
		return current, nil
	}

	args = append(args, id)
	_, err = s.db.ExecContext(ctx,
		"UPDATE mantenimientos_generales SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", translateErr(err))
	}

	return s.GetByID(ctx, id)
}

func (s *CampaignStore) Delete(ctx context.Context, id string) (*domain.Campaign, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return current, err
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM mantenimientos_generales WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete campaign: %w", translateErr(err))
	}

	return current, nil
}
