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

type PhotoStore struct {
	db *sql.DB
}

func NewPhotoStore(db *sql.DB) *PhotoStore {
	return &PhotoStore{db: db}
}

// PhotoParams holds the caller-supplied fields for a new photo record.
type PhotoParams struct {
	Category    string
	URL         string
	Filename    string
	EquipmentID string
}

func (s *PhotoStore) Create(ctx context.Context, params PhotoParams) (*domain.Photo, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fotos_mantenimiento (id, created_at, categoria, url, nombre, equipos_mantenimiento_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, now, params.Category, params.URL, params.Filename, params.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", translateErr(err))
	}

	return s.GetByID(ctx, id)
}

func (s *PhotoStore) GetByID(ctx context.Context, id string) (*domain.Photo, error) {
	p := &domain.Photo{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, categoria, url, nombre, equipos_mantenimiento_id
		FROM fotos_mantenimiento WHERE id = ?
	`, id).Scan(&p.ID, &p.CreatedAt, &p.Category, &p.URL, &p.Filename, &p.EquipmentID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return p, nil
}

func (s *PhotoStore) List(ctx context.Context, skip, limit int) ([]*domain.Photo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, categoria, url, nombre, equipos_mantenimiento_id
		FROM fotos_mantenimiento ORDER BY rowid LIMIT ? OFFSET ?
	`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	photos := []*domain.Photo{}
	for rows.Next() {
		p := &domain.Photo{}
		if err := rows.Scan(&p.ID, &p.CreatedAt, &p.Category, &p.URL, &p.Filename, &p.EquipmentID); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photos: %w", err)
	}

	return photos, nil
}

func (s *PhotoStore) Update(ctx context.Context, id string, patch domain.PhotoPatch) (*domain.Photo, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return current, err
	}

	var sets []string
	var args []any
	if patch.Category != nil {
		sets = append(sets, "categoria = ?")
		args = append(args, *patch.Category)
	}
	if patch.URL != nil {
		sets = append(sets, "url = ?")
		args = append(args, *patch.URL)
	}
	if patch.Filename != nil {
		sets = append(sets, "nombre = ?")
		args = append(args, *patch.Filename)
	}
	if patch.EquipmentID != nil {
		sets = append(sets, "equipos_mantenimiento_id = ?")
		args = append(args, *patch.EquipmentID)
	}
	if len(sets) == 0 {
		return current, nil
	}

	args = append(args, id)
	_, err = s.db.ExecContext(ctx,
		"UPDATE fotos_mantenimiento SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update photo: %w", translateErr(err))
	}

	return s.GetByID(ctx, id)
}

func (s *PhotoStore) Delete(ctx context.Context, id string) (*domain.Photo, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return current, err
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM fotos_mantenimiento WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete photo: %w", translateErr(err))
	}

	return current, nil
}
