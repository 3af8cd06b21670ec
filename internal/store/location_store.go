package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hvillega/mantenimiento-api/internal/domain"
)

type LocationStore struct {
	db *sql.DB
}

func NewLocationStore(db *sql.DB) *LocationStore {
	return &LocationStore{db: db}
}

func (s *LocationStore) Create(ctx context.Context, name string) (*domain.Location, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ubicaciones (id, ubicacion, created_at) VALUES (?, ?, ?)
	`, id, name, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create location: %w", translateErr(err))
	}

	return s.GetByID(ctx, id)
}

func (s *LocationStore) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	l := &domain.Location{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, ubicacion, created_at FROM ubicaciones WHERE id = ?
	`, id).Scan(&l.ID, &l.Name, &l.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return l, nil
}

func (s *LocationStore) List(ctx context.Context, skip, limit int) ([]*domain.Location, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ubicacion, created_at FROM ubicaciones ORDER BY rowid LIMIT ? OFFSET ?
	`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := []*domain.Location{}
	for rows.Next() {
		l := &domain.Location{}
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}

	return locations, nil
}

func (s *LocationStore) Update(ctx context.Context, id string, patch domain.LocationPatch) (*domain.Location, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return current, err
	}

	if patch.Name == nil {
		return current, nil
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE ubicaciones SET ubicacion = ? WHERE id = ?
	`, *patch.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update location: %w", translateErr(err))
	}

	return s.GetByID(ctx, id)
}

func (s *LocationStore) Delete(ctx context.Context, id string) (*domain.Location, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return current, err
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM ubicaciones WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete location: %w", translateErr(err))
	}

	return current, nil
}
