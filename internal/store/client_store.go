package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hvillega/mantenimiento-api/internal/domain"
)

type ClientStore struct {
	db *sql.DB
}

func NewClientStore(db *sql.DB) *ClientStore {
	return &ClientStore{db: db}
}

func (s *ClientStore) Create(ctx context.Context, name string) (*domain.Client, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clientes (id, nombre, created_at) VALUES (?, ?, ?)
	`, id, name, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", translateErr(err))
	}

	return s.GetByID(ctx, id)
}

func (s *ClientStore) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	c := &domain.Client{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, nombre, created_at FROM clientes WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

// List returns up to limit clients in insertion order after skipping skip.
func (s *ClientStore) List(ctx context.Context, skip, limit int) ([]*domain.Client, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, nombre, created_at FROM clientes ORDER BY rowid LIMIT ? OFFSET ?
	`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := []*domain.Client{}
	for rows.Next() {
		c := &domain.Client{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}

// Update applies the fields present in patch. It returns nil for a missing id.
func (s *ClientStore) Update(ctx context.Context, id string, patch domain.ClientPatch) (*domain.Client, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return current, err
	}

	if patch.Name == nil {
		return current, nil
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE clientes SET nombre = ? WHERE id = ?
	`, *patch.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", translateErr(err))
	}

	return s.GetByID(ctx, id)
}

// Delete removes the client and returns the deleted row, or nil for a
// missing id.
func (s *ClientStore) Delete(ctx context.Context, id string) (*domain.Client, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return current, err
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM clientes WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete client: %w", translateErr(err))
	}

	return current, nil
}
