package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/hvillega/mantenimiento-api/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	d, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	// A second pool connection would see its own empty in-memory database.
	d.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = d.Close() })

	// Create tables manually for test
	_, err = d.Exec(`
		CREATE TABLE clientes (
			id         TEXT PRIMARY KEY,
			nombre     TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE ubicaciones (
			id         TEXT PRIMARY KEY,
			ubicacion  TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE mantenimientos_generales (
			id           TEXT PRIMARY KEY,
			cliente_id   TEXT NOT NULL REFERENCES clientes(id),
			ubicacion_id TEXT NOT NULL REFERENCES ubicaciones(id),
			periodo      TEXT NOT NULL,
			created_at   DATETIME NOT NULL
		);

		CREATE TABLE equipos_mantenimiento (
			id                       TEXT PRIMARY KEY,
			equipo                   TEXT NOT NULL,
			created_at               DATETIME NOT NULL,
			mantenimiento_general_id TEXT NOT NULL REFERENCES mantenimientos_generales(id),
			reporte                  TEXT
		);

		CREATE TABLE fotos_mantenimiento (
			id                       TEXT PRIMARY KEY,
			created_at               DATETIME NOT NULL,
			categoria                TEXT NOT NULL,
			url                      TEXT NOT NULL,
			nombre                   TEXT NOT NULL,
			equipos_mantenimiento_id TEXT NOT NULL REFERENCES equipos_mantenimiento(id)
		);
	`)
	require.NoError(t, err)

	return d
}

// createTestCampaign inserts a client, a location, and a campaign, returning
// the campaign id. Used by the equipment and photo store tests.
func createTestCampaign(t *testing.T, d *sql.DB) string {
	t.Helper()
	ctx := context.Background()

	client, err := NewClientStore(d).Create(ctx, "Industrias Delta")
	require.NoError(t, err)
	location, err := NewLocationStore(d).Create(ctx, "Planta Sur")
	require.NoError(t, err)

	campaign, err := NewCampaignStore(d).Create(ctx, CampaignParams{
		ClientID:   client.ID,
		LocationID: location.ID,
		Period:     "2026-08",
	})
	require.NoError(t, err)
	return campaign.ID
}

func TestClientStoreCreate(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)
	ctx := context.Background()

	client, err := store.Create(ctx, "Acme")
	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.Equal(t, "Acme", client.Name)
	assert.False(t, client.CreatedAt.IsZero())
}

func TestClientStoreCreateDuplicateName(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)
	ctx := context.Background()

	_, err := store.Create(ctx, "Acme")
	require.NoError(t, err)

	_, err = store.Create(ctx, "Acme")
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestClientStoreGetByID(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)
	ctx := context.Background()

	created, err := store.Create(ctx, "Servicios Norte")
	require.NoError(t, err)

	retrieved, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, retrieved.ID)
	assert.Equal(t, created.Name, retrieved.Name)
}

func TestClientStoreGetByIDMissing(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)

	retrieved, err := store.GetByID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, retrieved)
}

func TestClientStoreListPagination(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)
	ctx := context.Background()

	for _, name := range []string{"Uno", "Dos", "Tres"} {
		_, err := store.Create(ctx, name)
		require.NoError(t, err)
	}

	page, err := store.List(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Uno", page[0].Name)
	assert.Equal(t, "Dos", page[1].Name)

	page, err = store.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Tres", page[0].Name)
}

func TestClientStoreListEmpty(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)

	clients, err := store.List(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestClientStoreUpdate(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)
	ctx := context.Background()

	created, err := store.Create(ctx, "Antes")
	require.NoError(t, err)

	name := "Despues"
	updated, err := store.Update(ctx, created.ID, domain.ClientPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Despues", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestClientStoreUpdateEmptyPatch(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)
	ctx := context.Background()

	created, err := store.Create(ctx, "Sin cambios")
	require.NoError(t, err)

	updated, err := store.Update(ctx, created.ID, domain.ClientPatch{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestClientStoreUpdateMissing(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)

	name := "Nadie"
	updated, err := store.Update(context.Background(), "no-such-id", domain.ClientPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestClientStoreUpdateDuplicateName(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)
	ctx := context.Background()

	_, err := store.Create(ctx, "Acme")
	require.NoError(t, err)
	other, err := store.Create(ctx, "Globex")
	require.NoError(t, err)

	name := "Acme"
	_, err = store.Update(ctx, other.ID, domain.ClientPatch{Name: &name})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestClientStoreDelete(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)
	ctx := context.Background()

	created, err := store.Create(ctx, "Temporal")
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	retrieved, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, retrieved)
}

func TestClientStoreDeleteMissing(t *testing.T) {
	d := openTestDB(t)
	store := NewClientStore(d)

	deleted, err := store.Delete(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, deleted)
}
