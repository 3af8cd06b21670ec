package service

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvillega/mantenimiento-api/internal/db"
	"github.com/hvillega/mantenimiento-api/internal/mediastore/local"
	"github.com/hvillega/mantenimiento-api/internal/store"
)

func newTestService(t *testing.T) (*PhotoService, *sql.DB, string) {
	t.Helper()

	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	mediaPath := t.TempDir()
	media, err := local.NewLocalMediaStore(mediaPath)
	require.NoError(t, err)

	svc := NewPhotoService(store.NewPhotoStore(d), media, slog.Default())
	return svc, d, mediaPath
}

func seedEquipment(t *testing.T, d *sql.DB) string {
	t.Helper()
	ctx := context.Background()

	client, err := store.NewClientStore(d).Create(ctx, "Acme")
	require.NoError(t, err)
	location, err := store.NewLocationStore(d).Create(ctx, "Planta Sur")
	require.NoError(t, err)
	campaign, err := store.NewCampaignStore(d).Create(ctx, store.CampaignParams{
		ClientID:   client.ID,
		LocationID: location.ID,
		Period:     "2026-08",
	})
	require.NoError(t, err)
	equipment, err := store.NewEquipmentStore(d).Create(ctx, store.EquipmentParams{
		Label:      "Caldera",
		CampaignID: campaign.ID,
	})
	require.NoError(t, err)
	return equipment.ID
}

func TestUploadCreatesFileAndRecord(t *testing.T) {
	svc, d, mediaPath := newTestService(t)
	ctx := context.Background()

	equipmentID := seedEquipment(t, d)
	payload := []byte("jpeg bytes here")

	photo, err := svc.Upload(ctx, "caldera", equipmentID, "photo.PNG", payload)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/media/caldera/[0-9a-f-]{36}\.PNG$`), photo.URL)
	assert.Equal(t, "caldera", photo.Category)
	assert.Equal(t, equipmentID, photo.EquipmentID)

	got, err := os.ReadFile(filepath.Join(mediaPath, "caldera", photo.Filename))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestUploadNoExtension(t *testing.T) {
	svc, d, _ := newTestService(t)

	equipmentID := seedEquipment(t, d)
	photo, err := svc.Upload(context.Background(), "bomba", equipmentID, "snapshot", []byte("x"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^/media/bomba/[0-9a-f-]{36}$`), photo.URL)
}

// An upload for nonexistent equipment must surface the conflict and leave no
// orphan file behind.
func TestUploadUnknownEquipmentCleansUpFile(t *testing.T) {
	svc, _, mediaPath := newTestService(t)

	_, err := svc.Upload(context.Background(), "caldera", "no-such-equipment", "photo.jpg", []byte("x"))
	require.Error(t, err)
	assert.True(t, store.IsConflict(err))

	entries, err := os.ReadDir(filepath.Join(mediaPath, "caldera"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteRemovesRowAndFile(t *testing.T) {
	svc, d, mediaPath := newTestService(t)
	ctx := context.Background()

	equipmentID := seedEquipment(t, d)
	photo, err := svc.Upload(ctx, "caldera", equipmentID, "photo.jpg", []byte("x"))
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, photo.ID)
	require.NoError(t, err)
	assert.Equal(t, photo.ID, deleted.ID)

	_, err = os.Stat(filepath.Join(mediaPath, "caldera", photo.Filename))
	assert.True(t, os.IsNotExist(err))

	row, err := store.NewPhotoStore(d).GetByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestDeleteToleratesMissingFile(t *testing.T) {
	svc, d, mediaPath := newTestService(t)
	ctx := context.Background()

	equipmentID := seedEquipment(t, d)
	photo, err := svc.Upload(ctx, "caldera", equipmentID, "photo.jpg", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(mediaPath, "caldera", photo.Filename)))

	deleted, err := svc.Delete(ctx, photo.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	row, err := store.NewPhotoStore(d).GetByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestDeleteMissingPhoto(t *testing.T) {
	svc, _, _ := newTestService(t)

	deleted, err := svc.Delete(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, deleted)
}
