package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvillega/mantenimiento-api/internal/domain"
)

func TestEquipmentStoreCreateWithReport(t *testing.T) {
	d := openTestDB(t)
	store := NewEquipmentStore(d)
	ctx := context.Background()

	campaignID := createTestCampaign(t, d)

	created, err := store.Create(ctx, EquipmentParams{
		Label:      "Bomba centrifuga",
		CampaignID: campaignID,
		Report:     domain.Report{"presion": "2.5 bar", "horas": float64(1200)},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Bomba centrifuga", created.Label)
	assert.Equal(t, domain.Report{"presion": "2.5 bar", "horas": float64(1200)}, created.Report)
}

func TestEquipmentStoreCreateWithoutReport(t *testing.T) {
	d := openTestDB(t)
	store := NewEquipmentStore(d)
	ctx := context.Background()

	campaignID := createTestCampaign(t, d)

	created, err := store.Create(ctx, EquipmentParams{
		Label:      "Compresor",
		CampaignID: campaignID,
	})
	require.NoError(t, err)
	assert.Nil(t, created.Report)
}

func TestEquipmentStoreCreateUnknownCampaign(t *testing.T) {
	d := openTestDB(t)
	store := NewEquipmentStore(d)

	_, err := store.Create(context.Background(), EquipmentParams{
		Label:      "Ventilador",
		CampaignID: "no-such-campaign",
	})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestEquipmentStoreUpdateLabelOnly(t *testing.T) {
	d := openTestDB(t)
	store := NewEquipmentStore(d)
	ctx := context.Background()

	campaignID := createTestCampaign(t, d)
	created, err := store.Create(ctx, EquipmentParams{
		Label:      "Caldera",
		CampaignID: campaignID,
		Report:     domain.Report{"estado": "ok"},
	})
	require.NoError(t, err)

	label := "Caldera auxiliar"
	updated, err := store.Update(ctx, created.ID, domain.EquipmentPatch{Label: &label})
	require.NoError(t, err)
	assert.Equal(t, "Caldera auxiliar", updated.Label)
	assert.Equal(t, created.CampaignID, updated.CampaignID)
	assert.Equal(t, created.Report, updated.Report)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestEquipmentStoreUpdateReport(t *testing.T) {
	d := openTestDB(t)
	store := NewEquipmentStore(d)
	ctx := context.Background()

	campaignID := createTestCampaign(t, d)
	created, err := store.Create(ctx, EquipmentParams{
		Label:      "Torre de enfriamiento",
		CampaignID: campaignID,
	})
	require.NoError(t, err)

	report := domain.Report{"presion": "3.0 bar"}
	updated, err := store.Update(ctx, created.ID, domain.EquipmentPatch{Report: &report})
	require.NoError(t, err)
	assert.Equal(t, report, updated.Report)
	assert.Equal(t, created.Label, updated.Label)
}

func TestEquipmentStoreListPagination(t *testing.T) {
	d := openTestDB(t)
	store := NewEquipmentStore(d)
	ctx := context.Background()

	campaignID := createTestCampaign(t, d)
	for _, label := range []string{"Equipo A", "Equipo B", "Equipo C"} {
		_, err := store.Create(ctx, EquipmentParams{Label: label, CampaignID: campaignID})
		require.NoError(t, err)
	}

	page, err := store.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Equipo B", page[0].Label)
	assert.Equal(t, "Equipo C", page[1].Label)
}

func TestEquipmentStoreDeleteReferenced(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	campaignID := createTestCampaign(t, d)
	equipment, err := NewEquipmentStore(d).Create(ctx, EquipmentParams{
		Label:      "Generador",
		CampaignID: campaignID,
	})
	require.NoError(t, err)

	_, err = NewPhotoStore(d).Create(ctx, PhotoParams{
		Category:    "caldera",
		URL:         "/media/caldera/foto.jpg",
		Filename:    "foto.jpg",
		EquipmentID: equipment.ID,
	})
	require.NoError(t, err)

	_, err = NewEquipmentStore(d).Delete(ctx, equipment.ID)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}
