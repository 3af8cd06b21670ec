package domain

import "time"

// Report is the free-form maintenance report attached to a piece of
// equipment. It is persisted as a JSON text column; nil means no report.
type Report map[string]any

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}

type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"ubicacion"`
	CreatedAt time.Time `json:"created_at"`
}

// Campaign is a general-maintenance campaign for one client at one location.
type Campaign struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"cliente_id"`
	LocationID string    `json:"ubicacion_id"`
	Period     string    `json:"periodo"`
	CreatedAt  time.Time `json:"created_at"`
}

type Equipment struct {
	ID         string    `json:"id"`
	Label      string    `json:"equipo"`
	CreatedAt  time.Time `json:"created_at"`
	CampaignID string    `json:"mantenimiento_general_id"`
	Report     Report    `json:"reporte"`
}

type Photo struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Category    string    `json:"categoria"`
	URL         string    `json:"url"`
	Filename    string    `json:"nombre"`
	EquipmentID string    `json:"equipos_mantenimiento_id"`
}

// Patch types carry partial updates. A nil field was not present in the
// request and leaves the stored value untouched.

type ClientPatch struct {
	Name *string
}

type LocationPatch struct {
	Name *string
}

type CampaignPatch struct {
	ClientID   *string
	LocationID *string
	Period     *string
}

type EquipmentPatch struct {
	Label      *string
	CampaignID *string
	Report     *Report
}

type PhotoPatch struct {
	Category    *string
	URL         *string
	Filename    *string
	EquipmentID *string
}
