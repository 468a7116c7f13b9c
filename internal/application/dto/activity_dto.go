package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateActivityRequest alta de actividad (nace en draft).
type CreateActivityRequest struct {
	Name           string          `json:"name"`
	ProfileID      string          `json:"profile_id"`
	Date           time.Time       `json:"date"`
	Hours          float64         `json:"hours"`
	DonationAmount decimal.Decimal `json:"donation_amount"`
	Currency       string          `json:"currency"`
	Description    string          `json:"description"`
	ProofFilename  string          `json:"proof_filename"`
}

// UpdateActivityRequest edición de campos base (solo draft/submitted).
type UpdateActivityRequest struct {
	Name           *string          `json:"name"`
	Date           *time.Time       `json:"date"`
	Hours          *float64         `json:"hours"`
	DonationAmount *decimal.Decimal `json:"donation_amount"`
	Description    *string          `json:"description"`
	ProofFilename  *string          `json:"proof_filename"`
}

// ActivityResponse actividad con sus campos derivados.
type ActivityResponse struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	ProfileID            string          `json:"profile_id"`
	DepartmentID         string          `json:"department_id,omitempty"`
	Date                 time.Time       `json:"date"`
	Hours                float64         `json:"hours"`
	DonationAmount       decimal.Decimal `json:"donation_amount"`
	Currency             string          `json:"currency"`
	Description          string          `json:"description"`
	ProofFilename        string          `json:"proof_filename,omitempty"`
	Status               string          `json:"status"`
	SDGCategory          string          `json:"sdg_category"`
	SDGLabel             string          `json:"sdg_label"`
	CarbonOffsetEstimate float64         `json:"carbon_offset_estimate"`
	ImpactPoints         int             `json:"impact_points"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ActivityListResponse listado paginado de actividades.
type ActivityListResponse struct {
	Items []ActivityResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
