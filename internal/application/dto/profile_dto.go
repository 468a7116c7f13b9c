package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProfileRequest alta del perfil CSR de un empleado.
type CreateProfileRequest struct {
	EmployeeID   string `json:"employee_id"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
	Currency     string `json:"currency"`
}

// ProfileResponse perfil con totales y, si se pidió, posición en el ranking.
type ProfileResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	Name              string          `json:"name"`
	DepartmentID      string          `json:"department_id,omitempty"`
	Currency          string          `json:"currency"`
	TotalImpactPoints int             `json:"total_impact_points"`
	VolunteeringHours float64         `json:"volunteering_hours"`
	DonationAmount    decimal.Decimal `json:"donation_amount"`
	LastQuarterPoints int             `json:"last_quarter_points"`
	PointImprovement  int             `json:"point_improvement"`
	RankByTotal       int             `json:"rank_by_total,omitempty"`
	RankByImprovement int             `json:"rank_by_improvement,omitempty"`
	RankDisplay       string          `json:"rank_display,omitempty"` // "#3"
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProfileListResponse listado de perfiles.
type ProfileListResponse struct {
	Items []ProfileResponse `json:"items"`
}

// LeaderboardResponse perfiles ordenados descendente por puntos totales.
type LeaderboardResponse struct {
	Items []ProfileResponse `json:"items"`
}

// ShareResponse payload de la publicación simulada en la red social.
type ShareResponse struct {
	Message string `json:"message"`
	Posted  bool   `json:"posted"` // siempre false: simulación, no hay post real
}

// RedeemViewResponse descriptor de la vista de canje: saldo de puntos y
// premios activos, marcando cuáles alcanza el saldo. Consulta pura, sin
// efectos.
type RedeemViewResponse struct {
	ProfileID     string           `json:"profile_id"`
	PointsBalance int              `json:"points_balance"`
	Rewards       []RewardResponse `json:"rewards"`
}

// RewardResponse premio del catálogo.
type RewardResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PointsCost  int    `json:"points_cost"`
	Affordable  bool   `json:"affordable"`
}

// RewardListResponse catálogo de premios activos.
type RewardListResponse struct {
	Items []RewardResponse `json:"items"`
}
