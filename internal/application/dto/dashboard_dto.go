package dto

import "time"

// SDGMetricDTO contribución de un código SDG al total organizacional.
type SDGMetricDTO struct {
	Code       string  `json:"code"`
	Label      string  `json:"label"`
	Impact     int     `json:"impact"`
	Percentage float64 `json:"percentage"`
}

// DashboardResponse snapshot del dashboard organizacional.
type DashboardResponse struct {
	Name                    string                `json:"name"`
	TotalApprovedActivities int                   `json:"total_approved_activities"`
	TotalOffsetEstimate     float64               `json:"total_offset_estimate"`
	SDGMetrics              []SDGMetricDTO        `json:"sdg_metrics"` // orden canónico sdg1..sdg17, other
	LackingSDGs             []string              `json:"lacking_sdgs"`
	LackingSDGsDisplay      string                `json:"lacking_sdgs_display"`
	DepartmentCarbonBudget  float64               `json:"department_carbon_budget"`
	CurrentCarbonUsed       float64               `json:"current_carbon_used"`
	BudgetUsagePercentage   float64               `json:"budget_usage_percentage"`
	Recommendation          string                `json:"recommendation"`
	Opportunities           []OpportunityResponse `json:"opportunities"`
	UpdatedAt               time.Time             `json:"updated_at"`
}

// OpportunityResponse proyecto externo sugerido.
type OpportunityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SourceOrg   string    `json:"source_org"`
	SDGCode     string    `json:"sdg_code"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

// OpportunityListResponse listado de oportunidades.
type OpportunityListResponse struct {
	Items []OpportunityResponse `json:"items"`
}

// GeoPinResponse coordenada simulada para ubicar un evento en el mapa.
type GeoPinResponse struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Title string  `json:"title"`
}
