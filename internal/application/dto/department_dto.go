package dto

import "time"

// CreateDepartmentRequest alta del registro CSR de un departamento.
// CarbonBudget 0 toma el presupuesto por defecto de configuración.
type CreateDepartmentRequest struct {
	OrgDepartmentID string  `json:"org_department_id"`
	Name            string  `json:"name"`
	CarbonBudget    float64 `json:"carbon_budget"`
}

// UpdateBudgetRequest ajuste del presupuesto anual de carbono.
type UpdateBudgetRequest struct {
	CarbonBudget float64 `json:"carbon_budget"`
}

// DepartmentResponse registro de departamento con sus métricas derivadas.
type DepartmentResponse struct {
	ID                    string    `json:"id"`
	OrgDepartmentID       string    `json:"org_department_id"`
	Name                  string    `json:"name"`
	CarbonBudget          float64   `json:"carbon_budget"`
	TotalCarbonOffset     float64   `json:"total_carbon_offset"`
	CarbonUsed            float64   `json:"carbon_used"`
	BudgetUsagePercentage float64   `json:"budget_usage_percentage"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// DepartmentListResponse listado de departamentos.
type DepartmentListResponse struct {
	Items []DepartmentResponse `json:"items"`
}
