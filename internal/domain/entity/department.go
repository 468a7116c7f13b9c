package entity

import "time"

// Department es el registro CSR de un departamento organizacional
// (uno a uno con el departamento; unicidad garantizada por constraint en DB).
// CarbonUsed es una métrica simulada: 50% del offset total.
type Department struct {
	ID              string
	OrgDepartmentID string // identidad del departamento organizacional (única)
	Name            string
	CarbonBudget    float64 // kg CO2, default 10000

	// Derivados (actividades aprobadas de empleados del departamento)
	TotalCarbonOffset     float64
	CarbonUsed            float64 // 0.5 * TotalCarbonOffset
	BudgetUsagePercentage float64 // CarbonUsed/CarbonBudget*100, 0 si budget <= 0

	CreatedAt time.Time
	UpdatedAt time.Time
}
