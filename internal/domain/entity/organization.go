package entity

import "time"

// Organization es el registro singleton con las métricas CSR de toda la
// organización. Debe existir exactamente una fila; tener más de una es un
// error de programación, no una condición de runtime (el arranque la asegura
// y su ID se inyecta por constructor a los casos de uso).
type Organization struct {
	ID   string
	Name string

	// Desde actividades aprobadas
	TotalApprovedActivities int
	TotalOffsetEstimate     float64 // kg CO2

	// Mapa código SDG -> {impact, percentage}, serializado como JSON.
	// Debe hacer round-trip exacto por parse/serialize.
	SDGMetrics string

	// Desde los registros de departamento
	DepartmentCarbonBudget float64
	CurrentCarbonUsed      float64
	BudgetUsagePercentage  float64

	// Derivados de presentación
	LackingSDGsDisplay string
	RecommendationText string

	UpdatedAt time.Time
}
