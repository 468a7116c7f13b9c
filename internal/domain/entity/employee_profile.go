package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeProfile es el perfil CSR de un empleado (uno a uno con la identidad
// de empleado; la unicidad la garantiza la constraint en DB).
// Los totales son sumas sobre sus actividades aprobadas y se materializan
// en cada recomputación; los ranks se calculan bajo demanda contra toda la
// población de perfiles.
type EmployeeProfile struct {
	ID           string
	EmployeeID   string // identidad de empleado (única por perfil)
	Name         string
	DepartmentID string
	Currency     string

	// Totales materializados (solo actividades aprobadas)
	TotalImpactPoints int
	VolunteeringHours float64
	DonationAmount    decimal.Decimal

	// Ventana [hoy-180d, hoy-90d)
	LastQuarterPoints int
	PointImprovement  int // TotalImpactPoints - LastQuarterPoints

	CreatedAt time.Time
	UpdatedAt time.Time
}
