package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del flujo de aprobación de una actividad.
// Las transiciones solo avanzan: draft -> submitted -> approved | rejected.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// Activity representa una actividad CSR registrada por un empleado
// (voluntariado y/o donación). Los campos derivados (SDGCategory,
// CarbonOffsetEstimate, ImpactPoints) son función pura de los campos base
// y se recalculan en cada escritura; ImpactPoints es 0 salvo status=approved.
type Activity struct {
	ID             string
	Name           string // resumen corto
	ProfileID      string // perfil CSR del empleado dueño
	DepartmentID   string // denormalizado desde el perfil; se reescribe si el perfil cambia de departamento
	Date           time.Time
	Hours          float64         // horas de voluntariado, >= 0
	DonationAmount decimal.Decimal // monto donado, >= 0
	Currency       string          // moneda del monto donado (ej. COP, USD)
	Description    string          // texto libre; entrada del clasificador SDG
	ProofFilename  string          // adjunto de evidencia (opcional)
	Status         string          // draft, submitted, approved, rejected

	// Derivados
	SDGCategory          SDGCode
	CarbonOffsetEstimate float64 // kg CO2
	ImpactPoints         int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Editable indica si la actividad aún acepta cambios de campos base.
func (a *Activity) Editable() bool {
	return a.Status == StatusDraft || a.Status == StatusSubmitted
}
