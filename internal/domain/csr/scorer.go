package csr

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// Constantes de gamificación (mismas tasas que la recomendación del dashboard:
// 10 puntos por hora, medio punto por unidad donada, 50% de bono en SDGs rezagados).
const (
	basePointsPerHour = 10.0
	lackingBonusRate  = 0.5
)

var donationPointRate = decimal.NewFromFloat(0.5)

// ImpactPoints calcula los puntos de impacto de una actividad.
// Cualquier estado distinto de approved vale 0. Para approved:
//
//	base   = horas * 10
//	dona   = monto * 0.5
//	bono   = base * 0.5 si el SDG está en el conjunto rezagado
//	puntos = floor(base + dona + bono)  (truncamiento hacia cero)
//
// El monto donado se opera en decimal para no perder centavos antes del floor.
func ImpactPoints(status string, hours float64, donation decimal.Decimal, code entity.SDGCode, lacking []entity.SDGCode) int {
	if status != entity.StatusApproved {
		return 0
	}
	base := hours * basePointsPerHour
	bonus := 0.0
	for _, l := range lacking {
		if l == code {
			bonus = base * lackingBonusRate
			break
		}
	}
	total := decimal.NewFromFloat(base + bonus).Add(donation.Mul(donationPointRate))
	return int(total.IntPart())
}
