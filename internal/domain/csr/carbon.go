package csr

import "github.com/jhoicas/Impacto-api/internal/domain/entity"

// DefaultCarbonRatePerHour es la tasa simulada de compensación: kg de CO2 por
// hora de voluntariado en actividades ambientales.
const DefaultCarbonRatePerHour = 5.0

// environmentalSDGs son los únicos SDG que generan compensación de carbono.
var environmentalSDGs = map[entity.SDGCode]bool{
	entity.SDG13: true,
	entity.SDG14: true,
	entity.SDG15: true,
}

// CarbonOffset estima la compensación de CO2 (kg) de una actividad.
// Horas no positivas o SDG no ambiental -> 0.
func CarbonOffset(code entity.SDGCode, hours, ratePerHour float64) float64 {
	if hours <= 0 {
		return 0.0
	}
	if !environmentalSDGs[code] {
		return 0.0
	}
	return hours * ratePerHour
}
