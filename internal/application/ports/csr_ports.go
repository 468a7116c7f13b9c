// Package ports define los contratos con colaboradores externos del núcleo
// CSR. Hoy todas las implementaciones son simulaciones deterministas
// (internal/infrastructure/simulation); una integración real se sustituye
// aquí sin tocar la agregación.
package ports

import (
	"context"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// SDGClassifier clasifica una descripción libre en un código SDG.
// Debe ser total: siempre un código, nunca error de "no clasificable".
type SDGClassifier interface {
	Classify(ctx context.Context, description string) (entity.SDGCode, error)
}

// CarbonEstimator estima la compensación de CO2 (kg) de una actividad.
type CarbonEstimator interface {
	EstimateOffset(ctx context.Context, code entity.SDGCode, hours float64) (float64, error)
}

// OpportunitySource provee oportunidades externas para un conjunto de SDGs.
type OpportunitySource interface {
	FetchOpportunities(ctx context.Context, codes []entity.SDGCode) ([]entity.Opportunity, error)
}

// SocialPublisher arma (y en una implementación real publicaría) la
// actualización social con el resumen del perfil. Devuelve el mensaje.
type SocialPublisher interface {
	ShareUpdate(ctx context.Context, profile *entity.EmployeeProfile) (string, error)
}

// GeoPin coordenada con título para ubicar un evento.
type GeoPin struct {
	Lat   float64
	Lon   float64
	Title string
}

// Geocoder resuelve un nombre de ubicación a coordenadas.
// Devuelve (nil, nil) cuando no hay resultado: ausencia no es error.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (*GeoPin, error)
}
