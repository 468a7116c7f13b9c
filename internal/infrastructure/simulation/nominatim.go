package simulation

import (
	"context"
	"strings"

	"github.com/jhoicas/Impacto-api/internal/application/ports"
	"github.com/jhoicas/Impacto-api/pkg/logger"
)

var _ ports.Geocoder = (*Geocoder)(nil)

// Geocoder geocodificador simulado. Reconoce una única ubicación ("beach") con
// una coordenada fija; cualquier otra consulta devuelve sin resultado.
type Geocoder struct {
	log *logger.Logger
}

// NewGeocoder construye el geocodificador simulado.
func NewGeocoder(log *logger.Logger) *Geocoder {
	return &Geocoder{log: log.Component("simulation")}
}

// Geocode resuelve la ubicación. Sin resultado devuelve (nil, nil).
func (g *Geocoder) Geocode(_ context.Context, location string) (*ports.GeoPin, error) {
	g.log.Debug().Str("location", location).Msg("geocodificación simulada")
	if strings.Contains(strings.ToLower(location), "beach") {
		return &ports.GeoPin{Lat: 25.1924, Lon: 55.2114, Title: "Beach Cleanup Event"}, nil
	}
	return nil, nil
}
