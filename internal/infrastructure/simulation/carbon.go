package simulation

import (
	"context"

	"github.com/jhoicas/Impacto-api/internal/application/ports"
	"github.com/jhoicas/Impacto-api/internal/domain/csr"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/pkg/logger"
)

var _ ports.CarbonEstimator = (*CarbonEstimator)(nil)

// CarbonEstimator estimador de offset que imita una API externa de carbono.
// La tarifa por hora viene de configuración (CSR_CARBON_RATE_PER_HOUR).
type CarbonEstimator struct {
	ratePerHour float64
	log         *logger.Logger
}

// NewCarbonEstimator construye el estimador simulado. ratePerHour <= 0 usa la
// tarifa por defecto.
func NewCarbonEstimator(ratePerHour float64, log *logger.Logger) *CarbonEstimator {
	if ratePerHour <= 0 {
		ratePerHour = csr.DefaultCarbonRatePerHour
	}
	return &CarbonEstimator{ratePerHour: ratePerHour, log: log.Component("simulation")}
}

// EstimateOffset calcula horas * tarifa para los SDG ambientales, 0 para el resto.
func (e *CarbonEstimator) EstimateOffset(_ context.Context, code entity.SDGCode, hours float64) (float64, error) {
	offset := csr.CarbonOffset(code, hours, e.ratePerHour)
	e.log.Debug().Str("sdg", string(code)).Float64("hours", hours).Float64("offset", offset).
		Msg("estimación simulada de offset de carbono")
	return offset, nil
}
