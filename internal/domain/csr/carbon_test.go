package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Impacto-api/internal/domain/csr"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// Vectores del estimador de carbono: 5 kg CO2 por hora solo para los SDG
// ambientales (13, 14, 15); todo lo demás es 0.

func TestCarbonOffset_SDGAmbiental(t *testing.T) {
	assert.Equal(t, 50.0, csr.CarbonOffset(entity.SDG14, 10, csr.DefaultCarbonRatePerHour))
	assert.Equal(t, 25.0, csr.CarbonOffset(entity.SDG13, 5, csr.DefaultCarbonRatePerHour))
	assert.Equal(t, 7.5, csr.CarbonOffset(entity.SDG15, 1.5, csr.DefaultCarbonRatePerHour))
}

func TestCarbonOffset_SDGNoAmbientalEsCero(t *testing.T) {
	assert.Equal(t, 0.0, csr.CarbonOffset(entity.SDG1, 10, csr.DefaultCarbonRatePerHour))
	assert.Equal(t, 0.0, csr.CarbonOffset(entity.SDG4, 40, csr.DefaultCarbonRatePerHour))
	assert.Equal(t, 0.0, csr.CarbonOffset(entity.SDGOther, 100, csr.DefaultCarbonRatePerHour))
}

func TestCarbonOffset_HorasNoPositivasEsCero(t *testing.T) {
	assert.Equal(t, 0.0, csr.CarbonOffset(entity.SDG14, 0, csr.DefaultCarbonRatePerHour),
		"cero horas no compensa nada")
	assert.Equal(t, 0.0, csr.CarbonOffset(entity.SDG14, -5, csr.DefaultCarbonRatePerHour),
		"horas negativas no pueden producir offset")
}

// La tasa es parametrizable (viene de configuración); el default es 5.0.
func TestCarbonOffset_TasaConfigurable(t *testing.T) {
	assert.Equal(t, 30.0, csr.CarbonOffset(entity.SDG13, 10, 3.0))
}
