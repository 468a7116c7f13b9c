package csr_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Impacto-api/internal/domain/csr"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

var lackingSDG14 = []entity.SDGCode{entity.SDG14}

// Actividad no aprobada vale 0, sin importar horas, donación o SDG.
func TestImpactPoints_NoAprobadaEsCero(t *testing.T) {
	donation := decimal.NewFromInt(1000)
	for _, status := range []string{entity.StatusDraft, entity.StatusSubmitted, entity.StatusRejected} {
		assert.Equal(t, 0, csr.ImpactPoints(status, 10, donation, entity.SDG14, lackingSDG14),
			"status %q no debe generar puntos", status)
	}
}

// Vector del spec original: 10h + 100 donados + SDG rezagado ->
// floor(10*10 + 100*0.5 + 0.5*100) = 200.
func TestImpactPoints_AprobadaConBonoRezagado(t *testing.T) {
	got := csr.ImpactPoints(entity.StatusApproved, 10, decimal.NewFromInt(100), entity.SDG14, lackingSDG14)
	assert.Equal(t, 200, got)
}

// Sin bono: SDG fuera del conjunto rezagado -> floor(10*10) = 100.
func TestImpactPoints_AprobadaSinBono(t *testing.T) {
	got := csr.ImpactPoints(entity.StatusApproved, 10, decimal.Zero, entity.SDG1, lackingSDG14)
	assert.Equal(t, 100, got)
}

// Sin donación el término de donación es 0.
func TestImpactPoints_SinDonacion(t *testing.T) {
	got := csr.ImpactPoints(entity.StatusApproved, 4, decimal.Zero, entity.SDG3, lackingSDG14)
	assert.Equal(t, 40, got)
}

// El resultado se trunca hacia cero (cast entero de un float no negativo):
// 2.5h * 10 = 25 base; 25 + 0.25 donación = 25.25 -> 25.
func TestImpactPoints_TruncaHaciaCero(t *testing.T) {
	got := csr.ImpactPoints(entity.StatusApproved, 2.5, decimal.NewFromFloat(0.5), entity.SDG1, lackingSDG14)
	assert.Equal(t, 25, got)
}

// La donación se opera en decimal: 3 centavos * 0.5 no debe introducir
// error binario que mueva el floor.
func TestImpactPoints_DonacionDecimalExacta(t *testing.T) {
	// base 10 + 19.99*0.5 = 10 + 9.995 = 19.995 -> 19
	got := csr.ImpactPoints(entity.StatusApproved, 1, decimal.NewFromFloat(19.99), entity.SDG1, lackingSDG14)
	assert.Equal(t, 19, got)
}

// El bono aplica con cualquier código del conjunto rezagado, no solo el primero.
func TestImpactPoints_BonoConCualquierRezagado(t *testing.T) {
	lacking := []entity.SDGCode{entity.SDG5, entity.SDG7, entity.SDG12}
	got := csr.ImpactPoints(entity.StatusApproved, 10, decimal.Zero, entity.SDG12, lacking)
	assert.Equal(t, 150, got, "base 100 + bono 50")
}

// Conjunto rezagado vacío -> nunca hay bono.
func TestImpactPoints_SinConjuntoRezagado(t *testing.T) {
	got := csr.ImpactPoints(entity.StatusApproved, 10, decimal.Zero, entity.SDG14, nil)
	assert.Equal(t, 100, got)
}
