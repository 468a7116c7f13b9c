package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Impacto-api/internal/domain/csr"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

func approvedActivity(code entity.SDGCode, points int) entity.Activity {
	return entity.Activity{Status: entity.StatusApproved, SDGCategory: code, ImpactPoints: points}
}

// ──────────────────────────────────────────────────────────────────────────────
// Distribution
// ──────────────────────────────────────────────────────────────────────────────

// El mapa siempre contiene los 18 códigos y los porcentajes suman ~100
// cuando el gran total es > 0 (módulo error de redondeo a 2 decimales).
func TestDistribution_PorcentajesSumanCien(t *testing.T) {
	activities := []entity.Activity{
		approvedActivity(entity.SDG14, 300),
		approvedActivity(entity.SDG4, 100),
		approvedActivity(entity.SDG4, 100),
		approvedActivity(entity.SDGOther, 100),
	}
	m := csr.Distribution(activities)

	require.Len(t, m, 18, "el mapa debe cubrir los 18 códigos del catálogo")
	assert.Equal(t, csr.SDGMetric{Impact: 300, Percentage: 50.0}, m[entity.SDG14])
	assert.Equal(t, csr.SDGMetric{Impact: 200, Percentage: 33.33}, m[entity.SDG4])
	assert.Equal(t, csr.SDGMetric{Impact: 100, Percentage: 16.67}, m[entity.SDGOther])
	assert.Equal(t, csr.SDGMetric{Impact: 0, Percentage: 0}, m[entity.SDG1])

	sum := 0.0
	for _, metric := range m {
		sum += metric.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.05, "los porcentajes deben sumar ~100")
}

// Gran total 0 -> todos los porcentajes en 0, sin división por cero.
func TestDistribution_TotalCeroTodoEnCero(t *testing.T) {
	m := csr.Distribution(nil)
	require.Len(t, m, 18)
	for code, metric := range m {
		assert.Zero(t, metric.Impact, "impacto de %s", code)
		assert.Zero(t, metric.Percentage, "porcentaje de %s", code)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Round-trip JSON
// ──────────────────────────────────────────────────────────────────────────────

// Las métricas persisten como JSON y deben hacer round-trip exacto.
func TestMetrics_RoundTripJSON(t *testing.T) {
	original := csr.Distribution([]entity.Activity{
		approvedActivity(entity.SDG14, 150),
		approvedActivity(entity.SDG2, 49),
	})

	serialized, err := csr.MarshalMetrics(original)
	require.NoError(t, err)

	parsed, err := csr.ParseMetrics(serialized)
	require.NoError(t, err)
	assert.Equal(t, original, parsed, "parse(serialize(m)) debe devolver m exacto")
}

func TestParseMetrics_JSONCorrupto(t *testing.T) {
	_, err := csr.ParseMetrics("{no es json}")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lacking SDGs
// ──────────────────────────────────────────────────────────────────────────────

// El conjunto rezagado: tamaño <= 3, excluye "other" y contiene los 3 códigos
// de menor porcentaje.
func TestLackingSDGs_TresMenoresSinOther(t *testing.T) {
	activities := make([]entity.Activity, 0, 18)
	// other en 0 puntos: aunque sea el menor, jamás entra al conjunto
	for i, code := range entity.SDGCatalogue {
		if code == entity.SDGOther {
			continue
		}
		activities = append(activities, approvedActivity(code, (i+1)*10))
	}
	m := csr.Distribution(activities)
	lacking := csr.LackingSDGs(m)

	require.Len(t, lacking, 3)
	assert.Equal(t, []entity.SDGCode{entity.SDG1, entity.SDG2, entity.SDG3}, lacking)
	assert.NotContains(t, lacking, entity.SDGOther)
}

// Empates: el desempate es estable sobre el orden del catálogo. Con todos los
// porcentajes iguales (total 0), los rezagados son sdg1, sdg2, sdg3.
func TestLackingSDGs_EmpateEstableOrdenCatalogo(t *testing.T) {
	m := csr.Distribution(nil)
	lacking := csr.LackingSDGs(m)
	assert.Equal(t, []entity.SDGCode{entity.SDG1, entity.SDG2, entity.SDG3}, lacking,
		"con porcentajes iguales debe preservarse el orden del catálogo")
}

// Dos códigos con el mismo porcentaje conservan su orden relativo de catálogo.
func TestLackingSDGs_EmpateParcial(t *testing.T) {
	activities := []entity.Activity{
		approvedActivity(entity.SDG5, 10),  // empatado con sdg9
		approvedActivity(entity.SDG9, 10),  // empatado con sdg5
		approvedActivity(entity.SDG14, 500),
	}
	// todos los demás en 0: los tres rezagados son los primeros tres códigos con 0%
	m := csr.Distribution(activities)
	lacking := csr.LackingSDGs(m)
	assert.Equal(t, []entity.SDGCode{entity.SDG1, entity.SDG2, entity.SDG3}, lacking)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallback desde JSON persistido (falla suave, nunca error)
// ──────────────────────────────────────────────────────────────────────────────

func TestLackingFromMetricsJSON_VacioUsaDefault(t *testing.T) {
	assert.Equal(t, csr.DefaultLackingSDGs, csr.LackingFromMetricsJSON(""))
}

func TestLackingFromMetricsJSON_CorruptoUsaDefault(t *testing.T) {
	assert.Equal(t, csr.DefaultLackingSDGs, csr.LackingFromMetricsJSON("{{{"),
		"JSON corrupto debe caer al default {sdg14} sin propagar error")
}

func TestLackingFromMetricsJSON_ValidoCalcula(t *testing.T) {
	m := csr.Distribution([]entity.Activity{approvedActivity(entity.SDG4, 100)})
	s, err := csr.MarshalMetrics(m)
	require.NoError(t, err)

	lacking := csr.LackingFromMetricsJSON(s)
	require.Len(t, lacking, 3)
	assert.NotContains(t, lacking, entity.SDG4, "el único SDG con puntos no puede estar rezagado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Display y recomendación
// ──────────────────────────────────────────────────────────────────────────────

func TestLackingDisplay_Formato(t *testing.T) {
	m := csr.Distribution([]entity.Activity{approvedActivity(entity.SDG14, 100)})
	display := csr.LackingDisplay(m)
	assert.Contains(t, display, "SDG1 (0%)")
	assert.NotContains(t, display, "OTHER")
}

func TestLackingDisplay_SinDatos(t *testing.T) {
	assert.Equal(t, "N/A", csr.LackingDisplay(nil))
}

func TestLackingDisplayFromJSON_Fallbacks(t *testing.T) {
	assert.Equal(t, "N/A", csr.LackingDisplayFromJSON(""))
	assert.Equal(t, "Error parsing metrics", csr.LackingDisplayFromJSON("{{{"))
}

func TestRecommendationText_NombraRezagados(t *testing.T) {
	text := csr.RecommendationText("SDG5 (0%), SDG7 (0%)")
	assert.Contains(t, text, "SDG5 (0%)")
	assert.Contains(t, text, "50% Impact Point Bonus")
}

func TestRecommendationText_FallbackBalanceado(t *testing.T) {
	for _, display := range []string{"", "N/A", "Error parsing metrics", "All SDGs have contributions."} {
		text := csr.RecommendationText(display)
		assert.Contains(t, text, "well-balanced", "display %q debe producir el texto de balance", display)
	}
}
