package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Impacto-api/internal/domain/csr"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del clasificador SDG por palabras clave.
// La prioridad es fija: agua/playa/marino > árbol/bosque > educación > salud >
// alimentación > pobreza > other. Gana el primer grupo con coincidencia.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifySDG_PalabrasClavePorGrupo(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        entity.SDGCode
	}{
		{"playa -> sdg14", "Beach cleanup at Jumeirah", entity.SDG14},
		{"agua -> sdg14", "Providing clean water filters", entity.SDG14},
		{"marino -> sdg14", "Marine wildlife rescue", entity.SDG14},
		{"bosque -> sdg15", "Planting in the forest reserve", entity.SDG15},
		{"árbol -> sdg15", "Tree planting day", entity.SDG15},
		{"desertificación -> sdg15", "Fighting desertification", entity.SDG15},
		{"escuela -> sdg4", "Volunteering at the local school", entity.SDG4},
		{"tutoría -> sdg4", "Weekend tutoring sessions", entity.SDG4},
		{"hospital -> sdg3", "Reading to kids at the hospital", entity.SDG3},
		{"salud -> sdg3", "Community health fair", entity.SDG3},
		{"hambre -> sdg2", "Zero hunger campaign", entity.SDG2},
		{"comida -> sdg2", "Food bank sorting", entity.SDG2},
		{"pobreza -> sdg1", "Poverty relief fund", entity.SDG1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, csr.ClassifySDG(tc.description))
		})
	}
}

// La coincidencia debe ser case-insensitive y por substring.
func TestClassifySDG_CaseInsensitiveYSubstring(t *testing.T) {
	assert.Equal(t, entity.SDG14, csr.ClassifySDG("BEACH DAY"))
	assert.Equal(t, entity.SDG15, csr.ClassifySDG("reforestation"), // contiene "forest"
		"substring dentro de otra palabra también debe coincidir")
}

// Prioridad: una descripción con "beach" y "school" debe resolver a sdg14,
// porque el grupo agua/playa/marino va primero.
func TestClassifySDG_PrimerGrupoGana(t *testing.T) {
	assert.Equal(t, entity.SDG14, csr.ClassifySDG("school trip to clean the beach"))
	assert.Equal(t, entity.SDG15, csr.ClassifySDG("planting trees near the school"),
		"árbol/bosque tiene prioridad sobre educación")
}

// Sin coincidencia o sin descripción -> "other". El clasificador es total:
// nunca falla, siempre devuelve un código.
func TestClassifySDG_SinCoincidenciaDevuelveOther(t *testing.T) {
	assert.Equal(t, entity.SDGOther, csr.ClassifySDG(""))
	assert.Equal(t, entity.SDGOther, csr.ClassifySDG("quarterly board meeting"))
}

// Mismo input, mismo output: el clasificador es determinista.
func TestClassifySDG_Determinista(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, entity.SDG14, csr.ClassifySDG("beach cleanup"))
	}
}
