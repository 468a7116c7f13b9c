// Package csr contiene el núcleo puro de agregación CSR: clasificación SDG,
// estimación de carbono, puntaje de impacto y los rollups por perfil,
// departamento y organización. Todo es determinista e idempotente: misma
// entrada, misma salida, sin estado oculto.
package csr

import (
	"strings"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// keywordGroup asocia un conjunto de palabras clave a un código SDG.
// El orden dentro de keywordGroups es prioridad de mayor a menor: gana el
// primer grupo con coincidencia.
type keywordGroup struct {
	keywords []string
	code     entity.SDGCode
}

var keywordGroups = []keywordGroup{
	{[]string{"water", "beach", "marine"}, entity.SDG14},
	{[]string{"tree", "forest", "desertification"}, entity.SDG15},
	{[]string{"education", "school", "tutoring"}, entity.SDG4},
	{[]string{"health", "hospital"}, entity.SDG3},
	{[]string{"food", "hunger"}, entity.SDG2},
	{[]string{"poverty"}, entity.SDG1},
}

// ClassifySDG asigna un código SDG a una descripción libre por coincidencia de
// substring (case-insensitive). Total: siempre devuelve un código; sin
// coincidencia (o descripción vacía) devuelve "other".
func ClassifySDG(description string) entity.SDGCode {
	desc := strings.ToLower(description)
	if desc == "" {
		return entity.SDGOther
	}
	for _, g := range keywordGroups {
		for _, kw := range g.keywords {
			if strings.Contains(desc, kw) {
				return g.code
			}
		}
	}
	return entity.SDGOther
}
