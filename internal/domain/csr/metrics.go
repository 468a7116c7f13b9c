package csr

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// SDGMetric es la contribución de un código SDG al total organizacional.
type SDGMetric struct {
	Impact     int     `json:"impact"`
	Percentage float64 `json:"percentage"` // redondeado a 2 decimales
}

// SDGMetrics mapa código -> métrica. Persiste como JSON en la organización y
// debe hacer round-trip exacto por ParseMetrics/MarshalMetrics.
type SDGMetrics map[entity.SDGCode]SDGMetric

// DefaultLackingSDGs es el conjunto rezagado de fallback cuando las métricas
// de la organización no existen o no parsean.
var DefaultLackingSDGs = []entity.SDGCode{entity.SDG14}

// maxLackingSDGs cuántos códigos rezagados se seleccionan.
const maxLackingSDGs = 3

// Distribution calcula puntos de impacto y porcentaje por código SDG sobre el
// conjunto de actividades aprobadas. Siempre devuelve los 18 códigos del
// catálogo; con gran total 0, todos los porcentajes son 0.
func Distribution(approved []entity.Activity) SDGMetrics {
	impact := make(map[entity.SDGCode]int)
	total := 0
	for _, a := range approved {
		impact[a.SDGCategory] += a.ImpactPoints
		total += a.ImpactPoints
	}

	m := make(SDGMetrics, len(entity.SDGCatalogue))
	for _, code := range entity.SDGCatalogue {
		pts := impact[code]
		pct := 0.0
		if total > 0 {
			pct = round2(float64(pts) / float64(total) * 100)
		}
		m[code] = SDGMetric{Impact: pts, Percentage: pct}
	}
	return m
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// MarshalMetrics serializa las métricas como objeto JSON (claves ordenadas).
func MarshalMetrics(m SDGMetrics) (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("serializar métricas SDG: %w", err)
	}
	return string(b), nil
}

// ParseMetrics parsea el JSON persistido de métricas SDG.
func ParseMetrics(s string) (SDGMetrics, error) {
	var m SDGMetrics
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("parsear métricas SDG: %w", err)
	}
	return m, nil
}

// LackingSDGs devuelve los 3 códigos no-"other" con menor porcentaje.
// El desempate es estable sobre el orden del catálogo (sdg1..sdg17).
func LackingSDGs(m SDGMetrics) []entity.SDGCode {
	codes := make([]entity.SDGCode, 0, len(entity.SDGCatalogue))
	for _, code := range entity.SDGCatalogue {
		if code == entity.SDGOther {
			continue
		}
		if _, ok := m[code]; ok {
			codes = append(codes, code)
		}
	}
	sort.SliceStable(codes, func(i, j int) bool {
		return m[codes[i]].Percentage < m[codes[j]].Percentage
	})
	if len(codes) > maxLackingSDGs {
		codes = codes[:maxLackingSDGs]
	}
	return codes
}

// LackingFromMetricsJSON deriva el conjunto rezagado desde el JSON persistido.
// Falla suave: vacío o corrupto -> DefaultLackingSDGs, nunca error. Nota: el
// que puntúa lee aquí el snapshot *anterior* de la organización; la cascada
// recomputa la organización después, por lo que el bono puede ser
// transitoriamente obsoleto (mismo comportamiento que el sistema original).
func LackingFromMetricsJSON(s string) []entity.SDGCode {
	if s == "" {
		return DefaultLackingSDGs
	}
	m, err := ParseMetrics(s)
	if err != nil {
		return DefaultLackingSDGs
	}
	return LackingSDGs(m)
}

// LackingDisplay arma la cadena de presentación de los SDGs rezagados:
// "SDG14 (1.2%), SDG5 (3%), ..." — "N/A" sin datos, o el mensaje de balance
// si ningún código quedó rezagado.
func LackingDisplay(m SDGMetrics) string {
	if len(m) == 0 {
		return "N/A"
	}
	lacking := LackingSDGs(m)
	if len(lacking) == 0 {
		return "All SDGs have contributions."
	}
	parts := make([]string, 0, len(lacking))
	for _, code := range lacking {
		pct := strconv.FormatFloat(m[code].Percentage, 'f', -1, 64)
		parts = append(parts, fmt.Sprintf("%s (%s%%)", strings.ToUpper(string(code)), pct))
	}
	return strings.Join(parts, ", ")
}

// LackingDisplayFromJSON es LackingDisplay sobre el JSON persistido, con los
// textos de fallback del dashboard para datos ausentes o corruptos.
func LackingDisplayFromJSON(s string) string {
	if s == "" {
		return "N/A"
	}
	m, err := ParseMetrics(s)
	if err != nil {
		return "Error parsing metrics"
	}
	return LackingDisplay(m)
}

// RecommendationText genera la recomendación textual del dashboard a partir de
// la cadena de rezagados (sin marcado; el render es asunto del cliente).
func RecommendationText(lackingDisplay string) string {
	if lackingDisplay == "" || lackingDisplay == "N/A" ||
		strings.Contains(lackingDisplay, "Error") ||
		lackingDisplay == "All SDGs have contributions." {
		return "All SDG contributions are well-balanced or data is pending. Keep up the great work!"
	}
	return fmt.Sprintf(
		"Our analysis indicates that the following SDGs are currently lagging: %s. "+
			"We recommend prioritizing activities that target these areas; check the Opportunities "+
			"section for projects aligned with these goals. To incentivize participation, consider "+
			"offering a 50%% Impact Point Bonus for approved activities under these SDGs.",
		lackingDisplay,
	)
}
