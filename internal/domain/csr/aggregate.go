package csr

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// carbonUsedRatio fracción simulada del offset que se contabiliza como carbono
// "usado" por el departamento.
const carbonUsedRatio = 0.5

// ProfileTotals son los totales materializables de un perfil de empleado,
// calculados únicamente sobre sus actividades aprobadas.
type ProfileTotals struct {
	VolunteeringHours float64
	DonationAmount    decimal.Decimal
	TotalImpactPoints int
	LastQuarterPoints int
	PointImprovement  int
}

// lastQuarterWindow devuelve la ventana [hoy-180d, hoy-90d).
func lastQuarterWindow(today time.Time) (start, end time.Time) {
	return today.AddDate(0, 0, -180), today.AddDate(0, 0, -90)
}

// ComputeProfileTotals agrega las actividades de un perfil: horas, donaciones
// y puntos sobre el subconjunto aprobado; LastQuarterPoints suma las aprobadas
// con fecha en [today-180d, today-90d); PointImprovement = total - trimestre.
func ComputeProfileTotals(activities []entity.Activity, today time.Time) ProfileTotals {
	start, end := lastQuarterWindow(today)

	t := ProfileTotals{DonationAmount: decimal.Zero}
	for _, a := range activities {
		if a.Status != entity.StatusApproved {
			continue
		}
		t.VolunteeringHours += a.Hours
		t.DonationAmount = t.DonationAmount.Add(a.DonationAmount)
		t.TotalImpactPoints += a.ImpactPoints
		if !a.Date.Before(start) && a.Date.Before(end) {
			t.LastQuarterPoints += a.ImpactPoints
		}
	}
	t.PointImprovement = t.TotalImpactPoints - t.LastQuarterPoints
	return t
}

// RankSet posiciones 1-based de cada perfil (por ID) en el ranking global.
type RankSet struct {
	ByTotal       map[string]int
	ByImprovement map[string]int
}

// Ranks ordena toda la población de perfiles descendente por puntos totales y,
// por separado, por mejora, y asigna posiciones 1..P. Empates se desempatan
// por ID ascendente para que el resultado sea determinista.
// O(P log P); no incremental: se recalcula completo en cada consulta.
func Ranks(profiles []entity.EmployeeProfile) RankSet {
	rs := RankSet{
		ByTotal:       make(map[string]int, len(profiles)),
		ByImprovement: make(map[string]int, len(profiles)),
	}

	byTotal := make([]entity.EmployeeProfile, len(profiles))
	copy(byTotal, profiles)
	sort.Slice(byTotal, func(i, j int) bool {
		if byTotal[i].TotalImpactPoints != byTotal[j].TotalImpactPoints {
			return byTotal[i].TotalImpactPoints > byTotal[j].TotalImpactPoints
		}
		return byTotal[i].ID < byTotal[j].ID
	})
	for i, p := range byTotal {
		rs.ByTotal[p.ID] = i + 1
	}

	byImprovement := make([]entity.EmployeeProfile, len(profiles))
	copy(byImprovement, profiles)
	sort.Slice(byImprovement, func(i, j int) bool {
		if byImprovement[i].PointImprovement != byImprovement[j].PointImprovement {
			return byImprovement[i].PointImprovement > byImprovement[j].PointImprovement
		}
		return byImprovement[i].ID < byImprovement[j].ID
	})
	for i, p := range byImprovement {
		rs.ByImprovement[p.ID] = i + 1
	}

	return rs
}

// DepartmentCarbon es el rollup de carbono de un departamento.
type DepartmentCarbon struct {
	TotalOffset     float64
	Used            float64 // carbonUsedRatio * TotalOffset (métrica simulada)
	UsagePercentage float64 // Used/presupuesto*100, 0 si presupuesto <= 0
}

// ComputeDepartmentCarbon deriva uso y porcentaje de presupuesto desde el
// offset total aprobado del departamento.
func ComputeDepartmentCarbon(totalOffset, budget float64) DepartmentCarbon {
	dc := DepartmentCarbon{
		TotalOffset: totalOffset,
		Used:        totalOffset * carbonUsedRatio,
	}
	if budget > 0 {
		dc.UsagePercentage = dc.Used / budget * 100
	}
	return dc
}

// OrganizationActivityTotals conteo y offset agregado de actividades aprobadas.
type OrganizationActivityTotals struct {
	ApprovedCount int
	TotalOffset   float64
}

// ComputeOrganizationActivityTotals agrega el conjunto aprobado org-wide.
func ComputeOrganizationActivityTotals(approved []entity.Activity) OrganizationActivityTotals {
	t := OrganizationActivityTotals{ApprovedCount: len(approved)}
	for _, a := range approved {
		t.TotalOffset += a.CarbonOffsetEstimate
	}
	return t
}

// OrganizationBudget suma presupuesto/uso sobre todos los departamentos.
type OrganizationBudget struct {
	Budget          float64
	Used            float64
	UsagePercentage float64
}

// ComputeOrganizationBudget totaliza los registros de departamento.
func ComputeOrganizationBudget(departments []entity.Department) OrganizationBudget {
	var b OrganizationBudget
	for _, d := range departments {
		b.Budget += d.CarbonBudget
		b.Used += d.CarbonUsed
	}
	if b.Budget > 0 {
		b.UsagePercentage = b.Used / b.Budget * 100
	}
	return b
}

// MatchOpportunities filtra las oportunidades cuyo SDG objetivo está entre los
// códigos rezagados. Conjunto rezagado vacío -> resultado vacío.
func MatchOpportunities(opportunities []entity.Opportunity, lacking []entity.SDGCode) []entity.Opportunity {
	if len(lacking) == 0 {
		return nil
	}
	set := make(map[entity.SDGCode]bool, len(lacking))
	for _, c := range lacking {
		set[c] = true
	}
	matched := make([]entity.Opportunity, 0, len(opportunities))
	for _, o := range opportunities {
		if set[o.SDGCode] {
			matched = append(matched, o)
		}
	}
	return matched
}
