// Package pdf implementa la generación del reporte ejecutivo del dashboard de
// impacto social.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organización  │  Fecha del snapshot                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Actividades aprobadas / Offset total / Presupuesto │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SDG | Descripción | Puntos | %                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SDGs REZAGADOS + RECOMENDACIÓN                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OPORTUNIDADES SUGERIDAS                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Impacto-api/internal/application/dashboard"
	"github.com/jhoicas/Impacto-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 110, Blue: 72}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ dashboard.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa dashboard.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDashboardPDF genera el reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDashboardPDF(_ context.Context, data *dto.DashboardResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Impacto Social", true).
		WithAuthor(data.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sdgTableHeaderRow())
	for _, r := range sdgTableRows(data.SDGMetrics) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(lackingRow(data))

	if len(data.Opportunities) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(opportunitiesHeaderRow())
		for _, r := range opportunityRows(data.Opportunities) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la organización (izq) y fecha del snapshot (der).
func headerRow(data *dto.DashboardResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(data.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Impacto Social Corporativo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SNAPSHOT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.UpdatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 10, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales organizacionales en tres columnas.
func summaryRow(data *dto.DashboardResponse) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1, Align: align.Center,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 6, Align: align.Center,
			}),
		)
	}
	return row.New(14).Add(
		metric("ACTIVIDADES APROBADAS", fmt.Sprintf("%d", data.TotalApprovedActivities)),
		metric("OFFSET TOTAL (kg CO2)", fmt.Sprintf("%.2f", data.TotalOffsetEstimate)),
		metric("USO DE PRESUPUESTO", fmt.Sprintf("%.1f%%", data.BudgetUsagePercentage)),
	)
}

// sdgTableHeaderRow: cabecera de la tabla de distribución por SDG.
func sdgTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SDG", 2, align.Left),
		h("Objetivo", 6, align.Left),
		h("Puntos", 2, align.Right),
		h("%", 2, align.Right),
	)
}

// sdgTableRows: una fila por SDG con contribución.
func sdgTableRows(metrics []dto.SDGMetricDTO) []core.Row {
	result := make([]core.Row, 0, len(metrics))
	for _, m := range metrics {
		if m.Impact == 0 {
			continue
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(m.Code, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New(m.Label, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", m.Impact), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%.2f", m.Percentage), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// lackingRow: SDGs rezagados y recomendación.
func lackingRow(data *dto.DashboardResponse) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("SDGs CON MENOR CONTRIBUCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.LackingSDGsDisplay, props.Text{Size: 9, Top: 6}),
			text.New(data.Recommendation, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// opportunitiesHeaderRow: título de la sección de oportunidades.
func opportunitiesHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("OPORTUNIDADES SUGERIDAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// opportunityRows: una fila por oportunidad sugerida.
func opportunityRows(items []dto.OpportunityResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, o := range items {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(o.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(o.SourceOrg, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(o.SDGCode, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(o.Location, props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return result
}
