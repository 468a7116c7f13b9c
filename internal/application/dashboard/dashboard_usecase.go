package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Impacto-api/internal/application/dto"
	"github.com/jhoicas/Impacto-api/internal/application/ports"
	"github.com/jhoicas/Impacto-api/internal/domain"
	"github.com/jhoicas/Impacto-api/internal/domain/csr"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

// UseCase expone la lectura del snapshot del dashboard, su refresh explícito
// (recomputación + reposición de oportunidades externas), el reporte PDF y la
// geolocalización de eventos.
type UseCase struct {
	orgRepo         repository.OrganizationRepository
	opportunityRepo repository.OpportunityRepository
	recompute       *RecomputeService
	source          ports.OpportunitySource
	geocoder        ports.Geocoder
	report          ReportGenerator
	orgID           string
	now             func() time.Time
}

func NewUseCase(
	orgRepo repository.OrganizationRepository,
	opportunityRepo repository.OpportunityRepository,
	recompute *RecomputeService,
	source ports.OpportunitySource,
	geocoder ports.Geocoder,
	report ReportGenerator,
	orgID string,
) *UseCase {
	return &UseCase{
		orgRepo:         orgRepo,
		opportunityRepo: opportunityRepo,
		recompute:       recompute,
		source:          source,
		geocoder:        geocoder,
		report:          report,
		orgID:           orgID,
		now:             time.Now,
	}
}

// Get arma la respuesta del dashboard desde el snapshot persistido. Las
// métricas se emiten en orden canónico de catálogo; si el JSON almacenado está
// corrupto se degrada al conjunto rezagado por defecto en vez de fallar.
func (uc *UseCase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	org, err := uc.orgRepo.Get(ctx, uc.orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}

	resp := &dto.DashboardResponse{
		Name:                    org.Name,
		TotalApprovedActivities: org.TotalApprovedActivities,
		TotalOffsetEstimate:     org.TotalOffsetEstimate,
		LackingSDGsDisplay:      org.LackingSDGsDisplay,
		DepartmentCarbonBudget:  org.DepartmentCarbonBudget,
		CurrentCarbonUsed:       org.CurrentCarbonUsed,
		BudgetUsagePercentage:   org.BudgetUsagePercentage,
		Recommendation:          org.RecommendationText,
		UpdatedAt:               org.UpdatedAt,
	}

	metrics, err := csr.ParseMetrics(org.SDGMetrics)
	if err == nil {
		for _, code := range entity.SDGCatalogue {
			m := metrics[code]
			resp.SDGMetrics = append(resp.SDGMetrics, dto.SDGMetricDTO{
				Code:       string(code),
				Label:      code.Label(),
				Impact:     m.Impact,
				Percentage: m.Percentage,
			})
		}
	}

	lacking := csr.LackingFromMetricsJSON(org.SDGMetrics)
	for _, code := range lacking {
		resp.LackingSDGs = append(resp.LackingSDGs, string(code))
	}

	opportunities, err := uc.opportunityRepo.ListBySDG(ctx, lacking)
	if err != nil {
		return nil, err
	}
	resp.Opportunities = toOpportunityResponses(opportunities)
	return resp, nil
}

// Refresh recomputa el snapshot organizacional, consulta la fuente externa de
// oportunidades para los SDGs rezagados resultantes y repone el catálogo local
// por upsert. Devuelve el dashboard ya refrescado.
func (uc *UseCase) Refresh(ctx context.Context) (*dto.DashboardResponse, error) {
	if err := uc.recompute.RecomputeOrganization(ctx); err != nil {
		return nil, err
	}

	org, err := uc.orgRepo.Get(ctx, uc.orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}

	lacking := csr.LackingFromMetricsJSON(org.SDGMetrics)
	fetched, err := uc.source.FetchOpportunities(ctx, lacking)
	if err != nil {
		return nil, err
	}
	// La fuente externa puede devolver de más; solo se persiste lo que apunta
	// a un SDG rezagado.
	fetched = csr.MatchOpportunities(fetched, lacking)
	for i := range fetched {
		o := &fetched[i]
		if o.ID == "" {
			o.ID = uuid.New().String()
		}
		if o.CreatedAt.IsZero() {
			o.CreatedAt = uc.now()
		}
		if err := uc.opportunityRepo.Upsert(ctx, o); err != nil {
			return nil, err
		}
	}

	return uc.Get(ctx)
}

// Report genera el reporte PDF del snapshot vigente.
func (uc *UseCase) Report(ctx context.Context) ([]byte, error) {
	data, err := uc.Get(ctx)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateDashboardPDF(ctx, data)
}

// GeoPin resuelve la ubicación textual de un evento a una coordenada.
// Ubicación sin resultado devuelve domain.ErrNotFound.
func (uc *UseCase) GeoPin(ctx context.Context, location string) (*dto.GeoPinResponse, error) {
	if location == "" {
		return nil, domain.ErrInvalidInput
	}
	pin, err := uc.geocoder.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}
	if pin == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.GeoPinResponse{Lat: pin.Lat, Lon: pin.Lon, Title: pin.Title}, nil
}

func toOpportunityResponses(items []entity.Opportunity) []dto.OpportunityResponse {
	out := make([]dto.OpportunityResponse, 0, len(items))
	for _, o := range items {
		out = append(out, dto.OpportunityResponse{
			ID:          o.ID,
			Name:        o.Name,
			SourceOrg:   o.SourceOrg,
			SDGCode:     string(o.SDGCode),
			Date:        o.Date,
			Location:    o.Location,
			Description: o.Description,
		})
	}
	return out
}
