package usecase

import (
	"context"

	"github.com/jhoicas/Impacto-api/internal/application/dto"
	"github.com/jhoicas/Impacto-api/internal/domain"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

// OpportunityUseCase consulta del catálogo local de oportunidades externas.
// El catálogo se repone desde el refresh del dashboard.
type OpportunityUseCase struct {
	repo repository.OpportunityRepository
}

// NewOpportunityUseCase construye el caso de uso.
func NewOpportunityUseCase(repo repository.OpportunityRepository) *OpportunityUseCase {
	return &OpportunityUseCase{repo: repo}
}

// List lista oportunidades, opcionalmente filtradas por código SDG.
func (uc *OpportunityUseCase) List(ctx context.Context, sdg string) (*dto.OpportunityListResponse, error) {
	var (
		list []entity.Opportunity
		err  error
	)
	if sdg != "" {
		code := entity.SDGCode(sdg)
		if !code.Valid() {
			return nil, domain.ErrInvalidInput
		}
		list, err = uc.repo.ListBySDG(ctx, []entity.SDGCode{code})
	} else {
		list, err = uc.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.OpportunityListResponse{Items: make([]dto.OpportunityResponse, 0, len(list))}
	for _, o := range list {
		resp.Items = append(resp.Items, dto.OpportunityResponse{
			ID:          o.ID,
			Name:        o.Name,
			SourceOrg:   o.SourceOrg,
			SDGCode:     string(o.SDGCode),
			Date:        o.Date,
			Location:    o.Location,
			Description: o.Description,
		})
	}
	return resp, nil
}
