package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Impacto-api/internal/application/dashboard"
	"github.com/jhoicas/Impacto-api/internal/application/dto"
	"github.com/jhoicas/Impacto-api/internal/domain"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

// DepartmentUseCase registros CSR de departamento: alta, consulta y ajuste del
// presupuesto anual de carbono.
type DepartmentUseCase struct {
	repo          repository.DepartmentRepository
	recompute     *dashboard.RecomputeService
	defaultBudget float64
}

// NewDepartmentUseCase construye el caso de uso. defaultBudget se aplica
// cuando el alta no trae presupuesto.
func NewDepartmentUseCase(repo repository.DepartmentRepository, recompute *dashboard.RecomputeService, defaultBudget float64) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo, recompute: recompute, defaultBudget: defaultBudget}
}

// Create da de alta el registro CSR de un departamento. Un departamento
// organizacional tiene a lo sumo un registro; el repositorio devuelve
// domain.ErrDuplicate si ya existe.
func (uc *DepartmentUseCase) Create(ctx context.Context, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if in.OrgDepartmentID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CarbonBudget < 0 {
		return nil, domain.ErrInvalidInput
	}
	budget := in.CarbonBudget
	if budget == 0 {
		budget = uc.defaultBudget
	}
	now := time.Now()
	d := &entity.Department{
		ID:              uuid.New().String(),
		OrgDepartmentID: in.OrgDepartmentID,
		Name:            in.Name,
		CarbonBudget:    budget,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDepartmentResponse(d), nil
}

// GetByID obtiene un departamento por ID.
func (uc *DepartmentUseCase) GetByID(ctx context.Context, id string) (*dto.DepartmentResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toDepartmentResponse(d), nil
}

// List lista todos los departamentos.
func (uc *DepartmentUseCase) List(ctx context.Context) (*dto.DepartmentListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.DepartmentListResponse{Items: make([]dto.DepartmentResponse, 0, len(list))}
	for i := range list {
		resp.Items = append(resp.Items, *toDepartmentResponse(&list[i]))
	}
	return resp, nil
}

// UpdateBudget ajusta el presupuesto anual de carbono y recomputa el rollup
// del departamento y el agregado organizacional.
func (uc *DepartmentUseCase) UpdateBudget(ctx context.Context, id string, in dto.UpdateBudgetRequest) (*dto.DepartmentResponse, error) {
	if in.CarbonBudget < 0 {
		return nil, domain.ErrInvalidInput
	}
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	d.CarbonBudget = in.CarbonBudget
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	if err := uc.recompute.RecomputeDepartment(ctx, d.ID); err != nil {
		return nil, err
	}
	refreshed, err := uc.repo.GetByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	return toDepartmentResponse(refreshed), nil
}

func toDepartmentResponse(d *entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:                    d.ID,
		OrgDepartmentID:       d.OrgDepartmentID,
		Name:                  d.Name,
		CarbonBudget:          d.CarbonBudget,
		TotalCarbonOffset:     d.TotalCarbonOffset,
		CarbonUsed:            d.CarbonUsed,
		BudgetUsagePercentage: d.BudgetUsagePercentage,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}
