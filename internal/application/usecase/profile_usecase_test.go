package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Impacto-api/internal/application/dto"
	"github.com/jhoicas/Impacto-api/internal/application/usecase"
	"github.com/jhoicas/Impacto-api/internal/domain"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// Fakes mínimos: solo lo que estos casos de uso tocan. La unicidad por
// employee_id / org_department_id se emula igual que la constraint en base.

type fakeProfileRepo struct {
	byID         map[string]*entity.EmployeeProfile
	byEmployeeID map[string]string
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: map[string]*entity.EmployeeProfile{}, byEmployeeID: map[string]string{}}
}

func (r *fakeProfileRepo) Create(_ context.Context, p *entity.EmployeeProfile) error {
	if _, ok := r.byEmployeeID[p.EmployeeID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.byID[p.ID] = &cp
	r.byEmployeeID[p.EmployeeID] = p.ID
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (*entity.EmployeeProfile, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) GetByEmployeeID(_ context.Context, employeeID string) (*entity.EmployeeProfile, error) {
	id, ok := r.byEmployeeID[employeeID]
	if !ok {
		return nil, nil
	}
	return r.GetByID(context.Background(), id)
}

func (r *fakeProfileRepo) Update(_ context.Context, p *entity.EmployeeProfile) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) List(_ context.Context) ([]entity.EmployeeProfile, error) {
	out := make([]entity.EmployeeProfile, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, *p)
	}
	return out, nil
}

type fakeDepartmentRepo struct {
	byID    map[string]*entity.Department
	byOrgID map[string]string
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{byID: map[string]*entity.Department{}, byOrgID: map[string]string{}}
}

func (r *fakeDepartmentRepo) Create(_ context.Context, d *entity.Department) error {
	if _, ok := r.byOrgID[d.OrgDepartmentID]; ok {
		return domain.ErrDuplicate
	}
	cp := *d
	r.byID[d.ID] = &cp
	r.byOrgID[d.OrgDepartmentID] = d.ID
	return nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id string) (*entity.Department, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDepartmentRepo) GetByOrgDepartmentID(_ context.Context, orgDepartmentID string) (*entity.Department, error) {
	id, ok := r.byOrgID[orgDepartmentID]
	if !ok {
		return nil, nil
	}
	return r.GetByID(context.Background(), id)
}

func (r *fakeDepartmentRepo) Update(_ context.Context, d *entity.Department) error {
	cp := *d
	r.byID[d.ID] = &cp
	return nil
}

func (r *fakeDepartmentRepo) List(_ context.Context) ([]entity.Department, error) {
	out := make([]entity.Department, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, *d)
	}
	return out, nil
}

type fakeRewardRepo struct{ rewards []entity.Reward }

func (r *fakeRewardRepo) ListActive(_ context.Context) ([]entity.Reward, error) {
	return r.rewards, nil
}

type fakePublisher struct{}

func (fakePublisher) ShareUpdate(_ context.Context, p *entity.EmployeeProfile) (string, error) {
	return fmt.Sprintf("share:%s:%d", p.Name, p.TotalImpactPoints), nil
}

func newProfileUseCase(profiles *fakeProfileRepo, departments *fakeDepartmentRepo, rewards *fakeRewardRepo) *usecase.ProfileUseCase {
	return usecase.NewProfileUseCase(profiles, departments, rewards, fakePublisher{})
}

func TestProfileCreate_EmpleadoDuplicadoDevuelveDuplicate(t *testing.T) {
	uc := newProfileUseCase(newFakeProfileRepo(), newFakeDepartmentRepo(), &fakeRewardRepo{})
	ctx := context.Background()

	first, err := uc.Create(ctx, dto.CreateProfileRequest{EmployeeID: "emp-1", Name: "Ana"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, "USD", first.Currency, "la moneda por defecto es USD")

	_, err = uc.Create(ctx, dto.CreateProfileRequest{EmployeeID: "emp-1", Name: "Ana otra vez"})
	require.ErrorIs(t, err, domain.ErrDuplicate, "un empleado tiene a lo sumo un perfil")
}

func TestProfileCreate_DepartamentoInexistenteDevuelveNotFound(t *testing.T) {
	uc := newProfileUseCase(newFakeProfileRepo(), newFakeDepartmentRepo(), &fakeRewardRepo{})

	_, err := uc.Create(context.Background(), dto.CreateProfileRequest{
		EmployeeID:   "emp-1",
		Name:         "Ana",
		DepartmentID: "no-existe",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileRedeemView_MarcaPremiosAlcanzables(t *testing.T) {
	profiles := newFakeProfileRepo()
	rewards := &fakeRewardRepo{rewards: []entity.Reward{
		{ID: "rw-1", Name: "Día libre", PointsCost: 100, IsActive: true},
		{ID: "rw-2", Name: "Gift card", PointsCost: 500, IsActive: true},
	}}
	uc := newProfileUseCase(profiles, newFakeDepartmentRepo(), rewards)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProfileRequest{EmployeeID: "emp-1", Name: "Ana"})
	require.NoError(t, err)
	p, err := profiles.GetByID(ctx, created.ID)
	require.NoError(t, err)
	p.TotalImpactPoints = 200
	require.NoError(t, profiles.Update(ctx, p))

	view, err := uc.RedeemView(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, view.PointsBalance)
	require.Len(t, view.Rewards, 2)
	assert.True(t, view.Rewards[0].Affordable, "200 puntos alcanzan el premio de 100")
	assert.False(t, view.Rewards[1].Affordable, "200 puntos no alcanzan el premio de 500")
}

func TestDepartmentCreate_OrgDuplicadoDevuelveDuplicate(t *testing.T) {
	uc := usecase.NewDepartmentUseCase(newFakeDepartmentRepo(), nil, 1000)
	ctx := context.Background()

	first, err := uc.Create(ctx, dto.CreateDepartmentRequest{OrgDepartmentID: "hr-10", Name: "Recursos Humanos"})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, first.CarbonBudget, "presupuesto 0 toma el valor por defecto")

	_, err = uc.Create(ctx, dto.CreateDepartmentRequest{OrgDepartmentID: "hr-10", Name: "RRHH bis"})
	require.ErrorIs(t, err, domain.ErrDuplicate, "un departamento organizacional tiene a lo sumo un registro")
}

func TestDepartmentCreate_PresupuestoNegativoEsInvalido(t *testing.T) {
	uc := usecase.NewDepartmentUseCase(newFakeDepartmentRepo(), nil, 1000)

	_, err := uc.Create(context.Background(), dto.CreateDepartmentRequest{
		OrgDepartmentID: "hr-10",
		Name:            "Recursos Humanos",
		CarbonBudget:    -5,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
