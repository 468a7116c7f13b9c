package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Impacto-api/internal/application/dashboard"
	"github.com/jhoicas/Impacto-api/internal/domain"
	"github.com/jhoicas/Impacto-api/internal/domain/csr"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore almacena todo en mapas; implementa los puertos de repositorio que
// consume la cascada. No hay tx real: Run ejecuta el fn directamente, lo que
// basta para verificar el orden y el resultado de la recomputación.
type memStore struct {
	activities  map[string]*entity.Activity
	profiles    map[string]*entity.EmployeeProfile
	departments map[string]*entity.Department
	org         *entity.Organization
}

func newMemStore() *memStore {
	return &memStore{
		activities:  map[string]*entity.Activity{},
		profiles:    map[string]*entity.EmployeeProfile{},
		departments: map[string]*entity.Department{},
	}
}

func (s *memStore) Run(ctx context.Context, fn func(
	repository.ActivityRepository,
	repository.EmployeeProfileRepository,
	repository.DepartmentRepository,
	repository.OrganizationRepository,
	repository.OpportunityRepository,
) error) error {
	return fn(
		&memActivityRepo{s},
		&memProfileRepo{s},
		&memDepartmentRepo{s},
		&memOrgRepo{s},
		nil,
	)
}

type memActivityRepo struct{ s *memStore }

func (r *memActivityRepo) Create(_ context.Context, a *entity.Activity) error {
	cp := *a
	r.s.activities[a.ID] = &cp
	return nil
}

func (r *memActivityRepo) GetByID(_ context.Context, id string) (*entity.Activity, error) {
	a, ok := r.s.activities[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memActivityRepo) Update(_ context.Context, a *entity.Activity) error {
	cp := *a
	r.s.activities[a.ID] = &cp
	return nil
}

func (r *memActivityRepo) List(_ context.Context, _, _ int) ([]entity.Activity, error) {
	var out []entity.Activity
	for _, a := range r.s.activities {
		out = append(out, *a)
	}
	return out, nil
}

func (r *memActivityRepo) ListByProfile(_ context.Context, profileID string) ([]entity.Activity, error) {
	var out []entity.Activity
	for _, a := range r.s.activities {
		if a.ProfileID == profileID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memActivityRepo) ListApproved(_ context.Context) ([]entity.Activity, error) {
	var out []entity.Activity
	for _, a := range r.s.activities {
		if a.Status == entity.StatusApproved {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memActivityRepo) SumApprovedOffsetByDepartment(_ context.Context, departmentID string) (float64, error) {
	var sum float64
	for _, a := range r.s.activities {
		if a.Status == entity.StatusApproved && a.DepartmentID == departmentID {
			sum += a.CarbonOffsetEstimate
		}
	}
	return sum, nil
}

type memProfileRepo struct{ s *memStore }

func (r *memProfileRepo) Create(_ context.Context, p *entity.EmployeeProfile) error {
	cp := *p
	r.s.profiles[p.ID] = &cp
	return nil
}

func (r *memProfileRepo) GetByID(_ context.Context, id string) (*entity.EmployeeProfile, error) {
	p, ok := r.s.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) GetByEmployeeID(_ context.Context, employeeID string) (*entity.EmployeeProfile, error) {
	for _, p := range r.s.profiles {
		if p.EmployeeID == employeeID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProfileRepo) Update(_ context.Context, p *entity.EmployeeProfile) error {
	cp := *p
	r.s.profiles[p.ID] = &cp
	return nil
}

func (r *memProfileRepo) List(_ context.Context) ([]entity.EmployeeProfile, error) {
	var out []entity.EmployeeProfile
	for _, p := range r.s.profiles {
		out = append(out, *p)
	}
	return out, nil
}

type memDepartmentRepo struct{ s *memStore }

func (r *memDepartmentRepo) Create(_ context.Context, d *entity.Department) error {
	cp := *d
	r.s.departments[d.ID] = &cp
	return nil
}

func (r *memDepartmentRepo) GetByID(_ context.Context, id string) (*entity.Department, error) {
	d, ok := r.s.departments[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDepartmentRepo) GetByOrgDepartmentID(_ context.Context, orgDepartmentID string) (*entity.Department, error) {
	for _, d := range r.s.departments {
		if d.OrgDepartmentID == orgDepartmentID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memDepartmentRepo) Update(_ context.Context, d *entity.Department) error {
	cp := *d
	r.s.departments[d.ID] = &cp
	return nil
}

func (r *memDepartmentRepo) List(_ context.Context) ([]entity.Department, error) {
	var out []entity.Department
	for _, d := range r.s.departments {
		out = append(out, *d)
	}
	return out, nil
}

type memOrgRepo struct{ s *memStore }

func (r *memOrgRepo) EnsureSingleton(_ context.Context, name string) (*entity.Organization, error) {
	if r.s.org == nil {
		r.s.org = &entity.Organization{ID: "org-1", Name: name}
	}
	cp := *r.s.org
	return &cp, nil
}

func (r *memOrgRepo) Get(_ context.Context, id string) (*entity.Organization, error) {
	if r.s.org == nil || r.s.org.ID != id {
		return nil, nil
	}
	cp := *r.s.org
	return &cp, nil
}

func (r *memOrgRepo) Update(_ context.Context, o *entity.Organization) error {
	cp := *o
	r.s.org = &cp
	return nil
}

// Puertos externos fake: clasificador y estimador deterministas sobre el
// núcleo puro, como hacen las simulaciones reales.
type fakeClassifier struct{}

func (fakeClassifier) Classify(_ context.Context, description string) (entity.SDGCode, error) {
	return csr.ClassifySDG(description), nil
}

type fakeEstimator struct{}

func (fakeEstimator) EstimateOffset(_ context.Context, code entity.SDGCode, hours float64) (float64, error) {
	return csr.CarbonOffset(code, hours, csr.DefaultCarbonRatePerHour), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func seedStore(t *testing.T) (*memStore, *dashboard.RecomputeService) {
	t.Helper()
	s := newMemStore()
	s.org = &entity.Organization{ID: "org-1", Name: "Impacto CSR"}
	s.departments["dep-1"] = &entity.Department{
		ID:              "dep-1",
		OrgDepartmentID: "hr-10",
		Name:            "Recursos Humanos",
		CarbonBudget:    1000,
	}
	s.profiles["prof-1"] = &entity.EmployeeProfile{
		ID:             "prof-1",
		EmployeeID:     "emp-1",
		Name:           "Ana",
		DepartmentID:   "dep-1",
		Currency:       "USD",
		DonationAmount: decimal.Zero,
	}
	s.activities["act-1"] = &entity.Activity{
		ID:             "act-1",
		Name:           "Limpieza de playa",
		ProfileID:      "prof-1",
		DepartmentID:   "dep-1",
		Date:           time.Now().AddDate(0, 0, -7),
		Hours:          10,
		DonationAmount: decimal.NewFromInt(100),
		Currency:       "USD",
		Description:    "Beach cleanup with the local community",
		Status:         entity.StatusSubmitted,
	}
	svc := dashboard.NewRecomputeService(s, fakeClassifier{}, fakeEstimator{}, "org-1")
	return s, svc
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCascadeActivity_ApprovePropagaAgregados(t *testing.T) {
	s, svc := seedStore(t)

	a, err := svc.CascadeActivity(context.Background(), "act-1", func(a *entity.Activity) error {
		if a.Status != entity.StatusSubmitted {
			return domain.ErrInvalidTransition
		}
		a.Status = entity.StatusApproved
		return nil
	})
	require.NoError(t, err)

	// Derivados de la actividad: "beach" clasifica sdg14, offset 10h*5=50,
	// puntos 10*10 + bonus rezagado 50 + donación 100*0.5 = 200 (sdg14 está en
	// el conjunto rezagado por defecto de un snapshot vacío).
	assert.Equal(t, entity.SDG14, a.SDGCategory)
	assert.Equal(t, 50.0, a.CarbonOffsetEstimate)
	assert.Equal(t, 200, a.ImpactPoints)

	// Perfil recomputado desde sus actividades aprobadas.
	p := s.profiles["prof-1"]
	assert.Equal(t, 10.0, p.VolunteeringHours)
	assert.True(t, p.DonationAmount.Equal(decimal.NewFromInt(100)), "donación agregada")
	assert.Equal(t, 200, p.TotalImpactPoints)
	assert.Equal(t, 0, p.LastQuarterPoints, "actividad de hace 7 días no cae en la ventana del trimestre pasado")
	assert.Equal(t, 200, p.PointImprovement)

	// Departamento: uso = 0.5 * offset, porcentaje sobre presupuesto 1000.
	d := s.departments["dep-1"]
	assert.Equal(t, 50.0, d.TotalCarbonOffset)
	assert.Equal(t, 25.0, d.CarbonUsed)
	assert.InDelta(t, 2.5, d.BudgetUsagePercentage, 1e-9)

	// Organización: conteo, offset total, métricas y recomendación.
	org := s.org
	assert.Equal(t, 1, org.TotalApprovedActivities)
	assert.Equal(t, 50.0, org.TotalOffsetEstimate)
	assert.Contains(t, org.SDGMetrics, `"sdg14"`)
	assert.NotEmpty(t, org.LackingSDGsDisplay)
	assert.NotEmpty(t, org.RecommendationText)
	assert.Equal(t, 1000.0, org.DepartmentCarbonBudget)
	assert.Equal(t, 25.0, org.CurrentCarbonUsed)
}

func TestCascadeActivity_RejectDejaAgregadosEnCero(t *testing.T) {
	s, svc := seedStore(t)

	_, err := svc.CascadeActivity(context.Background(), "act-1", func(a *entity.Activity) error {
		if a.Status != entity.StatusSubmitted {
			return domain.ErrInvalidTransition
		}
		a.Status = entity.StatusRejected
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 0, s.activities["act-1"].ImpactPoints, "rechazada no puntúa")
	assert.Equal(t, 0, s.profiles["prof-1"].TotalImpactPoints)
	assert.Equal(t, 0.0, s.departments["dep-1"].CarbonUsed)
	assert.Equal(t, 0, s.org.TotalApprovedActivities)
}

func TestCascadeActivity_ApproveLuegoRejectRevierte(t *testing.T) {
	s, svc := seedStore(t)
	ctx := context.Background()

	approve := func(a *entity.Activity) error {
		a.Status = entity.StatusApproved
		return nil
	}
	_, err := svc.CascadeActivity(ctx, "act-1", approve)
	require.NoError(t, err)
	require.Equal(t, 200, s.profiles["prof-1"].TotalImpactPoints)

	// Una reversión administrativa (approved -> rejected) debe restar la
	// contribución completa de la actividad en toda la cadena.
	_, err = svc.CascadeActivity(ctx, "act-1", func(a *entity.Activity) error {
		a.Status = entity.StatusRejected
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 0, s.profiles["prof-1"].TotalImpactPoints)
	assert.Equal(t, 0.0, s.departments["dep-1"].TotalCarbonOffset)
	assert.Equal(t, 0, s.org.TotalApprovedActivities)
	assert.Equal(t, 0.0, s.org.TotalOffsetEstimate)
}

func TestCascadeActivity_MutacionInvalidaNoPersiste(t *testing.T) {
	s, svc := seedStore(t)

	_, err := svc.CascadeActivity(context.Background(), "act-1", func(a *entity.Activity) error {
		return domain.ErrInvalidTransition
	})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.StatusSubmitted, s.activities["act-1"].Status, "la actividad no cambia si mutate falla")
}

func TestCascadeActivity_NoExisteDevuelveNotFound(t *testing.T) {
	_, svc := seedStore(t)
	_, err := svc.CascadeActivity(context.Background(), "no-such", nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCascadeActivity_EsIdempotente(t *testing.T) {
	s, svc := seedStore(t)
	ctx := context.Background()

	_, err := svc.CascadeActivity(ctx, "act-1", func(a *entity.Activity) error {
		a.Status = entity.StatusApproved
		return nil
	})
	require.NoError(t, err)
	first := *s.profiles["prof-1"]

	// Recomputar sin mutación no debe mover ningún agregado.
	_, err = svc.CascadeActivity(ctx, "act-1", nil)
	require.NoError(t, err)

	assert.Equal(t, first.TotalImpactPoints, s.profiles["prof-1"].TotalImpactPoints)
	assert.Equal(t, first.VolunteeringHours, s.profiles["prof-1"].VolunteeringHours)
	assert.Equal(t, 50.0, s.departments["dep-1"].TotalCarbonOffset)
	assert.Equal(t, 1, s.org.TotalApprovedActivities)
}
