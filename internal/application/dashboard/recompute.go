// Package dashboard contiene el motor de recomputación en cascada y el caso de
// uso de lectura/refresh del dashboard organizacional. Toda mutación de una
// actividad pasa por aquí: la cascada rederiva los campos de la actividad y
// luego recomputa perfil, departamento y organización, en ese orden, dentro de
// una sola transacción. El recálculo es idempotente: recomputar dos veces sin
// cambios deja los mismos agregados.
package dashboard

import (
	"context"
	"time"

	"github.com/jhoicas/Impacto-api/internal/application/ports"
	"github.com/jhoicas/Impacto-api/internal/domain"
	"github.com/jhoicas/Impacto-api/internal/domain/csr"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

// RecomputeService orquesta la cascada de agregados. El ID de la organización
// singleton se inyecta por constructor (se asegura en el arranque).
type RecomputeService struct {
	txRunner   TxRunner
	classifier ports.SDGClassifier
	estimator  ports.CarbonEstimator
	orgID      string
	now        func() time.Time
}

func NewRecomputeService(txRunner TxRunner, classifier ports.SDGClassifier, estimator ports.CarbonEstimator, orgID string) *RecomputeService {
	return &RecomputeService{
		txRunner:   txRunner,
		classifier: classifier,
		estimator:  estimator,
		orgID:      orgID,
		now:        time.Now,
	}
}

// CascadeActivity carga la actividad, aplica mutate (validaciones de
// transición incluidas), rederiva SDG/offset/puntos y recomputa los agregados
// dependientes. Con mutate nil solo recomputa los agregados desde los campos
// ya persistidos. Si mutate devuelve error la transacción se revierte completa.
func (s *RecomputeService) CascadeActivity(ctx context.Context, activityID string, mutate func(a *entity.Activity) error) (*entity.Activity, error) {
	var result *entity.Activity
	err := s.txRunner.Run(ctx, func(
		activityRepo repository.ActivityRepository,
		profileRepo repository.EmployeeProfileRepository,
		departmentRepo repository.DepartmentRepository,
		orgRepo repository.OrganizationRepository,
		_ repository.OpportunityRepository,
	) error {
		a, err := activityRepo.GetByID(ctx, activityID)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrNotFound
		}
		// Los campos derivados solo se rederivan cuando hubo mutación: los
		// puntos se estampan con el conjunto rezagado vigente al mutar y no
		// se reabren en recomputaciones posteriores.
		if mutate != nil {
			if err := mutate(a); err != nil {
				return err
			}
			if err := s.rederiveActivity(ctx, orgRepo, a); err != nil {
				return err
			}
			a.UpdatedAt = s.now()
			if err := activityRepo.Update(ctx, a); err != nil {
				return err
			}
		}
		if err := s.recomputeProfileTx(ctx, activityRepo, profileRepo, a.ProfileID); err != nil {
			return err
		}
		if a.DepartmentID != "" {
			if err := s.recomputeDepartmentTx(ctx, activityRepo, departmentRepo, a.DepartmentID); err != nil {
				return err
			}
		}
		if err := s.recomputeOrganizationTx(ctx, activityRepo, departmentRepo, orgRepo); err != nil {
			return err
		}
		result = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecomputeDepartment recalcula el rollup de carbono de un departamento y el
// agregado organizacional (p.ej. tras cambiar un presupuesto).
func (s *RecomputeService) RecomputeDepartment(ctx context.Context, departmentID string) error {
	return s.txRunner.Run(ctx, func(
		activityRepo repository.ActivityRepository,
		_ repository.EmployeeProfileRepository,
		departmentRepo repository.DepartmentRepository,
		orgRepo repository.OrganizationRepository,
		_ repository.OpportunityRepository,
	) error {
		if err := s.recomputeDepartmentTx(ctx, activityRepo, departmentRepo, departmentID); err != nil {
			return err
		}
		return s.recomputeOrganizationTx(ctx, activityRepo, departmentRepo, orgRepo)
	})
}

// RecomputeOrganization recalcula únicamente el snapshot organizacional.
func (s *RecomputeService) RecomputeOrganization(ctx context.Context) error {
	return s.txRunner.Run(ctx, func(
		activityRepo repository.ActivityRepository,
		_ repository.EmployeeProfileRepository,
		departmentRepo repository.DepartmentRepository,
		orgRepo repository.OrganizationRepository,
		_ repository.OpportunityRepository,
	) error {
		return s.recomputeOrganizationTx(ctx, activityRepo, departmentRepo, orgRepo)
	})
}

// rederiveActivity recalcula los campos derivados de la actividad: categoría
// SDG desde la descripción, offset de carbono y puntos de impacto. El bonus de
// SDG rezagado se lee del snapshot organizacional vigente al momento de la
// mutación; una actividad ya puntuada no se reabre cuando el conjunto rezagado
// cambia después.
func (s *RecomputeService) rederiveActivity(ctx context.Context, orgRepo repository.OrganizationRepository, a *entity.Activity) error {
	code, err := s.classifier.Classify(ctx, a.Description)
	if err != nil {
		return err
	}
	offset, err := s.estimator.EstimateOffset(ctx, code, a.Hours)
	if err != nil {
		return err
	}

	lacking := csr.DefaultLackingSDGs
	org, err := orgRepo.Get(ctx, s.orgID)
	if err != nil {
		return err
	}
	if org != nil {
		lacking = csr.LackingFromMetricsJSON(org.SDGMetrics)
	}

	a.SDGCategory = code
	a.CarbonOffsetEstimate = offset
	a.ImpactPoints = csr.ImpactPoints(a.Status, a.Hours, a.DonationAmount, code, lacking)
	return nil
}

func (s *RecomputeService) recomputeProfileTx(ctx context.Context, activityRepo repository.ActivityRepository, profileRepo repository.EmployeeProfileRepository, profileID string) error {
	p, err := profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	activities, err := activityRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return err
	}
	totals := csr.ComputeProfileTotals(activities, s.now())
	p.VolunteeringHours = totals.VolunteeringHours
	p.DonationAmount = totals.DonationAmount
	p.TotalImpactPoints = totals.TotalImpactPoints
	p.LastQuarterPoints = totals.LastQuarterPoints
	p.PointImprovement = totals.PointImprovement
	p.UpdatedAt = s.now()
	return profileRepo.Update(ctx, p)
}

func (s *RecomputeService) recomputeDepartmentTx(ctx context.Context, activityRepo repository.ActivityRepository, departmentRepo repository.DepartmentRepository, departmentID string) error {
	d, err := departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	totalOffset, err := activityRepo.SumApprovedOffsetByDepartment(ctx, departmentID)
	if err != nil {
		return err
	}
	dc := csr.ComputeDepartmentCarbon(totalOffset, d.CarbonBudget)
	d.TotalCarbonOffset = dc.TotalOffset
	d.CarbonUsed = dc.Used
	d.BudgetUsagePercentage = dc.UsagePercentage
	d.UpdatedAt = s.now()
	return departmentRepo.Update(ctx, d)
}

func (s *RecomputeService) recomputeOrganizationTx(ctx context.Context, activityRepo repository.ActivityRepository, departmentRepo repository.DepartmentRepository, orgRepo repository.OrganizationRepository) error {
	org, err := orgRepo.Get(ctx, s.orgID)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrNotFound
	}

	approved, err := activityRepo.ListApproved(ctx)
	if err != nil {
		return err
	}
	totals := csr.ComputeOrganizationActivityTotals(approved)
	metrics := csr.Distribution(approved)
	metricsJSON, err := csr.MarshalMetrics(metrics)
	if err != nil {
		return err
	}

	departments, err := departmentRepo.List(ctx)
	if err != nil {
		return err
	}
	budget := csr.ComputeOrganizationBudget(departments)

	display := csr.LackingDisplay(metrics)
	org.TotalApprovedActivities = totals.ApprovedCount
	org.TotalOffsetEstimate = totals.TotalOffset
	org.SDGMetrics = metricsJSON
	org.DepartmentCarbonBudget = budget.Budget
	org.CurrentCarbonUsed = budget.Used
	org.BudgetUsagePercentage = budget.UsagePercentage
	org.LackingSDGsDisplay = display
	org.RecommendationText = csr.RecommendationText(display)
	org.UpdatedAt = s.now()
	return orgRepo.Update(ctx, org)
}
