package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

const organizationColumns = `id, name, total_approved_activities, total_offset_estimate, sdg_metrics, department_carbon_budget, current_carbon_used, budget_usage_percentage, lacking_sdgs_display, recommendation_text, updated_at`

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL (usable con pool o tx).
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador del singleton organizacional. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// EnsureSingleton devuelve la fila de la organización, creándola si no existe.
// Se invoca una vez en el arranque; el ID resultante se inyecta al resto de la
// aplicación por constructor.
func (r *OrganizationRepo) EnsureSingleton(ctx context.Context, name string) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organization LIMIT 1`
	o, err := r.scanOne(r.q.QueryRow(ctx, query))
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get organization: %w", err)
	}

	o = &entity.Organization{
		ID:        uuid.New().String(),
		Name:      name,
		UpdatedAt: time.Now(),
	}
	insert := `
		INSERT INTO organization (` + organizationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(ctx, insert,
		o.ID, o.Name, o.TotalApprovedActivities, o.TotalOffsetEstimate, o.SDGMetrics,
		o.DepartmentCarbonBudget, o.CurrentCarbonUsed, o.BudgetUsagePercentage,
		o.LackingSDGsDisplay, o.RecommendationText, o.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert organization: %w", err)
	}
	return o, nil
}

// Get obtiene la organización por ID.
func (r *OrganizationRepo) Get(ctx context.Context, id string) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organization WHERE id = $1`
	o, err := r.scanOne(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return o, nil
}

// Update persiste el snapshot organizacional recomputado.
func (r *OrganizationRepo) Update(ctx context.Context, o *entity.Organization) error {
	query := `
		UPDATE organization
		SET name = $2, total_approved_activities = $3, total_offset_estimate = $4,
			sdg_metrics = $5, department_carbon_budget = $6, current_carbon_used = $7,
			budget_usage_percentage = $8, lacking_sdgs_display = $9,
			recommendation_text = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Name, o.TotalApprovedActivities, o.TotalOffsetEstimate, o.SDGMetrics,
		o.DepartmentCarbonBudget, o.CurrentCarbonUsed, o.BudgetUsagePercentage,
		o.LackingSDGsDisplay, o.RecommendationText, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepo) scanOne(row pgx.Row) (*entity.Organization, error) {
	var o entity.Organization
	err := row.Scan(
		&o.ID, &o.Name, &o.TotalApprovedActivities, &o.TotalOffsetEstimate, &o.SDGMetrics,
		&o.DepartmentCarbonBudget, &o.CurrentCarbonUsed, &o.BudgetUsagePercentage,
		&o.LackingSDGsDisplay, &o.RecommendationText, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
