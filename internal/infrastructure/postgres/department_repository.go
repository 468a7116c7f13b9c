package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Impacto-api/internal/domain"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

const departmentColumns = `id, org_department_id, name, carbon_budget, total_carbon_offset, carbon_used, budget_usage_percentage, created_at, updated_at`

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL (usable con pool o tx).
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador de departamentos. Pasar pool o tx (Querier).
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create persiste un registro nuevo. Devuelve domain.ErrDuplicate si el
// departamento organizacional ya tiene registro (unique sobre org_department_id).
func (r *DepartmentRepo) Create(ctx context.Context, d *entity.Department) error {
	query := `
		INSERT INTO departments (` + departmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.OrgDepartmentID, d.Name, d.CarbonBudget, d.TotalCarbonOffset,
		d.CarbonUsed, d.BudgetUsagePercentage, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento por ID.
func (r *DepartmentRepo) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByOrgDepartmentID obtiene el registro CSR de un departamento organizacional.
func (r *DepartmentRepo) GetByOrgDepartmentID(ctx context.Context, orgDepartmentID string) (*entity.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE org_department_id = $1`
	return r.getOne(ctx, query, orgDepartmentID)
}

func (r *DepartmentRepo) getOne(ctx context.Context, query string, arg any) (*entity.Department, error) {
	var d entity.Department
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&d.ID, &d.OrgDepartmentID, &d.Name, &d.CarbonBudget, &d.TotalCarbonOffset,
		&d.CarbonUsed, &d.BudgetUsagePercentage, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

// Update actualiza un departamento, rollup de carbono incluido.
func (r *DepartmentRepo) Update(ctx context.Context, d *entity.Department) error {
	query := `
		UPDATE departments
		SET name = $2, carbon_budget = $3, total_carbon_offset = $4,
			carbon_used = $5, budget_usage_percentage = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Name, d.CarbonBudget, d.TotalCarbonOffset,
		d.CarbonUsed, d.BudgetUsagePercentage, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

// List lista todos los departamentos.
func (r *DepartmentRepo) List(ctx context.Context) ([]entity.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var out []entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(
			&d.ID, &d.OrgDepartmentID, &d.Name, &d.CarbonBudget, &d.TotalCarbonOffset,
			&d.CarbonUsed, &d.BudgetUsagePercentage, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate departments: %w", err)
	}
	return out, nil
}
