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

var _ repository.EmployeeProfileRepository = (*EmployeeProfileRepo)(nil)

const profileColumns = `id, employee_id, name, department_id, currency, total_impact_points, volunteering_hours, donation_amount, last_quarter_points, point_improvement, created_at, updated_at`

// EmployeeProfileRepo implementación del puerto EmployeeProfileRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeProfileRepo struct {
	q Querier
}

// NewEmployeeProfileRepository construye el adaptador de perfiles. Pasar pool o tx (Querier).
func NewEmployeeProfileRepository(q Querier) *EmployeeProfileRepo {
	return &EmployeeProfileRepo{q: q}
}

// Create persiste un perfil nuevo. Devuelve domain.ErrDuplicate si el empleado
// ya tiene perfil (unique sobre employee_id).
func (r *EmployeeProfileRepo) Create(ctx context.Context, p *entity.EmployeeProfile) error {
	query := `
		INSERT INTO employee_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.EmployeeID, p.Name, p.DepartmentID, p.Currency,
		p.TotalImpactPoints, p.VolunteeringHours, p.DonationAmount,
		p.LastQuarterPoints, p.PointImprovement, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *EmployeeProfileRepo) GetByID(ctx context.Context, id string) (*entity.EmployeeProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM employee_profiles WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmployeeID obtiene el perfil de un empleado.
func (r *EmployeeProfileRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*entity.EmployeeProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM employee_profiles WHERE employee_id = $1`
	return r.getOne(ctx, query, employeeID)
}

func (r *EmployeeProfileRepo) getOne(ctx context.Context, query string, arg any) (*entity.EmployeeProfile, error) {
	var p entity.EmployeeProfile
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.EmployeeID, &p.Name, &p.DepartmentID, &p.Currency,
		&p.TotalImpactPoints, &p.VolunteeringHours, &p.DonationAmount,
		&p.LastQuarterPoints, &p.PointImprovement, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Update actualiza un perfil, totales materializados incluidos.
func (r *EmployeeProfileRepo) Update(ctx context.Context, p *entity.EmployeeProfile) error {
	query := `
		UPDATE employee_profiles
		SET name = $2, department_id = $3, currency = $4, total_impact_points = $5,
			volunteering_hours = $6, donation_amount = $7, last_quarter_points = $8,
			point_improvement = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.DepartmentID, p.Currency, p.TotalImpactPoints,
		p.VolunteeringHours, p.DonationAmount, p.LastQuarterPoints,
		p.PointImprovement, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// List devuelve toda la población de perfiles.
func (r *EmployeeProfileRepo) List(ctx context.Context) ([]entity.EmployeeProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM employee_profiles ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []entity.EmployeeProfile
	for rows.Next() {
		var p entity.EmployeeProfile
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Name, &p.DepartmentID, &p.Currency,
			&p.TotalImpactPoints, &p.VolunteeringHours, &p.DonationAmount,
			&p.LastQuarterPoints, &p.PointImprovement, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return out, nil
}
