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

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

const activityColumns = `id, name, profile_id, department_id, date, hours, donation_amount, currency, description, proof_filename, status, sdg_category, carbon_offset_estimate, impact_points, created_at, updated_at`

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL (usable con pool o tx).
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador de persistencia para actividades. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Create persiste una nueva actividad.
func (r *ActivityRepo) Create(ctx context.Context, a *entity.Activity) error {
	query := `
		INSERT INTO activities (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Name, a.ProfileID, a.DepartmentID, a.Date, a.Hours, a.DonationAmount,
		a.Currency, a.Description, a.ProofFilename, a.Status, string(a.SDGCategory),
		a.CarbonOffsetEstimate, a.ImpactPoints, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// GetByID obtiene una actividad por ID.
func (r *ActivityRepo) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	a, err := scanActivity(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return a, nil
}

// Update actualiza una actividad existente, campos derivados incluidos.
func (r *ActivityRepo) Update(ctx context.Context, a *entity.Activity) error {
	query := `
		UPDATE activities
		SET name = $2, date = $3, hours = $4, donation_amount = $5, currency = $6,
			description = $7, proof_filename = $8, status = $9, sdg_category = $10,
			carbon_offset_estimate = $11, impact_points = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Name, a.Date, a.Hours, a.DonationAmount, a.Currency,
		a.Description, a.ProofFilename, a.Status, string(a.SDGCategory),
		a.CarbonOffsetEstimate, a.ImpactPoints, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	return nil
}

// List lista actividades con paginación, más recientes primero.
func (r *ActivityRepo) List(ctx context.Context, limit, offset int) ([]entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	return collectActivities(rows)
}

// ListByProfile lista todas las actividades de un perfil.
func (r *ActivityRepo) ListByProfile(ctx context.Context, profileID string) ([]entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE profile_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("list activities by profile: %w", err)
	}
	defer rows.Close()
	return collectActivities(rows)
}

// ListApproved lista las actividades aprobadas de toda la organización.
func (r *ActivityRepo) ListApproved(ctx context.Context) ([]entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE status = $1 ORDER BY date DESC`
	rows, err := r.q.Query(ctx, query, entity.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved activities: %w", err)
	}
	defer rows.Close()
	return collectActivities(rows)
}

// SumApprovedOffsetByDepartment agrega el offset aprobado de un departamento en SQL.
func (r *ActivityRepo) SumApprovedOffsetByDepartment(ctx context.Context, departmentID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(carbon_offset_estimate), 0)
		FROM activities WHERE department_id = $1 AND status = $2`
	var sum float64
	if err := r.q.QueryRow(ctx, query, departmentID, entity.StatusApproved).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum approved offset: %w", err)
	}
	return sum, nil
}

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var a entity.Activity
	var sdg string
	err := row.Scan(
		&a.ID, &a.Name, &a.ProfileID, &a.DepartmentID, &a.Date, &a.Hours, &a.DonationAmount,
		&a.Currency, &a.Description, &a.ProofFilename, &a.Status, &sdg,
		&a.CarbonOffsetEstimate, &a.ImpactPoints, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.SDGCategory = entity.SDGCode(sdg)
	return &a, nil
}

func collectActivities(rows pgx.Rows) ([]entity.Activity, error) {
	var out []entity.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return out, nil
}
