package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Impacto-api/internal/application/dashboard"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

// Ensure TxRunner implements dashboard.TxRunner.
var _ dashboard.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es el
// soporte de atomicidad de la cascada de recomputación.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	activityRepo repository.ActivityRepository,
	profileRepo repository.EmployeeProfileRepository,
	departmentRepo repository.DepartmentRepository,
	orgRepo repository.OrganizationRepository,
	opportunityRepo repository.OpportunityRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	activityRepo := NewActivityRepository(tx)
	profileRepo := NewEmployeeProfileRepository(tx)
	departmentRepo := NewDepartmentRepository(tx)
	orgRepo := NewOrganizationRepository(tx)
	opportunityRepo := NewOpportunityRepository(tx)

	if err := fn(activityRepo, profileRepo, departmentRepo, orgRepo, opportunityRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
