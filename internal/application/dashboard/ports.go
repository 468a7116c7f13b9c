package dashboard

import (
	"context"

	"github.com/jhoicas/Impacto-api/internal/application/dto"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad de la cascada de
// recomputación (actividad -> perfil -> departamento -> organización).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		activityRepo repository.ActivityRepository,
		profileRepo repository.EmployeeProfileRepository,
		departmentRepo repository.DepartmentRepository,
		orgRepo repository.OrganizationRepository,
		opportunityRepo repository.OpportunityRepository,
	) error) error
}

// ReportGenerator genera la representación PDF del snapshot del dashboard.
type ReportGenerator interface {
	GenerateDashboardPDF(ctx context.Context, data *dto.DashboardResponse) ([]byte, error)
}
