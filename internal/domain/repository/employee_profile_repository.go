package repository

import (
	"context"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// EmployeeProfileRepository define el puerto de persistencia para perfiles CSR.
// Create debe devolver domain.ErrDuplicate si el empleado ya tiene perfil
// (constraint de unicidad sobre employee_id).
type EmployeeProfileRepository interface {
	Create(ctx context.Context, p *entity.EmployeeProfile) error
	GetByID(ctx context.Context, id string) (*entity.EmployeeProfile, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*entity.EmployeeProfile, error)
	Update(ctx context.Context, p *entity.EmployeeProfile) error
	// List devuelve toda la población de perfiles; el cálculo de ranks es un
	// scan completo así que no hay versión paginada aquí.
	List(ctx context.Context) ([]entity.EmployeeProfile, error)
}
