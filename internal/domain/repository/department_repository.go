package repository

import (
	"context"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// DepartmentRepository define el puerto de persistencia para registros CSR de
// departamento. Create debe devolver domain.ErrDuplicate si el departamento
// organizacional ya tiene registro.
type DepartmentRepository interface {
	Create(ctx context.Context, d *entity.Department) error
	GetByID(ctx context.Context, id string) (*entity.Department, error)
	GetByOrgDepartmentID(ctx context.Context, orgDepartmentID string) (*entity.Department, error)
	Update(ctx context.Context, d *entity.Department) error
	List(ctx context.Context) ([]entity.Department, error)
}
