package repository

import (
	"context"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// ActivityRepository define el puerto de persistencia para actividades CSR.
// Los listados "approved" son los snapshots que consume el núcleo de agregación.
type ActivityRepository interface {
	Create(ctx context.Context, a *entity.Activity) error
	GetByID(ctx context.Context, id string) (*entity.Activity, error)
	Update(ctx context.Context, a *entity.Activity) error
	List(ctx context.Context, limit, offset int) ([]entity.Activity, error)
	ListByProfile(ctx context.Context, profileID string) ([]entity.Activity, error)
	ListApproved(ctx context.Context) ([]entity.Activity, error)
	// SumApprovedOffsetByDepartment agrega en SQL el offset de las actividades
	// aprobadas de un departamento.
	SumApprovedOffsetByDepartment(ctx context.Context, departmentID string) (float64, error)
}
