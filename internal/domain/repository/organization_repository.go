package repository

import (
	"context"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// OrganizationRepository define el puerto del registro singleton de la
// organización. La aplicación asegura la fila única en el arranque
// (EnsureSingleton) e inyecta su ID por constructor; tener más de una fila es
// un error de programación, no algo que se busque en runtime.
type OrganizationRepository interface {
	EnsureSingleton(ctx context.Context, name string) (*entity.Organization, error)
	Get(ctx context.Context, id string) (*entity.Organization, error)
	Update(ctx context.Context, o *entity.Organization) error
}
