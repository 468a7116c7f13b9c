package repository

import (
	"context"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// OpportunityRepository define el puerto de persistencia para oportunidades
// externas. Upsert evita duplicar los registros sintéticos que repone el
// refresh del dashboard (clave natural: nombre + SDG).
type OpportunityRepository interface {
	Upsert(ctx context.Context, o *entity.Opportunity) error
	List(ctx context.Context) ([]entity.Opportunity, error)
	ListBySDG(ctx context.Context, codes []entity.SDGCode) ([]entity.Opportunity, error)
}
