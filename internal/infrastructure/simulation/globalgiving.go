package simulation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Impacto-api/internal/application/ports"
	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/pkg/logger"
)

var _ ports.OpportunitySource = (*OpportunitySource)(nil)

// OpportunitySource fuente simulada de oportunidades externas, al estilo de un
// directorio de proyectos de caridad. Devuelve un registro sintético por cada
// SDG solicitado.
type OpportunitySource struct {
	log *logger.Logger
	now func() time.Time
}

// NewOpportunitySource construye la fuente simulada.
func NewOpportunitySource(log *logger.Logger) *OpportunitySource {
	return &OpportunitySource{log: log.Component("simulation"), now: time.Now}
}

// FetchOpportunities genera una oportunidad por código. Los registros son
// estables entre corridas (mismo nombre por SDG) para que el upsert del
// catálogo local no duplique.
func (s *OpportunitySource) FetchOpportunities(_ context.Context, codes []entity.SDGCode) ([]entity.Opportunity, error) {
	s.log.Info().Int("codes", len(codes)).Msg("consulta simulada de oportunidades externas")
	out := make([]entity.Opportunity, 0, len(codes))
	for _, code := range codes {
		out = append(out, entity.Opportunity{
			Name:        fmt.Sprintf("Simulated Project for %s", strings.ToUpper(string(code))),
			SourceOrg:   "Global Charity Partner",
			SDGCode:     code,
			Date:        s.now(),
			Location:    "Virtual/Global",
			Description: fmt.Sprintf("A simulated volunteering project supporting %s.", code.Label()),
		})
	}
	return out, nil
}
