package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

var _ repository.OpportunityRepository = (*OpportunityRepo)(nil)

const opportunityColumns = `id, name, source_org, sdg_code, date, location, description, created_at`

// OpportunityRepo implementación del puerto OpportunityRepository sobre PostgreSQL (usable con pool o tx).
type OpportunityRepo struct {
	q Querier
}

// NewOpportunityRepository construye el adaptador de oportunidades. Pasar pool o tx (Querier).
func NewOpportunityRepository(q Querier) *OpportunityRepo {
	return &OpportunityRepo{q: q}
}

// Upsert inserta o refresca una oportunidad por su clave natural (nombre + SDG).
// El refresh del dashboard repone el mismo catálogo sintético en cada corrida;
// sin el upsert se duplicaría.
func (r *OpportunityRepo) Upsert(ctx context.Context, o *entity.Opportunity) error {
	query := `
		INSERT INTO opportunities (` + opportunityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name, sdg_code) DO UPDATE
		SET source_org = EXCLUDED.source_org, date = EXCLUDED.date,
			location = EXCLUDED.location, description = EXCLUDED.description`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Name, o.SourceOrg, string(o.SDGCode), o.Date, o.Location, o.Description, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert opportunity: %w", err)
	}
	return nil
}

// List lista todas las oportunidades.
func (r *OpportunityRepo) List(ctx context.Context) ([]entity.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities ORDER BY date`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer rows.Close()
	return collectOpportunities(rows)
}

// ListBySDG lista las oportunidades cuyo SDG objetivo está entre los códigos dados.
func (r *OpportunityRepo) ListBySDG(ctx context.Context, codes []entity.SDGCode) ([]entity.Opportunity, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	strs := make([]string, 0, len(codes))
	for _, c := range codes {
		strs = append(strs, string(c))
	}
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE sdg_code = ANY($1) ORDER BY date`
	rows, err := r.q.Query(ctx, query, strs)
	if err != nil {
		return nil, fmt.Errorf("list opportunities by sdg: %w", err)
	}
	defer rows.Close()
	return collectOpportunities(rows)
}

func collectOpportunities(rows pgx.Rows) ([]entity.Opportunity, error) {
	var out []entity.Opportunity
	for rows.Next() {
		var o entity.Opportunity
		var sdg string
		if err := rows.Scan(&o.ID, &o.Name, &o.SourceOrg, &sdg, &o.Date, &o.Location, &o.Description, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		o.SDGCode = entity.SDGCode(sdg)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate opportunities: %w", err)
	}
	return out, nil
}
