package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
	"github.com/jhoicas/Impacto-api/internal/domain/repository"
)

var _ repository.RewardRepository = (*RewardRepo)(nil)

// RewardRepo implementación del puerto RewardRepository sobre PostgreSQL (usable con pool o tx).
type RewardRepo struct {
	q Querier
}

// NewRewardRepository construye el adaptador del catálogo de premios. Pasar pool o tx (Querier).
func NewRewardRepository(q Querier) *RewardRepo {
	return &RewardRepo{q: q}
}

// ListActive lista los premios activos, más baratos primero.
func (r *RewardRepo) ListActive(ctx context.Context) ([]entity.Reward, error) {
	query := `
		SELECT id, name, description, points_cost, is_active, created_at
		FROM rewards WHERE is_active ORDER BY points_cost`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}
	defer rows.Close()

	var out []entity.Reward
	for rows.Next() {
		var rw entity.Reward
		if err := rows.Scan(&rw.ID, &rw.Name, &rw.Description, &rw.PointsCost, &rw.IsActive, &rw.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reward: %w", err)
		}
		out = append(out, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rewards: %w", err)
	}
	return out, nil
}
