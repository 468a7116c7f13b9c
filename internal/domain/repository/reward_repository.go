package repository

import (
	"context"

	"github.com/jhoicas/Impacto-api/internal/domain/entity"
)

// RewardRepository define el puerto de lectura del catálogo de premios.
type RewardRepository interface {
	ListActive(ctx context.Context) ([]entity.Reward, error)
}
